package present

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"retrobeam/internal/config"
	"retrobeam/internal/frame"
	"retrobeam/internal/segment"
)

// ExitReason reports how the interactive session ended.
type ExitReason int

const (
	// ReasonCompleted means forward navigation ran off the last segment.
	ReasonCompleted ExitReason = iota
	// ReasonQuit means the user ended the session explicitly.
	ReasonQuit
)

const (
	frameWidthStep       = 2
	transitionSteps      = 10
	transitionFrameDelay = 70 * time.Millisecond
)

var transitionFrames = []string{
	"[⠁] syncing raster tracks",
	"[⠃] calibrating light",
	"[⠇] loading vectors",
	"[⠇] assembling frames",
	"[⠧] tuning luminance",
	"[⠷] finalizing",
}

var (
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	keyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true)
	seqStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	spinStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

type phase int

const (
	phaseIdle phase = iota
	phaseTransition
	phaseReveal
)

type spinTickMsg struct{ seq int }

type revealTickMsg struct{ seq int }

// Model drives one presentation session: it owns the current segment index,
// delegates width adjustment to the config, and replays the reveal animation
// on navigation. Resize and width changes repaint instantly.
type Model struct {
	cfg      *config.Config
	segments []segment.Segment

	index   int
	phase   phase
	reveal  int
	spin    int
	animSeq int

	progress progress.Model
	reason   ExitReason
}

// NewModel builds the session model. The segment sequence must be non-empty;
// the composition layer never starts a session on an empty script.
func NewModel(cfg *config.Config, segments []segment.Segment) *Model {
	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = barWidth(cfg.FrameWidth)
	return &Model{
		cfg:      cfg,
		segments: segments,
		progress: prog,
	}
}

// Init implements tea.Model: the first segment is revealed with animation
// before any input is read.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.progress.SetPercent(m.percent()), m.beginRender(true))
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinTickMsg:
		if msg.seq != m.animSeq || m.phase != phaseTransition {
			return m, nil
		}
		m.spin++
		if m.spin < transitionSteps {
			return m, m.spinTick()
		}
		return m, m.beginReveal()

	case revealTickMsg:
		if msg.seq != m.animSeq || m.phase != phaseReveal {
			return m, nil
		}
		m.reveal++
		if m.reveal >= m.contentLength() {
			m.phase = phaseIdle
			return m, nil
		}
		return m, m.revealTick()

	case tea.WindowSizeMsg:
		// Terminal geometry changed: repaint the current segment without
		// replaying the reveal, whatever the logical frame width is.
		m.showInstant()
		return m, nil

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg.String())
	}

	return m, nil
}

func (m *Model) handleKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "left":
		if m.index > 0 {
			m.index--
			return m, tea.Batch(m.progress.SetPercent(m.percent()), m.beginRender(true))
		}
		return m, nil

	case "right", "enter":
		if m.index+1 < len(m.segments) {
			m.index++
			return m, tea.Batch(m.progress.SetPercent(m.percent()), m.beginRender(true))
		}
		// Running off the end is the normal exit path.
		m.reason = ReasonCompleted
		return m, tea.Quit

	case "q", "Q", "esc", "ctrl+c":
		m.reason = ReasonQuit
		return m, tea.Quit

	case "+", "=":
		if m.cfg.AdjustFrameWidth(frameWidthStep) {
			m.progress.Width = barWidth(m.cfg.FrameWidth)
			m.showInstant()
		}
		return m, nil

	case "-", "_":
		if m.cfg.AdjustFrameWidth(-frameWidthStep) {
			m.progress.Width = barWidth(m.cfg.FrameWidth)
			m.showInstant()
		}
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	seg := m.segments[m.index]
	width := m.cfg.FrameWidth

	reveal := frame.FullReveal
	switch m.phase {
	case phaseTransition:
		reveal = 0
	case phaseReveal:
		reveal = m.reveal
	}

	var b strings.Builder
	if m.phase == phaseTransition {
		b.WriteString(spinStyle.Render(transitionFrames[m.spin%len(transitionFrames)]))
		b.WriteString("\n")
	}
	b.WriteString(frame.Top(width, m.cfg.Palette))
	b.WriteString("\n")
	b.WriteString(frame.Line(seg, m.index, width, m.cfg.Palette, reveal))
	b.WriteString("\n")
	b.WriteString(frame.Bottom(width, m.cfg.Palette))
	b.WriteString("\n\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.progress.View())
	b.WriteString("\n")
	return b.String()
}

func (m *Model) statusLine() string {
	return strings.Join([]string{
		statusStyle.Render("CTRL ::"),
		keyStyle.Render("←/→") + hintStyle.Render(" or Enter advance"),
		keyStyle.Render("+/-") + hintStyle.Render(" width"),
		keyStyle.Render("Q/Esc") + hintStyle.Render(" exit"),
		statusStyle.Render("SEQ ::"),
		seqStyle.Render(fmt.Sprintf("%03d/%03d", m.index+1, len(m.segments))),
		statusStyle.Render("FRAME ::"),
		seqStyle.Render(fmt.Sprintf("%d", m.cfg.FrameWidth)),
	}, " ")
}

// beginRender starts showing the current segment, animated or instant.
func (m *Model) beginRender(animate bool) tea.Cmd {
	m.animSeq++
	if !animate || !m.cfg.Animations {
		m.phase = phaseIdle
		return nil
	}
	m.phase = phaseTransition
	m.spin = 0
	return m.spinTick()
}

// beginReveal switches from the transition spinner to the character reveal.
func (m *Model) beginReveal() tea.Cmd {
	m.reveal = 0
	if m.contentLength() == 0 {
		m.phase = phaseIdle
		return nil
	}
	m.phase = phaseReveal
	return m.revealTick()
}

// showInstant repaints the current segment fully, cancelling any pending
// animation ticks.
func (m *Model) showInstant() {
	m.animSeq++
	m.phase = phaseIdle
}

func (m *Model) contentLength() int {
	return frame.ContentLength(m.segments[m.index], m.index, m.cfg.FrameWidth)
}

func (m *Model) spinTick() tea.Cmd {
	seq := m.animSeq
	return tea.Tick(transitionFrameDelay, func(time.Time) tea.Msg {
		return spinTickMsg{seq: seq}
	})
}

func (m *Model) revealTick() tea.Cmd {
	seq := m.animSeq
	delay := frame.Delay(m.segments[m.index].Kind)
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return revealTickMsg{seq: seq}
	})
}

func (m *Model) percent() float64 {
	return float64(m.index+1) / float64(len(m.segments))
}

func barWidth(frameWidth int) int {
	if frameWidth < 4 {
		return frameWidth
	}
	return frameWidth - 4
}
