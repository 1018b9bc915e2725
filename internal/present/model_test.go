package present

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"retrobeam/internal/config"
	"retrobeam/internal/segment"
	"retrobeam/internal/theme"
)

func testConfig(animations bool) *config.Config {
	return &config.Config{
		FrameWidth: 60,
		Palette:    theme.Palette{Accent: "\x1b[38;5;214m", Dim: "\x1b[38;5;238m", Glow: "\x1b[38;5;51m"},
		Animations: animations,
	}
}

func testSegments() []segment.Segment {
	return segment.ClassifyLines([]string{"# Title", "- point one", "", ">quote", "---"})
}

func keyRunes(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func isQuit(t *testing.T, cmd tea.Cmd) bool {
	t.Helper()
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestLeftAtStartIsNoOp(t *testing.T) {
	m := NewModel(testConfig(false), testSegments())
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if m.index != 0 {
		t.Fatalf("index = %d, want 0", m.index)
	}
	if cmd != nil {
		t.Fatalf("expected no command for left at start")
	}
}

func TestRightAdvancesUntilEnd(t *testing.T) {
	segs := testSegments()
	m := NewModel(testConfig(false), segs)

	for i := 1; i < len(segs); i++ {
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRight})
		if m.index != i {
			t.Fatalf("after %d rights index = %d, want %d", i, m.index, i)
		}
		if isQuit(t, cmd) {
			t.Fatalf("premature quit at index %d", m.index)
		}
	}

	// Index 4 is the separator; one more right ends the session normally.
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if !isQuit(t, cmd) {
		t.Fatalf("expected quit when advancing past the last segment")
	}
	if m.index != len(segs)-1 {
		t.Fatalf("index moved out of bounds: %d", m.index)
	}
	if m.reason != ReasonCompleted {
		t.Fatalf("reason = %v, want ReasonCompleted", m.reason)
	}
}

func TestEnterActsAsRight(t *testing.T) {
	m := NewModel(testConfig(false), testSegments())
	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.index != 1 {
		t.Fatalf("index = %d, want 1", m.index)
	}
}

func TestQuitKeys(t *testing.T) {
	for _, msg := range []tea.Msg{
		keyRunes('q'),
		keyRunes('Q'),
		tea.KeyMsg{Type: tea.KeyEsc},
	} {
		m := NewModel(testConfig(false), testSegments())
		m.index = 2
		_, cmd := m.Update(msg)
		if !isQuit(t, cmd) {
			t.Fatalf("%v: expected quit", msg)
		}
		if m.reason != ReasonQuit {
			t.Fatalf("%v: reason = %v, want ReasonQuit", msg, m.reason)
		}
	}
}

func TestUnrecognizedKeysIgnored(t *testing.T) {
	m := NewModel(testConfig(false), testSegments())
	before := m.View()
	for _, r := range []rune{'x', '7', ' '} {
		_, cmd := m.Update(keyRunes(r))
		if cmd != nil {
			t.Fatalf("key %q produced a command", r)
		}
	}
	if m.View() != before {
		t.Fatalf("unrecognized keys changed the rendered view")
	}
}

func TestWidthAdjustmentRedrawsInstantly(t *testing.T) {
	cfg := testConfig(true)
	m := NewModel(cfg, testSegments())

	// Put the model mid-animation, then widen: the reveal must not replay.
	m.phase = phaseReveal
	m.reveal = 1

	_, _ = m.Update(keyRunes('+'))
	if cfg.FrameWidth != 62 {
		t.Fatalf("frame width = %d, want 62", cfg.FrameWidth)
	}
	if m.phase != phaseIdle {
		t.Fatalf("width change left phase %v, want idle", m.phase)
	}

	_, _ = m.Update(keyRunes('-'))
	if cfg.FrameWidth != 60 {
		t.Fatalf("frame width = %d, want 60", cfg.FrameWidth)
	}
}

func TestWidthClampSuppressesRedraw(t *testing.T) {
	cfg := testConfig(true)
	cfg.FrameWidth = config.MinFrameWidth
	m := NewModel(cfg, testSegments())
	m.phase = phaseReveal
	m.reveal = 1

	_, _ = m.Update(keyRunes('-'))
	if cfg.FrameWidth != config.MinFrameWidth {
		t.Fatalf("width fell below the minimum: %d", cfg.FrameWidth)
	}
	if m.phase != phaseReveal {
		t.Fatalf("clamped adjustment still repainted (phase %v)", m.phase)
	}
}

func TestResizeRedrawsWithoutAnimation(t *testing.T) {
	m := NewModel(testConfig(true), testSegments())
	m.phase = phaseTransition

	_, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.phase != phaseIdle {
		t.Fatalf("resize left phase %v, want idle", m.phase)
	}
}

func TestStaleAnimationTicksIgnored(t *testing.T) {
	m := NewModel(testConfig(true), testSegments())
	m.phase = phaseReveal
	m.reveal = 2
	m.animSeq = 5

	_, cmd := m.Update(revealTickMsg{seq: 4})
	if cmd != nil || m.reveal != 2 {
		t.Fatalf("stale tick advanced the reveal")
	}
}

func TestRevealTicksRunToCompletion(t *testing.T) {
	m := NewModel(testConfig(true), testSegments())
	m.index = 0 // Heading "Title" -> 5 glyphs
	m.phase = phaseReveal
	m.reveal = 0

	steps := 0
	for m.phase == phaseReveal {
		_, _ = m.Update(revealTickMsg{seq: m.animSeq})
		steps++
		if steps > 100 {
			t.Fatalf("reveal did not terminate")
		}
	}
	if steps != 5 {
		t.Fatalf("reveal took %d steps, want 5", steps)
	}
}

func TestTransitionHandsOffToReveal(t *testing.T) {
	m := NewModel(testConfig(true), testSegments())
	if cmd := m.beginRender(true); cmd == nil {
		t.Fatalf("animated render produced no command")
	}
	if m.phase != phaseTransition {
		t.Fatalf("phase = %v, want transition", m.phase)
	}

	for i := 0; i < transitionSteps; i++ {
		_, _ = m.Update(spinTickMsg{seq: m.animSeq})
	}
	if m.phase != phaseReveal {
		t.Fatalf("phase after transition = %v, want reveal", m.phase)
	}
}

func TestAnimationsDisabledSkipsPhases(t *testing.T) {
	m := NewModel(testConfig(false), testSegments())
	if cmd := m.beginRender(true); cmd != nil {
		t.Fatalf("instant mode scheduled animation ticks")
	}
	if m.phase != phaseIdle {
		t.Fatalf("phase = %v, want idle", m.phase)
	}
}
