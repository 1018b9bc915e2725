package present

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"retrobeam/internal/config"
	"retrobeam/internal/segment"
)

// Run executes one interactive session inline (no alt screen), so the frame
// keeps its origin row until the session ends. Raw input mode is acquired by
// the Bubble Tea runtime and restored on every exit path, including errors.
func Run(cfg *config.Config, segments []segment.Segment) (ExitReason, error) {
	if len(segments) == 0 {
		return ReasonCompleted, nil
	}

	program := tea.NewProgram(NewModel(cfg, segments))
	final, err := program.Run()
	if err != nil {
		return ReasonQuit, fmt.Errorf("presentation session: %w", err)
	}
	if model, ok := final.(*Model); ok {
		return model.reason, nil
	}
	return ReasonQuit, nil
}
