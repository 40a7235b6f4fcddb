package dashboard

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Run starts the dashboard program and blocks until the viewer quits.
// Teardown is deferred so an in-flight fetch is cancelled even when the
// program exits through an error path.
func Run(fetcher Fetcher, counter int, logger *zap.Logger) error {
	m := New(fetcher, counter, logger)
	defer m.Teardown()

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard: %w", err)
	}
	return nil
}
