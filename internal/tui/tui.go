package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive form and blocks until the user quits.
func Run(settingsPath string) error {
	if _, err := tea.NewProgram(newFormModel(settingsPath)).Run(); err != nil {
		return fmt.Errorf("interactive form: %w", err)
	}
	return nil
}
