package feedtui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// StartFeedUI runs the full-screen client until the user quits. The session
// only lives inside the program: quitting always signs out.
func StartFeedUI() error {
	program := tea.NewProgram(initialModel(), tea.WithAltScreen())

	_, err := program.Run()
	if err != nil {
		return fmt.Errorf("error running feed UI: %v", err)
	}

	return nil
}
