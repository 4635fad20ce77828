package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"contextsqueeze/internal/config"
	"contextsqueeze/internal/tui"
)

func main() {
	cfg := config.Get()
	model := tui.NewModel(cfg)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "squeezetui: %v\n", err)
		os.Exit(1)
	}
}
