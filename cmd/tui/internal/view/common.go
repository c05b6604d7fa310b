package view

import (
	tea "github.com/charmbracelet/bubbletea"
)

type CommonModel struct {
	Width  int
	Height int
}

type BackMsg struct{}

func Back() tea.Msg {
	return BackMsg{}
}

// ExternalChangeMsg tells the active view that another client changed
// data it is showing. Views react by rerunning their normal load.
type ExternalChangeMsg struct {
	Channel string
}
