package tui

import (
	"dws-console/internal/nav"

	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Open    key.Binding
	Back    key.Binding
	Focus   key.Binding
	New     key.Binding
	Status  key.Binding
	Handoff key.Binding
	Setup   key.Binding
	Submit  key.Binding
	Ready   key.Binding
	Convert key.Binding
	AddSub  key.Binding
	Copy    key.Binding
	Logout  key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Open:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Back:    key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back")),
		Focus:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "sidebar")),
		New:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
		Status:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "cycle status")),
		Handoff: key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "handoff")),
		Setup:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "project setup")),
		Submit:  key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "submit to PM")),
		Ready:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "mark ready")),
		Convert: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "convert")),
		AddSub:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add subtask")),
		Copy:    key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy id")),
		Logout:  key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "log out")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// bindingsFor lists the help entries that apply on screen s.
func (k keyMap) bindingsFor(s nav.Screen) []key.Binding {
	out := []key.Binding{k.Up, k.Down, k.Open}
	switch s {
	case nav.ScreenProjectList, nav.ScreenTeamOwnerProjects, nav.ScreenProjectDetail:
		out = append(out, k.Status)
	case nav.ScreenTaskList:
		out = append(out, k.New)
	case nav.ScreenTaskDetail, nav.ScreenTaskReview, nav.ScreenTeamLeadTaskDetail, nav.ScreenTeamMemberTaskDetail:
		out = append(out, k.AddSub)
	case nav.ScreenDealList, nav.ScreenSalesDashboard:
		out = append(out, k.New, k.Handoff, k.Setup)
	case nav.ScreenDealDetail:
		out = append(out, k.Handoff, k.Setup)
	case nav.ScreenDealHandoff:
		out = append(out, k.Submit, k.Setup)
	case nav.ScreenProjectSetup:
		out = append(out, k.Ready, k.Convert)
	case nav.ScreenCompanies, nav.ScreenAgencyList:
		out = append(out, k.New)
	}
	return append(out, k.Copy, k.Back, k.Focus, k.Logout, k.Quit)
}

func formBindings() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}
