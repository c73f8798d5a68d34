package tui

import (
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// copyToClipboard is swapped out in tests.
var copyToClipboard = func(s string) error {
	return clipboard.WriteAll(strings.ReplaceAll(s, "\r\n", "\n"))
}

// copySelectedID puts the id behind the highlighted row on the clipboard.
// Calendar rows carry a "kind:" prefix, which is dropped.
func (m *appModel) copySelectedID() tea.Cmd {
	id := m.selectedRowID()
	if id == "" {
		return nil
	}
	if _, rest, ok := strings.Cut(id, ":"); ok {
		id = rest
	}
	if err := copyToClipboard(id); err != nil {
		return m.setFlash("Copy failed: "+err.Error(), true)
	}
	return m.setFlash("Copied "+id, false)
}
