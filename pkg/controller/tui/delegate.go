package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/secmon-lab/repodeck/pkg/domain/interfaces"
	"github.com/secmon-lab/repodeck/pkg/domain/model"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	mutedStyle    = lipgloss.NewStyle().Faint(true)
	accentStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)
)

// repoItem adapts model.Repository to bubbles/list.Item
type repoItem struct {
	repo *model.Repository
}

func (i repoItem) Title() string { return i.repo.Name }

func (i repoItem) Description() string {
	if i.repo.Description == nil {
		return ""
	}
	return *i.repo.Description
}

func (i repoItem) FilterValue() string { return i.repo.Name }

// repoDelegate renders one repository per line with its push age
type repoDelegate struct {
	clock interfaces.Clock
}

func (d repoDelegate) Height() int                               { return 1 }
func (d repoDelegate) Spacing() int                              { return 0 }
func (d repoDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d repoDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(repoItem)
	if !ok {
		return
	}

	name := it.repo.Name
	age := mutedStyle.Render(pushAge(d.clock(), it.repo.PushedAt))
	desc := ""
	if it.repo.Description != nil {
		desc = mutedStyle.Render(*it.repo.Description)
	}

	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
		name = accentStyle.Render(name)
	}

	fmt.Fprint(w, prefix+name+"  "+age+"  "+desc)
}

// pushAge renders a coarse relative age of the last push
func pushAge(now time.Time, pushedAt *time.Time) string {
	if pushedAt == nil {
		return "never pushed"
	}

	d := now.Sub(*pushedAt)
	switch {
	case d < time.Minute:
		return "pushed just now"
	case d < time.Hour:
		return fmt.Sprintf("pushed %dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("pushed %dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("pushed %dd ago", int(d.Hours()/24))
	}
}
