package main

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// helpView is the foreground of the help overlay.
type helpView struct {
	keys KeyMap
}

func (h helpView) Init() tea.Cmd                       { return nil }
func (h helpView) Update(tea.Msg) (tea.Model, tea.Cmd) { return h, nil }

func (h helpView) View() string {
	var b strings.Builder
	b.WriteString(helpTitleStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n")

	sections := []string{"Navigation", "Editing", "Commands"}
	for i, group := range h.keys.FullHelp() {
		b.WriteString(sectionStyle.Render(sections[i]))
		b.WriteString("\n")
		for _, k := range group {
			hl := k.Help()
			b.WriteString(helpKeyStyle.Render(hl.Key))
			b.WriteString("  ")
			b.WriteString(helpDescStyle.Render(hl.Desc))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	b.WriteString(noteStyle.Render("Press ? or esc to close"))
	return modalStyle.Render(b.String())
}

// mainView renders the normal screen as the overlay background.
type mainView struct {
	m *Model
}

func (v mainView) Init() tea.Cmd                       { return nil }
func (v mainView) Update(tea.Msg) (tea.Model, tea.Cmd) { return v, nil }
func (v mainView) View() string                        { return v.m.renderMain() }
