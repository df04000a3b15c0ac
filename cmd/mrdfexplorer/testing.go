package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshuapare/mrdfkit/internal/config"
	"github.com/joshuapare/mrdfkit/mrdf"
)

// TestHelper provides utilities for testing TUI components
type TestHelper struct {
	model Model
}

// NewTestHelper creates a test helper over a session loaded from data
func NewTestHelper(hint string, data []byte) *TestHelper {
	s, err := mrdf.NewSession(mrdf.Options{})
	if err != nil {
		panic(err)
	}
	s.Load(hint, data)
	return &TestHelper{model: NewModel(s, config.Default())}
}

// SendKey simulates a key press. Returned commands are not executed.
func (h *TestHelper) SendKey(keyType tea.KeyType) *TestHelper {
	msg := tea.KeyMsg{Type: keyType}
	updated, _ := h.model.Update(msg)
	h.model = updated.(Model)
	return h
}

// SendKeyRune simulates a character key press
func (h *TestHelper) SendKeyRune(r rune) *TestHelper {
	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
	updated, _ := h.model.Update(msg)
	h.model = updated.(Model)
	return h
}

// SendKeyRunes types each rune of s
func (h *TestHelper) SendKeyRunes(s string) *TestHelper {
	for _, r := range s {
		h.SendKeyRune(r)
	}
	return h
}

// SendWindowSize simulates a window resize
func (h *TestHelper) SendWindowSize(width, height int) *TestHelper {
	msg := tea.WindowSizeMsg{Width: width, Height: height}
	updated, _ := h.model.Update(msg)
	h.model = updated.(Model)
	return h
}

// SelectField moves the cursor onto the named field
func (h *TestHelper) SelectField(name string) bool {
	for i, r := range h.model.rows {
		if !r.header && r.field.Def.Name == name {
			h.model.moveTo(i)
			return true
		}
	}
	return false
}

// GetModel returns the current model
func (h *TestHelper) GetModel() Model {
	return h.model
}

// GetView returns the rendered view
func (h *TestHelper) GetView() string {
	return h.model.View()
}

// GetFocusedPane returns the currently focused pane
func (h *TestHelper) GetFocusedPane() Pane {
	return h.model.focusedPane
}

// GetSession returns the session behind the model
func (h *TestHelper) GetSession() *mrdf.Session {
	return h.model.session
}
