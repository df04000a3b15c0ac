package main

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshuapare/mrdfkit/internal/logger"
	"github.com/joshuapare/mrdfkit/mrdf/codec"
	"github.com/joshuapare/mrdfkit/mrdf/edit"
)

// Update handles all messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case clearStatusMsg:
		m.statusMessage = ""
		return m, nil

	case tea.KeyMsg:
		// If help is showing, any of esc/?/q closes it
		if m.showHelp {
			if key.Matches(msg, m.keys.Esc) || key.Matches(msg, m.keys.Help) || key.Matches(msg, m.keys.Quit) {
				m.showHelp = false
			}
			return m, nil
		}

		if m.inputMode != NormalMode {
			return m.handleInputMode(msg)
		}
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		if m.session.Unsaved() && !m.quitArmed {
			m.quitArmed = true
			m.statusMessage = "Unsaved changes: press q again to quit, ctrl+s to save"
			return m, nil
		}
		return m, tea.Quit
	}
	m.quitArmed = false

	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		if m.focusedPane == TreePane {
			m.focusedPane = DetailPane
		} else {
			m.focusedPane = TreePane
		}
		return m, nil

	case key.Matches(msg, m.keys.Esc):
		if m.focusedPane == DetailPane {
			m.focusedPane = TreePane
			return m, nil
		}
		if m.filter != "" {
			m.filter = ""
			m.rebuild()
			return m.setStatus("Filter cleared")
		}
		return m, nil

	case key.Matches(msg, m.keys.Filter):
		m.startInput(FilterMode, "Filter: ", m.filter)
		return m, nil

	case key.Matches(msg, m.keys.NextProfile):
		return m.cycleProfile()

	case key.Matches(msg, m.keys.Save):
		return m.save()

	case key.Matches(msg, m.keys.DiscardAll):
		if err := m.session.Discard(); err != nil {
			return m.setError(err)
		}
		m.rebuild()
		return m.setStatus("All edits discarded")

	case key.Matches(msg, m.keys.HexNext):
		m.pager.Next()
		return m, nil

	case key.Matches(msg, m.keys.HexPrev):
		m.pager.Prev()
		return m, nil

	case key.Matches(msg, m.keys.HexAt):
		m.startInput(HexMode, "Offset: bytes > ", fmt.Sprintf("%X: ", m.pager.Anchor()))
		return m, nil

	case key.Matches(msg, m.keys.JumpOffset):
		m.startInput(JumpMode, "Jump to offset > ", "")
		return m, nil

	case key.Matches(msg, m.keys.RevertHex):
		value := ""
		if f, ok := m.currentField(); ok {
			value = fmt.Sprintf("%X: %d", f.Offset, f.Def.Width())
		}
		m.startInput(RevertMode, "Revert offset: length > ", value)
		return m, nil
	}

	if m.focusedPane == DetailPane {
		return m.handleDetailKey(msg)
	}
	return m.handleTreeKey(msg)
}

func (m Model) handleTreeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveTo(m.cursor - 1)
	case key.Matches(msg, m.keys.Down):
		m.moveTo(m.cursor + 1)
	case key.Matches(msg, m.keys.PageUp):
		m.moveTo(m.cursor - m.treeHeight())
	case key.Matches(msg, m.keys.PageDown):
		m.moveTo(m.cursor + m.treeHeight())
	case key.Matches(msg, m.keys.Home):
		m.moveTo(0)
	case key.Matches(msg, m.keys.End):
		m.moveTo(len(m.rows) - 1)

	case key.Matches(msg, m.keys.Enter):
		r, ok := m.currentRow()
		if !ok {
			return m, nil
		}
		if r.header {
			m.collapsed[r.section] = !m.collapsed[r.section]
			m.rebuild()
			return m, nil
		}
		return m.startEdit()

	case key.Matches(msg, m.keys.Edit):
		return m.startEdit()

	case key.Matches(msg, m.keys.HexEdit):
		f, ok := m.currentField()
		if !ok {
			return m, nil
		}
		m.startInput(HexMode, fmt.Sprintf("0x%04X > ", f.Offset), codec.FormatRaw(f.Raw))
		return m, nil

	case key.Matches(msg, m.keys.Revert):
		f, ok := m.currentField()
		if !ok {
			return m, nil
		}
		if err := m.session.Revert(f.Def.Name); err != nil {
			return m.setError(err)
		}
		m.rebuild()
		return m.setStatus("Reverted " + f.Def.Name)

	case key.Matches(msg, m.keys.CopyRaw):
		f, ok := m.currentField()
		if !ok {
			return m, nil
		}
		if err := clipboard.WriteAll(codec.FormatRaw(f.Raw)); err != nil {
			return m.setError(fmt.Errorf("copy failed: %w", err))
		}
		return m.setStatus("Copied " + codec.FormatRaw(f.Raw))
	}
	return m, nil
}

// handleDetailKey moves between and toggles bitmask entries.
func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f, ok := m.currentField()
	if !ok || !f.Def.IsBitmask() {
		if key.Matches(msg, m.keys.Edit) || key.Matches(msg, m.keys.Enter) {
			return m.startEdit()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.bitCursor = max(m.bitCursor-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.bitCursor = min(m.bitCursor+1, len(f.Def.Bits)-1)
	case key.Matches(msg, m.keys.Space), key.Matches(msg, m.keys.Enter):
		mask := f.Def.Bits[m.bitCursor].Mask
		var checked []uint32
		found := false
		for _, c := range edit.CheckedBits(f.Def, f.Value) {
			if c == mask {
				found = true
				continue
			}
			checked = append(checked, c)
		}
		if !found {
			checked = append(checked, mask)
		}
		if err := m.session.ApplyBits(f.Def.Name, checked); err != nil {
			return m.setError(err)
		}
		m.rebuild()
	}
	return m, nil
}

// startEdit opens the value input, or the bit list for bitmask fields.
func (m Model) startEdit() (tea.Model, tea.Cmd) {
	f, ok := m.currentField()
	if !ok {
		return m, nil
	}
	if f.Def.IsBitmask() {
		m.focusedPane = DetailPane
		return m, nil
	}
	m.startInput(EditMode, f.Def.Name+" > ", codec.FormatEditable(f.Value))
	return m, nil
}

func (m *Model) startInput(mode InputMode, prompt, value string) {
	m.inputMode = mode
	m.input.Prompt = prompt
	m.input.SetValue(value)
	m.input.CursorEnd()
	m.input.Focus()
}

func (m Model) cycleProfile() (tea.Model, tea.Cmd) {
	next := m.session.Registry().Next(m.session.Profile().Key())
	if next.IsZero() {
		return m, nil
	}
	if err := m.session.SetProfile(next.Key()); err != nil {
		return m.setError(err)
	}
	logger.Info("profile switched", "profile", next.Key())
	m.rebuild()
	m.moveTo(m.firstField())
	return m.setStatus("Profile: " + next.Label())
}

func (m Model) save() (tea.Model, tea.Cmd) {
	if m.cfg.Backup && !m.backedUp {
		bak, err := m.session.WriteBackup()
		if err != nil {
			return m.setError(err)
		}
		m.backedUp = true
		logger.Info("backup written", "path", bak)
	}
	if err := m.session.Save(); err != nil {
		return m.setError(err)
	}
	return m.setStatus("✓ Saved " + m.session.Path())
}

// setStatus shows a message for two seconds.
func (m Model) setStatus(s string) (tea.Model, tea.Cmd) {
	m.statusMessage = s
	return m, tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func (m Model) setError(err error) (tea.Model, tea.Cmd) {
	logger.Warn("edit rejected", "error", err)
	return m.setStatus("Error: " + err.Error())
}
