package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshuapare/mrdfkit/mrdf/codec"
	"github.com/joshuapare/mrdfkit/pkg/types"
)

var errNoBytes = errors.New("no bytes given")

// handleInputMode handles keys while the filter, edit or hex input is open
func (m Model) handleInputMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		if m.inputMode == FilterMode {
			m.filter = ""
			m.rebuild()
		}
		m.closeInput()
		return m, nil

	case tea.KeyEnter:
		mode := m.inputMode
		value := m.input.Value()
		m.closeInput()
		switch mode {
		case FilterMode:
			m.filter = strings.TrimSpace(value)
			m.rebuild()
			return m, nil
		case EditMode:
			return m.commitEdit(value)
		case HexMode:
			return m.commitHex(value)
		case RevertMode:
			return m.commitRevert(value)
		case JumpMode:
			return m.commitJump(value)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	// Live filter
	if m.inputMode == FilterMode {
		m.filter = strings.TrimSpace(m.input.Value())
		m.rebuild()
	}
	return m, cmd
}

func (m *Model) closeInput() {
	m.inputMode = NormalMode
	m.input.Blur()
	m.input.SetValue("")
}

func (m Model) commitEdit(value string) (tea.Model, tea.Cmd) {
	f, ok := m.currentField()
	if !ok {
		return m, nil
	}
	if err := m.session.Apply(f.Def.Name, value); err != nil {
		return m.setError(err)
	}
	m.rebuild()
	if nf, ok := m.currentField(); ok {
		return m.setStatus(fmt.Sprintf("✓ %s = %s", nf.Def.Name, codec.FormatValue(nf.Def, nf.Value)))
	}
	return m, nil
}

// commitHex writes "HEX" over the selected field, or "OFF: HEX" at OFF. A
// field target takes exactly the field's width.
func (m Model) commitHex(value string) (tea.Model, tea.Cmd) {
	off, length, hex, err := m.parseHexInput(value)
	if err != nil {
		return m.setError(err)
	}
	if err := m.session.Overwrite(off, length, hex); err != nil {
		return m.setError(err)
	}
	m.rebuild()
	m.pager.Focus(off, length)
	return m.setStatus(fmt.Sprintf("✓ Wrote %d byte(s) at 0x%04X", length, off))
}

func (m Model) parseHexInput(value string) (int, int, string, error) {
	if i := strings.IndexByte(value, ':'); i >= 0 {
		off, err := codec.ParseOffset(value[:i])
		if err != nil {
			return 0, 0, "", err
		}
		hex := value[i+1:]
		data, err := codec.ParseHexBytes(hex)
		if err != nil {
			return 0, 0, "", err
		}
		if len(data) == 0 {
			return 0, 0, "", errNoBytes
		}
		return off, len(data), hex, nil
	}
	f, ok := m.currentField()
	if !ok {
		return 0, 0, "", fmt.Errorf("no field selected; use OFFSET: BYTES")
	}
	if strings.TrimSpace(value) == "" {
		return 0, 0, "", errNoBytes
	}
	return f.Offset, f.Def.Width(), value, nil
}

// commitRevert restores "OFF: LEN" bytes from the file as opened. Typed
// edits inside the range stay pending.
func (m Model) commitRevert(value string) (tea.Model, tea.Cmd) {
	i := strings.IndexByte(value, ':')
	if i < 0 {
		return m.setError(fmt.Errorf("expected OFFSET: LENGTH"))
	}
	off, err := codec.ParseOffset(value[:i])
	if err != nil {
		return m.setError(err)
	}
	length, err := strconv.Atoi(strings.TrimSpace(value[i+1:]))
	if err != nil || length <= 0 {
		return m.setError(fmt.Errorf("invalid length %q", strings.TrimSpace(value[i+1:])))
	}
	if err := m.session.RevertBytes(off, length); err != nil {
		return m.setError(err)
	}
	m.rebuild()
	m.pager.Focus(off, length)
	return m.setStatus(fmt.Sprintf("Reverted %d byte(s) at 0x%04X", length, off))
}

// commitJump moves the hex view to a hex offset and selects the field there.
func (m Model) commitJump(value string) (tea.Model, tea.Cmd) {
	off, err := codec.ParseOffset(value)
	if err != nil {
		return m.setError(err)
	}
	if off >= m.session.Size() {
		return m.setError(types.OutOfBounds(off, 1, m.session.Size()))
	}
	m.pager.Jump(off)
	m.selectOffset(off)
	return m.setStatus(fmt.Sprintf("0x%04X", off))
}
