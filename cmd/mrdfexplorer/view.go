package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/joshuapare/mrdfkit/mrdf/codec"
	"github.com/joshuapare/mrdfkit/mrdf/edit"
	"github.com/joshuapare/mrdfkit/mrdf/hexdump"
	"github.com/joshuapare/mrdfkit/pkg/types"
)

// View renders the entire UI
func (m Model) View() string {
	if m.showHelp {
		// Recreated each render so the background reflects the latest state
		help := overlay.New(
			helpView{keys: m.keys},
			mainView{m: &m},
			overlay.Center,
			overlay.Center,
			0,
			0,
		)
		return help.View()
	}
	return m.renderMain()
}

func (m Model) renderMain() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		m.renderContent(),
		m.renderStatus(),
	)
}

// renderHeader renders the title, file and active profile
func (m Model) renderHeader() string {
	s := m.session
	title := headerStyle.Render("MRDF Explorer")
	file := pathStyle.Render(fmt.Sprintf("File: %s (%d bytes)", s.Path(), s.Size()))
	line := lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", file)
	if s.Unsaved() {
		line += unsavedStyle.Render("  ● modified")
	}

	prof := fmt.Sprintf("Profile: %s [%s]", s.Profile().Label(), s.DetectedBy())
	if m.skipped > 0 {
		prof += fmt.Sprintf("  %d field(s) beyond end of file", m.skipped)
	}
	if m.filter != "" {
		prof += fmt.Sprintf("  filter: %q", m.filter)
	}
	return lipgloss.JoinVertical(lipgloss.Left, line, pathStyle.Render(prof))
}

// renderContent renders the tree on the left and detail over hex on the right
func (m Model) renderContent() string {
	hexWidth := hexdump.HexColumn(m.pager.PerLine) + m.pager.PerLine + 2
	treeWidth := max(m.width-hexWidth-4, minTreeWidth)
	bodyHeight := m.treeHeight()

	treeStyle, detailStyle := activePaneStyle, paneStyle
	if m.focusedPane == DetailPane {
		treeStyle, detailStyle = paneStyle, activePaneStyle
	}

	tree := treeStyle.Width(treeWidth).Height(bodyHeight).Render(m.renderTree(treeWidth-2, bodyHeight))
	detail := detailStyle.Width(hexWidth).Height(DetailHeight - 2).Render(m.renderDetail())
	hex := paneStyle.Width(hexWidth).Render(m.renderHex())

	return lipgloss.JoinHorizontal(lipgloss.Top, tree, lipgloss.JoinVertical(lipgloss.Left, detail, hex))
}

func (m Model) renderTree(width, height int) string {
	if len(m.rows) == 0 {
		return noteStyle.Render("(no fields)")
	}
	var b strings.Builder
	end := min(m.scroll+height, len(m.rows))
	for i := m.scroll; i < end; i++ {
		r := m.rows[i]
		var line string
		if r.header {
			marker := "▾"
			if m.collapsed[r.section] && m.filter == "" {
				marker = "▸"
			}
			line = sectionStyle.Render(fmt.Sprintf("%s %s", marker, r.section))
		} else {
			line = m.treeLine(r.field, width)
		}
		if i == m.cursor {
			line = selectedStyle.Render(lipgloss.NewStyle().Width(width).Render(line))
		}
		b.WriteString(line)
		if i < end-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (m Model) treeLine(f types.FieldInstance, width int) string {
	mark := " "
	if _, ok := m.session.Buffer().PendingAt(f.Offset); ok {
		mark = "*"
	}
	name := truncate(f.Def.Name, max(width/2, 8))
	val := codec.FormatValue(f.Def, f.Value)
	line := fmt.Sprintf("  %s%-*s %s", mark, max(width/2, 8), name, val)
	line = truncate(line, width)
	if mark == "*" {
		return pendingStyle.Render(line)
	}
	return line
}

// renderDetail shows the selected field, its legend and edit state
func (m Model) renderDetail() string {
	r, ok := m.currentRow()
	if !ok {
		return ""
	}
	if r.header {
		n := 0
		for _, x := range m.rows {
			if !x.header && x.section == r.section {
				n++
			}
		}
		return sectionStyle.Render(r.section) + fmt.Sprintf("\n%d field(s); enter folds", n)
	}

	f := r.field
	buf := m.session.Buffer()
	var b strings.Builder
	kv := func(k, v string) {
		b.WriteString(labelStyle.Render(k))
		b.WriteString(v)
		b.WriteByte('\n')
	}
	kv("Field", sectionStyle.Render(f.Def.Name))
	kv("Offset", fmt.Sprintf("0x%04X (%d)  %s", f.Offset, f.Offset, f.Def.Kind))
	kv("Raw", codec.FormatRaw(f.Raw))
	kv("Value", codec.FormatValue(f.Def, f.Value))
	if e, ok := buf.PendingAt(f.Offset); ok {
		state := "pending " + codec.FormatValue(e.Def, e.Value)
		if buf.Stale(f.Offset) {
			state += " (bytes since overwritten)"
		}
		kv("Edit", pendingStyle.Render(state))
	} else if buf.IsDirty(f.Offset, f.Def.Width()) {
		kv("Edit", pendingStyle.Render("raw bytes modified"))
	}
	if f.Def.Note != "" {
		b.WriteString(noteStyle.Render(f.Def.Note))
		b.WriteByte('\n')
	}

	switch {
	case f.Def.IsBitmask():
		checked := edit.CheckedBits(f.Def, f.Value)
		for i, bit := range f.Def.Bits {
			box := "[ ]"
			for _, c := range checked {
				if c == bit.Mask {
					box = "[x]"
				}
			}
			line := fmt.Sprintf("%s 0x%02X %s", box, bit.Mask, bit.Label)
			if m.focusedPane == DetailPane && i == m.bitCursor {
				line = selectedStyle.Render(line)
			}
			b.WriteString(line)
			b.WriteByte('\n')
		}
	case f.Def.IsEnum():
		cur := f.Value.Int64()
		var parts []string
		for _, e := range f.Def.Enum.Entries() {
			s := fmt.Sprintf("%d=%s", e.Value, e.Label)
			if e.Value == cur {
				s = successStyle.Render(s)
			}
			parts = append(parts, s)
		}
		b.WriteString(strings.Join(parts, "  "))
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderHex renders the current hex page, highlighting the selected field
// and modified bytes
func (m Model) renderHex() string {
	data := m.session.Buffer().View()
	if len(data) == 0 {
		return noteStyle.Render("(empty file)")
	}
	selOff, selEnd := -1, -1
	if f, ok := m.currentField(); ok {
		selOff, selEnd = f.Offset, f.Def.End()
	}

	lines := m.pager.Page(data)
	out := make([]string, len(lines))
	for i, line := range lines {
		start := m.pager.Anchor() + i*m.pager.PerLine
		n := min(m.pager.PerLine, len(data)-start)
		out[i] = m.styleHexLine(line, start, n, selOff, selEnd)
	}
	return strings.Join(out, "\n")
}

// styleHexLine restyles the hex digits of each byte in a rendered dump line.
func (m Model) styleHexLine(line string, start, n, selOff, selEnd int) string {
	buf := m.session.Buffer()
	var b strings.Builder
	b.WriteString(line[:hexdump.HexColumn(0)])
	for j := 0; j < n; j++ {
		col := hexdump.HexColumn(j)
		digits := line[col : col+2]
		off := start + j
		switch {
		case off >= selOff && off < selEnd:
			digits = hexFieldStyle.Render(digits)
		case buf.IsDirty(off, 1):
			digits = hexDirtyStyle.Render(digits)
		}
		b.WriteString(digits)
		if j < n-1 {
			b.WriteString(line[col+2 : hexdump.HexColumn(j+1)])
		}
	}
	b.WriteString(line[hexdump.HexColumn(n-1)+2:])
	return b.String()
}

// renderStatus renders the input prompt, status message or key hints
func (m Model) renderStatus() string {
	if m.inputMode != NormalMode {
		return statusStyle.Width(m.width).Render(m.input.View())
	}
	if m.statusMessage != "" {
		return statusStyle.Width(m.width).Render(promptStyle.Render(m.statusMessage))
	}

	var help strings.Builder
	if m.focusedPane == DetailPane {
		help.WriteString(helpStyle.Render("space: Toggle bit"))
		help.WriteString(" │ ")
		help.WriteString(helpStyle.Render("tab: Tree"))
	} else {
		help.WriteString(helpStyle.Render("e: Edit"))
		help.WriteString(" │ ")
		help.WriteString(helpStyle.Render("x: Hex"))
		help.WriteString(" │ ")
		help.WriteString(helpStyle.Render("p: Profile"))
		help.WriteString(" │ ")
		help.WriteString(helpStyle.Render("/: Filter"))
	}
	help.WriteString(" │ ")
	help.WriteString(helpStyle.Render(fmt.Sprintf("%d pending", m.session.Buffer().PendingCount())))
	help.WriteString(" │ ")
	help.WriteString(helpStyle.Render("?: Help"))
	help.WriteString(" │ ")
	help.WriteString(helpStyle.Render("q: Quit"))
	return statusStyle.Width(m.width).Render(help.String())
}
