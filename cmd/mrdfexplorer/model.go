package main

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshuapare/mrdfkit/internal/buf"
	"github.com/joshuapare/mrdfkit/internal/config"
	"github.com/joshuapare/mrdfkit/mrdf"
	"github.com/joshuapare/mrdfkit/mrdf/hexdump"
	"github.com/joshuapare/mrdfkit/pkg/types"
)

// Pane represents which pane is focused
type Pane int

const (
	TreePane Pane = iota
	DetailPane
)

// InputMode represents different input modes
type InputMode int

const (
	NormalMode InputMode = iota
	FilterMode
	EditMode
	HexMode
	RevertMode
	JumpMode
)

// Layout constants
const (
	HeaderHeight = 2
	StatusHeight = 1
	DetailHeight = 12 // detail box including border
	minTreeWidth = 30
)

// row is one line of the field tree: a section header or a field.
type row struct {
	section string
	header  bool
	field   types.FieldInstance
}

// Model is the main application model
type Model struct {
	session *mrdf.Session
	cfg     *config.Config
	keys    KeyMap

	rows      []row
	cursor    int
	scroll    int
	collapsed map[string]bool
	filter    string
	bitCursor int
	skipped   int

	focusedPane Pane
	width       int
	height      int

	pager *hexdump.Pager

	inputMode InputMode
	input     textinput.Model

	showHelp      bool
	quitArmed     bool
	backedUp      bool
	statusMessage string
}

// NewModel creates a model over an open session.
func NewModel(s *mrdf.Session, cfg *config.Config) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	ti := textinput.New()
	ti.CharLimit = 256

	m := Model{
		session:     s,
		cfg:         cfg,
		keys:        DefaultKeyMap(),
		collapsed:   make(map[string]bool),
		focusedPane: TreePane,
		inputMode:   NormalMode,
		input:       ti,
		pager:       hexdump.NewPager(s.Size(), cfg.Hex.BytesPerLine, cfg.Hex.PageLines),
	}
	m.rebuild()
	m.moveTo(m.firstField())
	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Messages

type clearStatusMsg struct{}

// rebuild regenerates the tree rows from the session, keeping the selected
// field when it is still visible.
func (m *Model) rebuild() {
	prev, hadField := m.currentField()

	res := m.session.Fields().Filter(m.filter)
	m.skipped = res.SkipCount()
	m.rows = nil
	for _, sec := range res.Sections() {
		m.rows = append(m.rows, row{section: sec.Name, header: true})
		if m.collapsed[sec.Name] && m.filter == "" {
			continue
		}
		for _, f := range sec.Fields {
			m.rows = append(m.rows, row{section: sec.Name, field: f})
		}
	}

	if hadField {
		for i, r := range m.rows {
			if !r.header && r.field.Def.Name == prev.Def.Name {
				m.cursor = i
				m.clampScroll()
				return
			}
		}
	}
	m.cursor = buf.Clamp(m.cursor, 0, max(len(m.rows)-1, 0))
	m.clampScroll()
}

// currentRow returns the row under the cursor.
func (m Model) currentRow() (row, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return row{}, false
	}
	return m.rows[m.cursor], true
}

// currentField returns the field under the cursor, if the cursor is on a field.
func (m Model) currentField() (types.FieldInstance, bool) {
	r, ok := m.currentRow()
	if !ok || r.header {
		return types.FieldInstance{}, false
	}
	return r.field, true
}

func (m Model) firstField() int {
	for i, r := range m.rows {
		if !r.header {
			return i
		}
	}
	return 0
}

// selectOffset moves the cursor to the field covering off, if one is shown.
func (m *Model) selectOffset(off int) bool {
	for i, r := range m.rows {
		if !r.header && off >= r.field.Offset && off < r.field.Offset+r.field.Def.Width() {
			m.cursor = i
			m.bitCursor = 0
			m.clampScroll()
			return true
		}
	}
	return false
}

// moveTo places the cursor on row i and brings the field into the hex view.
func (m *Model) moveTo(i int) {
	if len(m.rows) == 0 {
		m.cursor = 0
		return
	}
	m.cursor = buf.Clamp(i, 0, len(m.rows)-1)
	m.bitCursor = 0
	m.clampScroll()
	if f, ok := m.currentField(); ok {
		m.pager.Focus(f.Offset, f.Def.Width())
	}
}

func (m *Model) treeHeight() int {
	h := m.height - HeaderHeight - StatusHeight - 2
	if h < 1 {
		return 1
	}
	return h
}

func (m *Model) clampScroll() {
	h := m.treeHeight()
	if m.cursor < m.scroll {
		m.scroll = m.cursor
	}
	if m.cursor >= m.scroll+h {
		m.scroll = m.cursor - h + 1
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
}

// resize recomputes the hex page to fit the window, keeping its anchor.
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	lines := buf.Clamp(height-HeaderHeight-StatusHeight-DetailHeight-2, 1, m.cfg.Hex.PageLines)
	anchor := m.pager.Anchor()
	m.pager = hexdump.NewPager(m.session.Size(), m.cfg.Hex.BytesPerLine, lines)
	m.pager.Jump(anchor)
	if f, ok := m.currentField(); ok {
		m.pager.Focus(f.Offset, f.Def.Width())
	}
	m.clampScroll()
}
