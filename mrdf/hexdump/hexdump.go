// Package hexdump renders offset/hex/ASCII lines and pages through a buffer.
package hexdump

import (
	"fmt"
	"strings"

	"github.com/joshuapare/mrdfkit/internal/buf"
)

// DefaultBytesPerLine is the conventional dump width.
const DefaultBytesPerLine = 16

// hexStart is the column of the first hex digit: 8 offset digits plus two spaces.
const hexStart = 10

// Lines renders up to n bytes of b starting at start as dump lines:
//
//	00000020  00 00 F1 42 ...  |...B|
//
// The hex column is padded so the ASCII column lines up on short lines.
func Lines(b []byte, start, n, perLine int) []string {
	if perLine <= 0 {
		perLine = DefaultBytesPerLine
	}
	if start < 0 {
		start = 0
	}
	end := start + n
	if end > len(b) {
		end = len(b)
	}
	var lines []string
	for off := start; off < end; off += perLine {
		stop := off + perLine
		if stop > end {
			stop = end
		}
		lines = append(lines, Line(b[off:stop], off, perLine))
	}
	return lines
}

// Line renders a single dump line for chunk located at off.
func Line(chunk []byte, off, perLine int) string {
	var hex, ascii strings.Builder
	for i, c := range chunk {
		if i > 0 {
			hex.WriteByte(' ')
		}
		fmt.Fprintf(&hex, "%02X", c)
		if IsPrintable(c) {
			ascii.WriteByte(c)
		} else {
			ascii.WriteByte('.')
		}
	}
	return fmt.Sprintf("%08X  %-*s  |%s|", off, perLine*3-1, hex.String(), ascii.String())
}

// IsPrintable reports whether c is printable ASCII.
func IsPrintable(c byte) bool { return c >= 32 && c <= 126 }

// HexColumn returns the column of the i'th byte's first hex digit in a dump line.
func HexColumn(i int) int { return hexStart + 3*i }

// Pager tracks the anchor of a fixed-size window over a buffer.
type Pager struct {
	Size    int // buffer length
	PerLine int
	Lines   int // lines per page
	anchor  int
}

// NewPager returns a pager over a buffer of size bytes.
func NewPager(size, perLine, lines int) *Pager {
	if perLine <= 0 {
		perLine = DefaultBytesPerLine
	}
	if lines <= 0 {
		lines = 1
	}
	return &Pager{Size: size, PerLine: perLine, Lines: lines}
}

// PageSize returns the number of bytes shown per page.
func (p *Pager) PageSize() int { return p.PerLine * p.Lines }

// Anchor returns the first offset shown.
func (p *Pager) Anchor() int { return p.anchor }

// Jump moves the anchor to the line containing off, clamped so the anchor
// stays inside the buffer.
func (p *Pager) Jump(off int) {
	last := 0
	if p.Size > 0 {
		last = buf.AlignDown(p.Size-1, p.PerLine)
	}
	p.anchor = buf.Clamp(buf.AlignDown(off, p.PerLine), 0, last)
}

// Next advances one page.
func (p *Pager) Next() { p.Jump(p.anchor + p.PageSize()) }

// Prev goes back one page.
func (p *Pager) Prev() { p.Jump(p.anchor - p.PageSize()) }

// Visible reports whether [off, off+n) is entirely on the current page.
func (p *Pager) Visible(off, n int) bool {
	return off >= p.anchor && off+n <= p.anchor+p.PageSize()
}

// Focus makes [off, off+n) visible, moving the anchor only when needed. The
// range starts near the top of the new page.
func (p *Pager) Focus(off, n int) {
	if p.Visible(off, n) {
		return
	}
	p.Jump(off - p.PerLine)
}

// Page renders the current page of b.
func (p *Pager) Page(b []byte) []string {
	return Lines(b, p.anchor, p.PageSize(), p.PerLine)
}
