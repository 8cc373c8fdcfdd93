// This file is part of KatOS.
//
// KatOS is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// KatOS is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with KatOS.  If not, see <https://www.gnu.org/licenses/>.

package console

import (
	"github.com/katos/katos/hardware/memory"
	"github.com/katos/katos/hardware/vga"
)

// control is the closed set of character classes understood by the console.
type control int

const (
	printable control = iota
	newline
	carriageReturn
	tab
	backspace
)

func classify(c uint8) control {
	switch c {
	case '\n':
		return newline
	case '\r':
		return carriageReturn
	case '\t':
		return tab
	case '\b':
		return backspace
	}
	return printable
}

// tab stops are every eight columns.
const tabMask = ^7

// WriteChar writes a single character with the specified attribute and
// advances the cursor. Control characters move the cursor without writing a
// character, with the exception of backspace which blanks the cell it moves
// on to.
//
// Backspace in the first column does nothing. The cursor never moves back
// on to the previous row.
func (con *Console) WriteChar(c uint8, attr vga.Attr) {
	switch classify(c) {
	case newline:
		con.x = 0
		con.y++
	case carriageReturn:
		con.x = 0
	case tab:
		con.x = (con.x + 8) & tabMask
	case backspace:
		if con.x > 0 {
			con.x--
			con.grid.Write(con.x, con.y, vga.Cell{Character: vga.Blank, Attr: attr})
		}
	case printable:
		con.grid.Write(con.x, con.y, vga.Cell{Character: c, Attr: attr})
		con.x++
	}

	// wrap must be checked before scroll. a character in the last cell of
	// the grid wraps on to a row that doesn't exist and scrolls in the same
	// call
	if con.x >= con.grid.Width() {
		con.x = 0
		con.y++
	}

	if con.y >= con.grid.Height() {
		con.scroll(attr)
		con.y = con.grid.Height() - 1
	}
}

// scroll moves every row up by one and blanks the last row. rows must be
// copied in ascending order so that no row is overwritten before it is read.
func (con *Console) scroll(attr vga.Attr) {
	w := con.grid.Width()
	h := con.grid.Height()
	for y := 1; y < h; y++ {
		for x := 0; x < w; x++ {
			con.grid.Write(x, y-1, con.grid.Read(x, y))
		}
	}
	con.grid.BlankRow(h-1, attr)
}

// WriteString writes every byte of the string with the specified attribute.
func (con *Console) WriteString(s string, attr vga.Attr) {
	for i := 0; i < len(s); i++ {
		con.WriteChar(s[i], attr)
	}
}

// WriteCString writes the bytes of a zero terminated sequence, not
// including the terminator. The sequence must be terminated.
func (con *Console) WriteCString(str []uint8, attr vga.Attr) {
	n := memory.Length(str)
	for _, c := range str[:n] {
		con.WriteChar(c, attr)
	}
}
