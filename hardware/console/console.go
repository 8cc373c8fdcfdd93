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

// Package console renders a stream of characters onto a VGA grid. The
// Console type owns the grid and the cursor. All changes to the grid go
// through WriteChar(), which handles the control characters, line wrapping
// and scrolling.
//
// The console is not safe for concurrent use. A future caller that writes
// from an interrupt handler must treat every call as a critical section.
package console

import (
	"github.com/katos/katos/hardware/vga"
)

// Console is a text console on a VGA grid.
type Console struct {
	grid *vga.Grid

	// cursor position. x is always less than the grid width and y is always
	// less than the grid height between calls to WriteChar()
	x int
	y int

	// attribute used by Reset() and by the io.Writer implementation
	attr vga.Attr
}

// NewConsole is the preferred method of initialisation for the Console type.
// The grid is not reset.
func NewConsole(grid *vga.Grid) *Console {
	return &Console{
		grid: grid,
		attr: vga.DefaultAttr,
	}
}

// Grid returns the grid the console writes to.
func (con *Console) Grid() *vga.Grid {
	return con.grid
}

// SetDefaultAttr changes the attribute used by Reset() and Write().
func (con *Console) SetDefaultAttr(attr vga.Attr) {
	con.attr = attr
}

// DefaultAttr returns the attribute used by Reset() and Write().
func (con *Console) DefaultAttr() vga.Attr {
	return con.attr
}

// Reset blanks every cell of the grid and returns the cursor to the top left
// corner.
func (con *Console) Reset() {
	con.grid.Fill(con.attr)
	con.x = 0
	con.y = 0
}

// Cursor returns the current cursor position.
func (con *Console) Cursor() (x int, y int) {
	return con.x, con.y
}

// Write implements the io.Writer interface. Every byte is written with the
// default attribute. It never returns an error.
func (con *Console) Write(p []byte) (int, error) {
	for _, c := range p {
		con.WriteChar(c, con.attr)
	}
	return len(p), nil
}
