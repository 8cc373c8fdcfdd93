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

package vga

import (
	"strings"

	"github.com/katos/katos/curated"
	"github.com/katos/katos/hardware/memory/bus"
	"github.com/katos/katos/hardware/memory/memorymap"
)

// Sentinal error patterns.
const (
	SurfaceMismatch = "vga: surface is %d bytes but a %dx%d grid needs %d"
	InvalidGeometry = "vga: invalid grid geometry (%dx%d)"
	OutOfRange      = "vga: cell (%d, %d) is outside of the %dx%d grid"
)

// Blank is the character used for empty cells.
const Blank = ' '

// Cell is one (character, attribute) pair.
type Cell struct {
	Character uint8
	Attr      Attr
}

// Grid is the character matrix of the display, laid out on a surface. The
// dimensions of the grid always match the size of the surface.
type Grid struct {
	surface bus.SurfaceBus
	width   int
	height  int
}

// NewGrid is the preferred method of initialisation for the Grid type. The
// surface must be exactly the size required by the width and height.
//
// The contents of the surface are left unchanged. Call Fill() or reset the
// console to blank the grid.
func NewGrid(surface bus.SurfaceBus, width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, curated.Errorf(InvalidGeometry, width, height)
	}

	sz := memorymap.Size(width, height)
	if surface.Size() != sz {
		return nil, curated.Errorf(SurfaceMismatch, surface.Size(), width, height, sz)
	}

	return &Grid{
		surface: surface,
		width:   width,
		height:  height,
	}, nil
}

// Width of the grid in cells.
func (grd *Grid) Width() int {
	return grd.width
}

// Height of the grid in cells.
func (grd *Grid) Height() int {
	return grd.height
}

// Surface returns the surface the grid is laid out on.
func (grd *Grid) Surface() bus.SurfaceBus {
	return grd.surface
}

// Index returns the cell number of the coordinates. There is no validation.
func (grd *Grid) Index(x, y int) int {
	return y*grd.width + x
}

// Read the cell at x, y. The coordinates must be inside the grid.
func (grd *Grid) Read(x, y int) Cell {
	o := grd.Index(x, y) * memorymap.CellSize
	return Cell{
		Character: grd.surface.Read(o + memorymap.CharacterOffset),
		Attr:      Attr(grd.surface.Read(o + memorymap.AttributeOffset)),
	}
}

// Write the cell at x, y. The coordinates must be inside the grid.
func (grd *Grid) Write(x, y int, c Cell) {
	o := grd.Index(x, y) * memorymap.CellSize
	grd.surface.Write(o+memorymap.CharacterOffset, c.Character)
	grd.surface.Write(o+memorymap.AttributeOffset, uint8(c.Attr))
}

// BlankRow sets every cell of row y to a blank with the specified attribute.
func (grd *Grid) BlankRow(y int, attr Attr) {
	for x := 0; x < grd.width; x++ {
		grd.Write(x, y, Cell{Character: Blank, Attr: attr})
	}
}

// Fill every cell of the grid with a blank of the specified attribute.
func (grd *Grid) Fill(attr Attr) {
	for y := 0; y < grd.height; y++ {
		grd.BlankRow(y, attr)
	}
}

// Peek is the checked equivalent of Read().
func (grd *Grid) Peek(x, y int) (Cell, error) {
	if x < 0 || x >= grd.width || y < 0 || y >= grd.height {
		return Cell{}, curated.Errorf(OutOfRange, x, y, grd.width, grd.height)
	}
	return grd.Read(x, y), nil
}

// Poke is the checked equivalent of Write().
func (grd *Grid) Poke(x, y int, c Cell) error {
	if x < 0 || x >= grd.width || y < 0 || y >= grd.height {
		return curated.Errorf(OutOfRange, x, y, grd.width, grd.height)
	}
	grd.Write(x, y, c)
	return nil
}

// Row returns the characters of row y as a string. Attributes are ignored.
func (grd *Grid) Row(y int) string {
	b := make([]byte, grd.width)
	for x := range b {
		b[x] = grd.Read(x, y).Character
	}
	return string(b)
}

// Rows returns the characters of every row.
func (grd *Grid) Rows() []string {
	r := make([]string, grd.height)
	for y := range r {
		r[y] = grd.Row(y)
	}
	return r
}

// String returns the characters of the grid with one line per row. Trailing
// blanks are removed from each row.
func (grd *Grid) String() string {
	s := strings.Builder{}
	for y := 0; y < grd.height; y++ {
		s.WriteString(strings.TrimRight(grd.Row(y), string(Blank)))
		s.WriteString("\n")
	}
	return s.String()
}
