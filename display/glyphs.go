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

package display

import (
	"strings"

	"github.com/katos/katos/hardware/vga"
	"golang.org/x/text/encoding/charmap"
)

// the VGA font draws glyphs for the control codes. code page 437 as defined
// by golang.org/x/text decodes them as the control codes themselves, which
// can't be drawn by a terminal
var controlGlyphs = []rune(" ☺☻♥♦♣♠•◘○◙♂♀♪♫☼►◄↕‼¶§▬↨↑↓→←∟↔▲▼")

const deleteGlyph = '⌂'

// Decode returns the rune drawn by the VGA font for the character code.
// Code zero is drawn as a space.
func Decode(c uint8) rune {
	switch {
	case int(c) < len(controlGlyphs):
		return controlGlyphs[c]
	case c == 0x7f:
		return deleteGlyph
	}
	return charmap.CodePage437.DecodeByte(c)
}

// DecodeRow returns row y of the grid as a string of decoded runes.
func DecodeRow(grid *vga.Grid, y int) string {
	var s strings.Builder
	for x := 0; x < grid.Width(); x++ {
		s.WriteRune(Decode(grid.Read(x, y).Character))
	}
	return s.String()
}
