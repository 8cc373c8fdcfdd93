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
	"github.com/gdamore/tcell/v2"
	"github.com/katos/katos/hardware/vga"
)

// VGA orders the colour bits as blue, green, red. ANSI orders them as red,
// green, blue. the intensity bit is the same in both
var ansi = [16]int{0, 4, 2, 6, 1, 5, 3, 7, 8, 12, 10, 14, 9, 13, 11, 15}

// ANSI returns the ANSI palette index for the VGA colour.
func ANSI(col vga.Color) int {
	return ansi[col&0x0f]
}

// Colour returns the tcell colour for the VGA colour.
func Colour(col vga.Color) tcell.Color {
	return tcell.PaletteColor(ANSI(col))
}

// Style returns the tcell style for the attribute.
func Style(attr vga.Attr) tcell.Style {
	return tcell.StyleDefault.
		Foreground(Colour(attr.Foreground())).
		Background(Colour(attr.Background()))
}
