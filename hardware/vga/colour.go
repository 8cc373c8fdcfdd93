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

import "fmt"

// Color is one of the sixteen colours of the VGA text mode palette.
type Color uint8

// The VGA text mode palette.
const (
	Black Color = iota
	Blue
	Green
	Cyan
	Red
	Magenta
	Brown
	LightGrey
	DarkGrey
	LightBlue
	LightGreen
	LightCyan
	LightRed
	LightMagenta
	Yellow
	White
)

var colorNames = [...]string{
	"black", "blue", "green", "cyan", "red", "magenta", "brown", "light grey",
	"dark grey", "light blue", "light green", "light cyan", "light red",
	"light magenta", "yellow", "white",
}

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return fmt.Sprintf("colour %d", c)
}

// Attr is the attribute byte of a cell. The low nibble is the foreground
// colour and the high nibble is the background colour.
//
// Attributes should only be created with the Attribute() function.
type Attr uint8

// Attribute packs a foreground and background colour into an attribute
// byte.
func Attribute(foreground, background Color) Attr {
	return Attr(foreground) | Attr(background)<<4
}

// Foreground returns the foreground colour of the attribute.
func (a Attr) Foreground() Color {
	return Color(a & 0x0f)
}

// Background returns the background colour of the attribute.
func (a Attr) Background() Color {
	return Color(a >> 4)
}

func (a Attr) String() string {
	return fmt.Sprintf("%s on %s", a.Foreground(), a.Background())
}

// DefaultAttr is the attribute used when the console is reset.
var DefaultAttr = Attribute(LightGrey, Black)
