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

// Package display shows the contents of a vga.Grid on the host. The Terminal
// type draws the grid with tcell and the Plain type writes the grid as text
// to any io.Writer.
//
// Character codes are decoded as code page 437, the character set of the
// VGA text mode font. The sixteen VGA colours are mapped to the sixteen
// colour ANSI palette.
//
// Both Terminal and WaitKey implement the kernel.Halter interface and can be
// used as the idle loop of the kernel entry.
package display
