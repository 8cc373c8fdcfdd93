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

// Package vga models the text mode character grid. The grid is a
// width x height matrix of cells laid out on a surface (see the surface
// package) in row order. The cell at column x and row y is cell number:
//
//	y * width + x
//
// Read() and Write() do not check coordinates. They are for the console,
// which keeps its cursor inside the grid. Peek() and Poke() are checked and
// are for everything else.
package vga
