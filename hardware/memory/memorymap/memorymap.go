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

// Package memorymap describes the VGA text mode display memory. The values
// are a hardware contract and are not configurable at runtime for the
// physical surface.
//
// Each cell occupies two consecutive bytes. The first byte is the character
// code and the second byte is the attribute:
//
//	offset  0     1     2     3     4    ...
//	       chr0  att0  chr1  att1  chr2  ...
package memorymap

// The origin of the display memory in the physical address space.
const OriginVGA = uintptr(0xb8000)

// Dimensions of the default text mode, in cells.
const (
	Width  = 80
	Height = 25
)

// CellSize is the number of bytes used by a single cell.
const CellSize = 2

// Offsets of the two bytes in a cell.
const (
	CharacterOffset = 0
	AttributeOffset = 1
)

// Size returns the number of bytes required by a display of the given
// dimensions.
func Size(width, height int) int {
	return width * height * CellSize
}

// SizeVGA is the number of bytes in the default display memory.
const SizeVGA = Width * Height * CellSize

// MemtopVGA is the last address of the default display memory.
const MemtopVGA = OriginVGA + SizeVGA - 1
