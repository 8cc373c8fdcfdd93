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

// Package bus defines the memory bus concept. For an explanation see the
// memory package documentation.
package bus

// SurfaceBus defines the operations on a region of display memory. Offsets
// are in bytes from the start of the region and must be less than Size().
//
// There is no error reporting on this bus. The VGA package guarantees that
// every offset it uses is in range.
type SurfaceBus interface {
	// the number of bytes in the region
	Size() int

	Read(offset int) uint8
	Write(offset int, data uint8)
}

// Snapshotter is implemented by surfaces that can copy their entire contents
// in one operation. The destination must be at least Size() bytes long.
type Snapshotter interface {
	Snapshot(dest []uint8)
}
