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

package digest

import (
	"encoding/binary"
	"fmt"

	"github.com/katos/katos/hardware/memory/bus"
	"github.com/katos/katos/hardware/vga"
	"github.com/zeebo/xxh3"
)

// the number of bytes at the head of the data buffer reserved for the
// previous digest value
const chainLen = 8

// Grid is an implementation of the Digest interface for a vga.Grid. Each
// call to Update() hashes the grid's surface. The previous digest value is
// included in the hash so that a digest describes the sequence of updates
// and not just the most recent one.
//
// xxh3 is fine for this application because this is not a cryptographic
// task.
type Grid struct {
	grid   *vga.Grid
	digest uint64
	data   []uint8
}

// NewGrid is the preferred method of initialisation for the Grid type.
func NewGrid(grid *vga.Grid) *Grid {
	return &Grid{
		grid: grid,
		data: make([]uint8, chainLen+grid.Surface().Size()),
	}
}

// Hash implements the digest.Digest interface.
func (dig *Grid) Hash() string {
	return fmt.Sprintf("%016x", dig.digest)
}

// ResetDigest implements the digest.Digest interface.
func (dig *Grid) ResetDigest() {
	dig.digest = 0
}

// Update the digest with the current contents of the grid.
func (dig *Grid) Update() {
	// chain digests by copying the value of the last digest to the head of
	// the data buffer
	binary.LittleEndian.PutUint64(dig.data[:chainLen], dig.digest)

	surface := dig.grid.Surface()
	if s, ok := surface.(bus.Snapshotter); ok {
		s.Snapshot(dig.data[chainLen:])
	} else {
		for i := 0; i < surface.Size(); i++ {
			dig.data[chainLen+i] = surface.Read(i)
		}
	}

	dig.digest = xxh3.Hash(dig.data)
}
