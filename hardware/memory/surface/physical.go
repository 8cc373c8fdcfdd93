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

package surface

import (
	"unsafe"

	"github.com/katos/katos/hardware/memory"
)

// Physical is a surface laid over memory at a fixed physical address. This
// is the only place in the program where an address is turned into memory.
//
// Reading or writing a Physical surface under a hosted operating system
// will fault. It is for use from a freestanding kernel entry only.
type Physical struct {
	origin uintptr
	memory []uint8
}

// NewPhysical binds a surface of size bytes to the origin address. The
// memory is not touched until the first Read() or Write().
func NewPhysical(origin uintptr, size int) *Physical {
	return &Physical{
		origin: origin,
		memory: unsafe.Slice((*uint8)(unsafe.Pointer(origin)), size),
	}
}

// Origin returns the physical address of the first byte of the surface.
func (phy *Physical) Origin() uintptr {
	return phy.origin
}

// Size is an implementation of bus.SurfaceBus.
func (phy *Physical) Size() int {
	return len(phy.memory)
}

// Read is an implementation of bus.SurfaceBus.
func (phy *Physical) Read(offset int) uint8 {
	return phy.memory[offset]
}

// Write is an implementation of bus.SurfaceBus.
func (phy *Physical) Write(offset int, data uint8) {
	phy.memory[offset] = data
}

// Snapshot is an implementation of bus.Snapshotter.
func (phy *Physical) Snapshot(dest []uint8) {
	memory.Copy(dest, phy.memory, len(phy.memory))
}
