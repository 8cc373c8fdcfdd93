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
	"fmt"
	"strings"

	"github.com/katos/katos/hardware/memory"
)

// RAM is a surface allocated on the Go heap.
type RAM struct {
	memory []uint8
}

// NewRAM is the preferred method of initialisation for the RAM type. The
// memory is zeroed.
func NewRAM(size int) *RAM {
	return &RAM{
		memory: make([]uint8, size),
	}
}

// String returns a hex dump of the memory, sixteen bytes (eight cells) to a
// line.
func (ram *RAM) String() string {
	s := strings.Builder{}
	for i := 0; i < len(ram.memory); i += 16 {
		s.WriteString(fmt.Sprintf("%04x |", i))
		for j := i; j < i+16 && j < len(ram.memory); j++ {
			s.WriteString(fmt.Sprintf(" %02x", ram.memory[j]))
		}
		s.WriteString("\n")
	}
	return strings.TrimSuffix(s.String(), "\n")
}

// Size is an implementation of bus.SurfaceBus.
func (ram *RAM) Size() int {
	return len(ram.memory)
}

// Read is an implementation of bus.SurfaceBus.
func (ram *RAM) Read(offset int) uint8 {
	return ram.memory[offset]
}

// Write is an implementation of bus.SurfaceBus.
func (ram *RAM) Write(offset int, data uint8) {
	ram.memory[offset] = data
}

// Snapshot is an implementation of bus.Snapshotter.
func (ram *RAM) Snapshot(dest []uint8) {
	memory.Copy(dest, ram.memory, len(ram.memory))
}

// Clear sets every byte of the memory to zero.
func (ram *RAM) Clear() {
	memory.Fill(ram.memory, 0x00, len(ram.memory))
}
