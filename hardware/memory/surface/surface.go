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

// Package surface contains the implementations of bus.SurfaceBus. A surface
// is the memory that a VGA grid is laid out on.
//
// RAM is an ordinary heap allocation and is what the tests and the plain
// text runner use. Physical binds to the real display memory and is only
// meaningful when running without an operating system. Shared is a POSIX
// shared memory segment that another process can map to watch the display.
package surface

import (
	"strings"

	"github.com/katos/katos/curated"
	"github.com/katos/katos/hardware/memory/bus"
	"github.com/katos/katos/hardware/memory/memorymap"
	"github.com/katos/katos/logger"
)

// Sentinal error patterns.
const (
	UnknownKind  = "surface: unknown kind (%s)"
	InvalidSize  = "surface: invalid size (%d bytes)"
	PhysicalSize = "surface: physical display memory is %d bytes (not %d)"
	SharedError  = "surface: shared memory: %v"
	ViewerWrite  = "surface: shared memory opened by a viewer is read-only"
)

// The list of surface kinds accepted by New().
const (
	KindRAM    = "ram"
	KindShared = "shm"
	KindVGA    = "vga"
)

// Closer is implemented by surfaces that hold resources outside of the Go
// heap.
type Closer interface {
	Close() error
}

// New creates a surface of the specified kind and size in bytes. Kind is
// case insensitive.
func New(kind string, size int) (bus.SurfaceBus, error) {
	if size <= 0 || size%memorymap.CellSize != 0 {
		return nil, curated.Errorf(InvalidSize, size)
	}

	var s bus.SurfaceBus

	switch strings.ToLower(kind) {
	case KindRAM:
		s = NewRAM(size)
	case KindShared:
		sh, err := NewShared(size)
		if err != nil {
			return nil, err
		}
		logger.Logf(logger.Allow, "surface", "shared memory segment %s", sh.Name())
		s = sh
	case KindVGA:
		if size != memorymap.SizeVGA {
			return nil, curated.Errorf(PhysicalSize, memorymap.SizeVGA, size)
		}
		s = NewPhysical(memorymap.OriginVGA, size)
	default:
		return nil, curated.Errorf(UnknownKind, kind)
	}

	logger.Logf(logger.Allow, "surface", "%s surface of %d bytes", strings.ToLower(kind), size)

	return s, nil
}
