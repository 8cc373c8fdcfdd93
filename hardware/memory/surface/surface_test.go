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

package surface_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/katos/katos/curated"
	"github.com/katos/katos/hardware/memory/bus"
	"github.com/katos/katos/hardware/memory/memorymap"
	"github.com/katos/katos/hardware/memory/surface"
	"github.com/katos/katos/test"
)

func TestRAM(t *testing.T) {
	ram := surface.NewRAM(8)
	test.DemandEquality(t, ram.Size(), 8)

	for i := 0; i < ram.Size(); i++ {
		test.ExpectEquality(t, ram.Read(i), uint8(0))
	}

	ram.Write(0, 'K')
	ram.Write(1, 0x07)
	test.ExpectEquality(t, ram.Read(0), uint8('K'))
	test.ExpectEquality(t, ram.Read(1), uint8(0x07))

	snap := make([]uint8, ram.Size())
	ram.Snapshot(snap)
	if diff := cmp.Diff([]uint8{'K', 0x07, 0, 0, 0, 0, 0, 0}, snap); diff != "" {
		t.Errorf("unexpected snapshot (-want +got):\n%s", diff)
	}

	test.ExpectEquality(t, ram.String(), "0000 | 4b 07 00 00 00 00 00 00")

	ram.Clear()
	test.ExpectEquality(t, ram.Read(0), uint8(0))
}

func TestRAMString(t *testing.T) {
	ram := surface.NewRAM(18)
	ram.Write(16, 0xff)
	test.ExpectEquality(t, ram.String(),
		"0000 | 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00\n"+
			"0010 | ff 00")
}

func TestNew(t *testing.T) {
	s, err := surface.New("RAM", memorymap.SizeVGA)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.Size(), memorymap.SizeVGA)

	_, ok := s.(bus.Snapshotter)
	test.ExpectSuccess(t, ok)

	_, err = surface.New("cga", memorymap.SizeVGA)
	test.ExpectSuccess(t, curated.Is(err, surface.UnknownKind))

	// surfaces must be a whole number of cells
	_, err = surface.New(surface.KindRAM, 3)
	test.ExpectSuccess(t, curated.Is(err, surface.InvalidSize))
	_, err = surface.New(surface.KindRAM, 0)
	test.ExpectSuccess(t, curated.Is(err, surface.InvalidSize))

	// the physical display memory has a fixed size. the size is checked
	// before the physical address is bound so this is safe to test
	_, err = surface.New(surface.KindVGA, memorymap.Size(40, 25))
	test.ExpectSuccess(t, curated.Is(err, surface.PhysicalSize))
}

func TestPhysicalBinding(t *testing.T) {
	// binding does not touch memory so the origin can be inspected under a
	// hosted operating system
	phy := surface.NewPhysical(memorymap.OriginVGA, memorymap.SizeVGA)
	test.ExpectEquality(t, phy.Origin(), uintptr(0xb8000))
	test.ExpectEquality(t, phy.Size(), 4000)
	test.ExpectEquality(t, memorymap.MemtopVGA, uintptr(0xb8f9f))
}

func TestShared(t *testing.T) {
	sh, err := surface.NewShared(memorymap.Size(4, 2))
	if err != nil {
		t.Skipf("shared memory not available: %v", err)
	}

	test.ExpectInequality(t, sh.Name(), "")
	test.DemandEquality(t, sh.Size(), 16)

	sh.Write(0, 'A')
	sh.Write(1, 0x1f)

	// a second mapping of the same segment sees the same bytes
	view, err := surface.OpenShared(sh.Name(), sh.Size())
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, view.Read(0), uint8('A'))
	test.ExpectEquality(t, view.Read(1), uint8(0x1f))
	test.ExpectSuccess(t, view.ReadOnly())
	test.ExpectEquality(t, sh.ReadOnly(), false)

	test.ExpectSuccess(t, view.Close())
	test.ExpectSuccess(t, sh.Close())
}

func TestSharedTooSmall(t *testing.T) {
	sh, err := surface.NewShared(memorymap.Size(40, 25))
	if err != nil {
		t.Skipf("shared memory not available: %v", err)
	}
	defer sh.Close()

	// the viewer asks for more than the segment holds
	_, err = surface.OpenShared(sh.Name(), memorymap.Size(80, 50))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, surface.InvalidSize))

	// a smaller view of the segment is fine
	view, err := surface.OpenShared(sh.Name(), memorymap.Size(40, 20))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, view.Size(), memorymap.Size(40, 20))
	test.ExpectSuccess(t, view.Close())
}

func TestSharedViewerWrite(t *testing.T) {
	sh, err := surface.NewShared(memorymap.Size(4, 2))
	if err != nil {
		t.Skipf("shared memory not available: %v", err)
	}
	defer sh.Close()

	view, err := surface.OpenShared(sh.Name(), sh.Size())
	test.DemandSuccess(t, err)
	defer view.Close()

	defer func() {
		r := recover()
		test.ExpectEquality(t, r, any(surface.ViewerWrite))

		// the segment is unchanged
		test.ExpectEquality(t, sh.Read(0), uint8(0))
	}()
	view.Write(0, 'A')
	t.Errorf("expected panic writing to a viewer surface")
}
