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

package kernel_test

import (
	"testing"

	"github.com/katos/katos/hardware/console"
	"github.com/katos/katos/hardware/memory/memorymap"
	"github.com/katos/katos/hardware/memory/surface"
	"github.com/katos/katos/hardware/vga"
	"github.com/katos/katos/kernel"
	"github.com/katos/katos/test"
)

const expectedBanner = "KatOS 64-bit Kernel loaded successfully!\n" +
	"--------------------------------\n" +
	"Starting initialization...\n" +
	"System running in 64-bit Long Mode\n" +
	"\n" +
	"KatOS>\n"

type countHalt struct {
	count int
}

func (h *countHalt) Halt() {
	h.count++
}

func newConsole(t *testing.T, width, height int) *console.Console {
	t.Helper()
	grd, err := vga.NewGrid(surface.NewRAM(memorymap.Size(width, height)), width, height)
	test.DemandSuccess(t, err)
	return console.NewConsole(grd)
}

func TestKernelMain(t *testing.T) {
	con := newConsole(t, memorymap.Width, memorymap.Height)

	// garbage in the display memory is cleared by the kernel
	con.WriteString("garbage", vga.Attribute(vga.Red, vga.Red))

	h := &countHalt{}
	kernel.Main(con, h)
	test.ExpectEquality(t, h.count, 1)

	// the grid String() function trims trailing blanks so the prompt's
	// trailing space is not in the expected string
	s := con.Grid().String()
	test.ExpectEquality(t, s[:len(expectedBanner)], expectedBanner)

	x, y := con.Cursor()
	test.ExpectEquality(t, x, len(kernel.Prompt)-2)
	test.ExpectEquality(t, y, 5)

	for x := 0; x < memorymap.Width; x++ {
		test.ExpectEquality(t, con.Grid().Read(x, 0).Attr, vga.DefaultAttr)
	}
}

func TestKernelNilHalt(t *testing.T) {
	con := newConsole(t, memorymap.Width, memorymap.Height)
	con.SetDefaultAttr(vga.Attribute(vga.LightGreen, vga.Black))
	kernel.Main(con, nil)
	test.ExpectEquality(t, con.Grid().Read(0, 0), vga.Cell{Character: 'K', Attr: vga.Attribute(vga.LightGreen, vga.Black)})
}

func TestKernelSmallDisplay(t *testing.T) {
	// the banner scrolls off a small display leaving the prompt on the last
	// row
	con := newConsole(t, 20, 3)
	kernel.Main(con, nil)

	x, y := con.Cursor()
	test.ExpectEquality(t, x, 7)
	test.ExpectEquality(t, y, 2)
	test.ExpectEquality(t, con.Grid().Row(2), "KatOS>              ")
}
