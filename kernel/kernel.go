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

// Package kernel is the kernel entry. It resets the console, writes the
// welcome banner and then halts.
package kernel

import (
	"github.com/katos/katos/hardware/console"
	"github.com/katos/katos/logger"
)

// Halter is the idle loop entered once the kernel has started. A bare metal
// implementation never returns. Hosted implementations return when the
// user is finished with the display.
type Halter interface {
	Halt()
}

// the welcome banner. lines are zero terminated, as they would be when
// linked into a kernel image.
var banner = [][]uint8{
	[]uint8("KatOS 64-bit Kernel loaded successfully!\n\r\x00"),
	[]uint8("--------------------------------\n\r\x00"),
	[]uint8("Starting initialization...\n\r\x00"),
	[]uint8("System running in 64-bit Long Mode\n\r\x00"),
}

// Prompt is written after the banner.
const Prompt = "\n\rKatOS> "

// Main resets the console, writes the banner and the prompt, and then calls
// the halter. A nil halter returns immediately.
func Main(con *console.Console, halt Halter) {
	attr := con.DefaultAttr()

	con.Reset()
	logger.Logf(logger.Allow, "kernel", "console reset (%s)", attr)

	for _, l := range banner {
		con.WriteCString(l, attr)
	}
	con.WriteString(Prompt, attr)

	if halt == nil {
		return
	}

	logger.Log(logger.Allow, "kernel", "halt")
	halt.Halt()
}
