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

package display

import (
	"os"

	"github.com/katos/katos/logger"
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// WaitKey implements the kernel.Halter interface by waiting for a single key
// press on a terminal. The terminal is put into raw mode for the duration of
// the wait so that the key does not need to be followed by return.
//
// If the input is not a terminal, Halt() returns immediately.
type WaitKey struct {
	input *os.File
}

// NewWaitKey is the preferred method of initialisation for the WaitKey type.
func NewWaitKey(input *os.File) *WaitKey {
	return &WaitKey{input: input}
}

// Halt implements the kernel.Halter interface.
func (wk *WaitKey) Halt() {
	fd := wk.input.Fd()

	var canAttr unix.Termios
	if err := termios.Tcgetattr(fd, &canAttr); err != nil {
		logger.Logf(logger.Allow, "display", "not waiting for key: %v", err)
		return
	}

	rawAttr := canAttr
	termios.Cfmakeraw(&rawAttr)
	if err := termios.Tcsetattr(fd, termios.TCSANOW, &rawAttr); err != nil {
		logger.Logf(logger.Allow, "display", "not waiting for key: %v", err)
		return
	}
	defer func() {
		if err := termios.Tcsetattr(fd, termios.TCSANOW, &canAttr); err != nil {
			logger.Log(logger.Allow, "display", err)
		}
	}()

	b := make([]byte, 1)
	if _, err := wk.input.Read(b); err != nil {
		logger.Log(logger.Allow, "display", err)
	}
}
