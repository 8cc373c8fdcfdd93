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

package hardware

import (
	"github.com/katos/katos/curated"
	"github.com/katos/katos/hardware/console"
	"github.com/katos/katos/hardware/memory/bus"
	"github.com/katos/katos/hardware/memory/memorymap"
	"github.com/katos/katos/hardware/memory/surface"
	"github.com/katos/katos/hardware/preferences"
	"github.com/katos/katos/hardware/vga"
	"github.com/katos/katos/logger"
)

// surface constructor. replaced by tests
var newSurface = surface.New

// Machine is the console hardware.
type Machine struct {
	Prefs *preferences.Preferences

	Surface bus.SurfaceBus
	Grid    *vga.Grid
	Console *console.Console
}

// NewMachine creates a new Machine and everything associated with the
// hardware. The grid is not reset. That is the job of the kernel entry.
func NewMachine(prefs *preferences.Preferences) (*Machine, error) {
	m := &Machine{Prefs: prefs}

	w, h := prefs.Dimensions()

	var err error

	m.Surface, err = newSurface(prefs.Surface.String(), memorymap.Size(w, h))
	if err != nil {
		return nil, curated.Errorf("hardware: %v", err)
	}

	m.Grid, err = vga.NewGrid(m.Surface, w, h)
	if err != nil {
		// the surface may hold a shared memory segment that would otherwise
		// outlive the process
		if cerr := m.Close(); cerr != nil {
			logger.Log(logger.Allow, "hardware", cerr)
		}
		return nil, curated.Errorf("hardware: %v", err)
	}

	m.Console = console.NewConsole(m.Grid)
	m.Console.SetDefaultAttr(prefs.Attr())

	return m, nil
}

// Close releases any resources held by the surface.
func (m *Machine) Close() error {
	if c, ok := m.Surface.(surface.Closer); ok {
		if err := c.Close(); err != nil {
			return curated.Errorf("hardware: %v", err)
		}
	}
	return nil
}
