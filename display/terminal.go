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
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/katos/katos/curated"
	"github.com/katos/katos/hardware/vga"
	"github.com/katos/katos/logger"
)

// Sentinal error patterns.
const (
	ScreenError = "display: screen: %v"
	NoScreen    = "display: screen has been closed"
)

// Terminal draws the grid on a tcell screen. The screen is resized to the
// grid if the screen supports it.
type Terminal struct {
	screen tcell.Screen

	// the most recently rendered grid. used to redraw the screen when
	// required
	grid *vga.Grid

	// if Refresh is non-zero the grid is redrawn periodically by Halt().
	// used when the grid is being changed by another process
	Refresh time.Duration

	// events from the screen are forwarded by the poll() goroutine for the
	// lifetime of the Terminal
	events chan tcell.Event
	quit   chan struct{}

	closeOnce sync.Once
}

// NewTerminal creates a Terminal for the host's terminal.
func NewTerminal() (*Terminal, error) {
	scr, err := tcell.NewScreen()
	if err != nil {
		return nil, curated.Errorf(ScreenError, err)
	}
	return NewTerminalWithScreen(scr)
}

// NewTerminalWithScreen creates a Terminal for an existing screen. The
// screen will be initialised.
func NewTerminalWithScreen(scr tcell.Screen) (*Terminal, error) {
	if err := scr.Init(); err != nil {
		return nil, curated.Errorf(ScreenError, err)
	}
	scr.HideCursor()
	scr.Clear()

	logger.Log(logger.Allow, "display", "terminal initialised")

	trm := &Terminal{
		screen: scr,
		events: make(chan tcell.Event),
		quit:   make(chan struct{}),
	}
	go trm.poll(scr)

	return trm, nil
}

func (trm *Terminal) poll(scr tcell.Screen) {
	for {
		ev := scr.PollEvent()
		if ev == nil {
			return
		}
		select {
		case trm.events <- ev:
		case <-trm.quit:
			return
		}
	}
}

// Close the terminal and restore the host terminal to its original state.
func (trm *Terminal) Close() {
	trm.closeOnce.Do(func() {
		close(trm.quit)
		trm.screen.Fini()
		trm.screen = nil
	})
}

// Render the grid to the screen.
func (trm *Terminal) Render(grid *vga.Grid) error {
	if trm.screen == nil {
		return curated.Errorf(NoScreen)
	}

	if sim, ok := trm.screen.(tcell.SimulationScreen); ok && trm.grid != grid {
		sim.SetSize(grid.Width(), grid.Height())
	}
	trm.grid = grid

	trm.draw()
	return nil
}

func (trm *Terminal) draw() {
	for y := 0; y < trm.grid.Height(); y++ {
		for x := 0; x < trm.grid.Width(); x++ {
			c := trm.grid.Read(x, y)
			trm.screen.SetContent(x, y, Decode(c.Character), nil, Style(c.Attr))
		}
	}
	trm.screen.Show()
}

// Halt implements the kernel.Halter interface. It waits for a key press.
// Resize events cause the grid to be redrawn.
func (trm *Terminal) Halt() {
	if trm.screen == nil {
		return
	}

	var tick <-chan time.Time
	if trm.Refresh > 0 {
		ticker := time.NewTicker(trm.Refresh)
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		select {
		case ev := <-trm.events:
			switch ev.(type) {
			case *tcell.EventKey:
				logger.Log(logger.Allow, "display", "key pressed")
				return
			case *tcell.EventResize:
				trm.screen.Sync()
				if trm.grid != nil {
					trm.draw()
				}
			}
		case <-tick:
			if trm.grid != nil {
				trm.draw()
			}
		}
	}
}
