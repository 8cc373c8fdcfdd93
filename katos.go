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

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/katos/katos/curated"
	"github.com/katos/katos/digest"
	"github.com/katos/katos/display"
	"github.com/katos/katos/hardware"
	"github.com/katos/katos/hardware/memory/memorymap"
	"github.com/katos/katos/hardware/memory/surface"
	"github.com/katos/katos/hardware/preferences"
	"github.com/katos/katos/hardware/vga"
	"github.com/katos/katos/kernel"
	"github.com/katos/katos/logger"
	"github.com/katos/katos/modalflag"
	"github.com/katos/katos/prefs"
	"github.com/katos/katos/statsview"
)

// exit values
const (
	exitOK    = 0
	exitParse = 10
	exitMode  = 20
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch parses the arguments and runs the selected mode. returns the value
// to be used with os.Exit().
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("RUN", "PLAIN", "DIGEST", "SHM", "WATCH")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParse
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, output)
	case "PLAIN":
		err = plain(md, output)
	case "DIGEST":
		err = digestMode(md, output)
	case "SHM":
		err = shm(md, output)
	case "WATCH":
		err = watch(md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return exitMode
	}

	return exitOK
}

// flags common to every mode that boots the kernel.
type common struct {
	prefs     *string
	log       *bool
	memviz    *string
	statsview *bool
}

func addCommon(md *modalflag.Modes) *common {
	return &common{
		prefs:     md.AddString("prefs", "", "preferences for the hardware (eg. \"vga.foreground::2; surface::ram\")"),
		log:       md.AddBool("log", false, "echo log to stdout"),
		memviz:    md.AddString("memviz", "", "write a graphviz description of the console to file"),
		statsview: md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsviewState())),
	}
}

func statsviewState() string {
	if statsview.Available() {
		return "available"
	}
	return "not available in this build"
}

// setup acts on the common flags and creates the hardware. the Machine
// should be closed by the caller.
func (c *common) setup(md *modalflag.Modes, output io.Writer) (*hardware.Machine, error) {
	if *c.log {
		logger.SetEcho(output)
	} else {
		logger.SetEcho(nil)
	}

	if *c.statsview {
		if !statsview.Available() {
			return nil, curated.Errorf("statsview not available in this build")
		}
		statsview.Launch(output)
	}

	prefs.PushCommandLineStack(*c.prefs)
	p, err := preferences.NewPreferences()
	unused := prefs.PopCommandLineStack()
	if err != nil {
		return nil, err
	}
	if unused != "" {
		logger.Logf(logger.Allow, "katos", "unused preferences: %s", unused)
	}

	logger.Logf(logger.Allow, "katos", "%s mode: %s", md, p)

	return hardware.NewMachine(p)
}

// writeMemviz writes the console structure to the file named by the memviz
// flag. nothing is written if the flag is empty.
func (c *common) writeMemviz(m *hardware.Machine) error {
	if *c.memviz == "" {
		return nil
	}

	f, err := os.Create(*c.memviz)
	if err != nil {
		return curated.Errorf("memviz: %v", err)
	}
	defer f.Close()

	memviz.Map(f, m.Console)
	logger.Logf(logger.Allow, "katos", "memviz written to %s", *c.memviz)

	return nil
}

// renderer is implemented by display.Terminal and display.Plain.
type renderer interface {
	Render(grid *vga.Grid) error
}

// halter implements the kernel.Halter interface. the grid is rendered
// before the halt is passed on to the next Halter, if any.
type halter struct {
	render renderer
	grid   *vga.Grid
	next   kernel.Halter
	err    error
}

func (h *halter) Halt() {
	h.err = h.render.Render(h.grid)
	if h.err != nil || h.next == nil {
		return
	}
	h.next.Halt()
}

func noArgs(md *modalflag.Modes) error {
	if len(md.RemainingArgs()) > 0 {
		return curated.Errorf("too many arguments for %s mode", md)
	}
	return nil
}

func run(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	c := addCommon(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	if err := noArgs(md); err != nil {
		return err
	}

	m, err := c.setup(md, output)
	if err != nil {
		return err
	}
	defer m.Close()

	trm, err := display.NewTerminal()
	if err != nil {
		return err
	}

	h := &halter{render: trm, grid: m.Grid, next: trm}
	kernel.Main(m.Console, h)
	trm.Close()

	if h.err != nil {
		return h.err
	}

	return c.writeMemviz(m)
}

func plain(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	c := addCommon(md)
	wait := md.AddBool("wait", true, "wait for a key press after printing the display")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	if err := noArgs(md); err != nil {
		return err
	}

	m, err := c.setup(md, output)
	if err != nil {
		return err
	}
	defer m.Close()

	h := &halter{render: display.NewPlain(output), grid: m.Grid}
	if *wait {
		h.next = display.NewWaitKey(os.Stdin)
	}
	kernel.Main(m.Console, h)

	if h.err != nil {
		return h.err
	}

	return c.writeMemviz(m)
}

func digestMode(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	c := addCommon(md)
	dump := md.AddBool("dump", false, "print the display before the digest")
	md.AdditionalHelp("Boots the kernel and prints a digest of the display. Digests from different\nbuilds can be compared to check that the output has not changed.")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	if err := noArgs(md); err != nil {
		return err
	}

	m, err := c.setup(md, output)
	if err != nil {
		return err
	}
	defer m.Close()

	kernel.Main(m.Console, nil)

	if *dump {
		if err := display.NewPlain(output).Render(m.Grid); err != nil {
			return err
		}
	}

	dig := digest.NewGrid(m.Grid)
	dig.Update()
	fmt.Fprintln(output, dig.Hash())

	return c.writeMemviz(m)
}

// interrupt implements the kernel.Halter interface by waiting for an
// interrupt signal.
type interrupt struct{}

func (interrupt) Halt() {
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)
	<-intChan
}

func shm(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	c := addCommon(md)
	md.AdditionalHelp("Boots the kernel with the display in shared memory. The name of the shared\nmemory is printed and can be given to WATCH mode. Ends on ctrl-c.")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	if err := noArgs(md); err != nil {
		return err
	}

	// the surface preference is always shm in this mode
	*c.prefs = fmt.Sprintf("%s; %s::%s", *c.prefs, preferences.KeySurface, surface.KindShared)

	m, err := c.setup(md, output)
	if err != nil {
		return err
	}
	defer m.Close()

	sh, ok := m.Surface.(*surface.Shared)
	if !ok {
		return curated.Errorf("surface is not shared memory")
	}

	w, h := m.Grid.Width(), m.Grid.Height()
	fmt.Fprintf(output, "display is in shared memory: %s\n", sh.Name())
	fmt.Fprintf(output, "watch with: katos watch -prefs \"vga.width::%d; vga.height::%d\" %s\n", w, h, sh.Name())
	fmt.Fprintln(output, "ctrl-c to end")

	kernel.Main(m.Console, interrupt{})
	fmt.Fprintln(output, "\r")

	return c.writeMemviz(m)
}

func watch(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	prefsFlag := md.AddString("prefs", "", "dimensions of the shared display (eg. \"vga.width::80; vga.height::25\")")
	refresh := md.AddDuration("refresh", 100*time.Millisecond, "how often to redraw the display")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return curated.Errorf("shared memory name required for %s mode", md)
	case 1:
	default:
		return curated.Errorf("too many arguments for %s mode", md)
	}

	prefs.PushCommandLineStack(*prefsFlag)
	pr, err := preferences.NewPreferences()
	prefs.PopCommandLineStack()
	if err != nil {
		return err
	}
	w, h := pr.Width.Get().(int), pr.Height.Get().(int)

	sh, err := surface.OpenShared(md.GetArg(0), memorymap.Size(w, h))
	if err != nil {
		return err
	}
	defer sh.Close()

	grid, err := vga.NewGrid(sh, w, h)
	if err != nil {
		return err
	}

	trm, err := display.NewTerminal()
	if err != nil {
		return err
	}
	defer trm.Close()
	trm.Refresh = *refresh

	if err := trm.Render(grid); err != nil {
		return err
	}
	trm.Halt()

	return nil
}
