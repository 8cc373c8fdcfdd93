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

// Package preferences collates the preference values used to build the
// console hardware.
package preferences

import (
	"fmt"
	"strings"

	"github.com/katos/katos/curated"
	"github.com/katos/katos/hardware/memory/memorymap"
	"github.com/katos/katos/hardware/memory/surface"
	"github.com/katos/katos/hardware/vga"
	"github.com/katos/katos/prefs"
)

// Sentinal error patterns.
const (
	InvalidColour    = "preferences: %s must be between 0 and 15 (not %d)"
	InvalidDimension = "preferences: %s must be between 1 and 255 (not %d)"
	InvalidSurface   = "preferences: unknown surface (%s)"
)

// The keys used in prefs strings.
const (
	KeySurface    = "surface"
	KeyWidth      = "vga.width"
	KeyHeight     = "vga.height"
	KeyForeground = "vga.foreground"
	KeyBackground = "vga.background"
)

// Preferences defines the preference values for the console hardware.
type Preferences struct {
	// the kind of surface the grid is laid out on. one of the surface.Kind*
	// values
	Surface prefs.String

	// dimensions of the grid in cells. these are ignored for the VGA surface,
	// which has a fixed size
	Width  prefs.Int
	Height prefs.Int

	// colours of the default attribute
	Foreground prefs.Int
	Background prefs.Int
}

func (p *Preferences) String() string {
	return fmt.Sprintf("%s::%s; %s::%s; %s::%s; %s::%s; %s::%s",
		KeySurface, p.Surface.String(),
		KeyWidth, p.Width.String(),
		KeyHeight, p.Height.String(),
		KeyForeground, p.Foreground.String(),
		KeyBackground, p.Background.String(),
	)
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. Values in the current command line group of the prefs package
// override the defaults.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	p.Surface.SetHookPre(func(v prefs.Value) error {
		switch strings.ToLower(v.(string)) {
		case surface.KindRAM, surface.KindShared, surface.KindVGA:
			return nil
		}
		return curated.Errorf(InvalidSurface, v)
	})
	p.Width.SetHookPre(dimension(KeyWidth))
	p.Height.SetHookPre(dimension(KeyHeight))
	p.Foreground.SetHookPre(colour(KeyForeground))
	p.Background.SetHookPre(colour(KeyBackground))

	for key, v := range map[string]interface{ Set(prefs.Value) error }{
		KeySurface:    &p.Surface,
		KeyWidth:      &p.Width,
		KeyHeight:     &p.Height,
		KeyForeground: &p.Foreground,
		KeyBackground: &p.Background,
	} {
		if ok, s := prefs.GetCommandLinePref(key); ok {
			if err := v.Set(s); err != nil {
				return nil, err
			}
		}
	}

	return p, nil
}

func dimension(key string) func(prefs.Value) error {
	return func(v prefs.Value) error {
		if n := v.(int); n < 1 || n > 255 {
			return curated.Errorf(InvalidDimension, key, n)
		}
		return nil
	}
}

func colour(key string) func(prefs.Value) error {
	return func(v prefs.Value) error {
		if n := v.(int); n < 0 || n > 15 {
			return curated.Errorf(InvalidColour, key, n)
		}
		return nil
	}
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	p.Surface.Set(surface.KindRAM)
	p.Width.Set(memorymap.Width)
	p.Height.Set(memorymap.Height)
	p.Foreground.Set(int(vga.LightGrey))
	p.Background.Set(int(vga.Black))
}

// Attr returns the default attribute.
func (p *Preferences) Attr() vga.Attr {
	return vga.Attribute(vga.Color(p.Foreground.Get().(int)), vga.Color(p.Background.Get().(int)))
}

// Dimensions returns the width and height of the grid. The VGA surface is
// always the size of the physical display memory.
func (p *Preferences) Dimensions() (int, int) {
	if strings.ToLower(p.Surface.String()) == surface.KindVGA {
		return memorymap.Width, memorymap.Height
	}
	return p.Width.Get().(int), p.Height.Get().(int)
}
