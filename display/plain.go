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
	"fmt"
	"io"
	"strings"

	"github.com/katos/katos/curated"
	"github.com/katos/katos/hardware/vga"
)

// WriteError is returned by Plain.Render() when the output can't be written
// to.
const WriteError = "display: plain: %v"

// Plain writes the grid as text. Attributes are ignored. Trailing spaces on
// each row are not written and neither are empty rows at the bottom of the
// grid.
type Plain struct {
	out io.Writer
}

// NewPlain is the preferred method of initialisation for the Plain type.
func NewPlain(out io.Writer) *Plain {
	return &Plain{out: out}
}

// Render the grid to the output.
func (pln *Plain) Render(grid *vga.Grid) error {
	rows := make([]string, grid.Height())
	last := -1
	for y := range rows {
		rows[y] = strings.TrimRight(DecodeRow(grid, y), " ")
		if rows[y] != "" {
			last = y
		}
	}

	for _, r := range rows[:last+1] {
		if _, err := fmt.Fprintln(pln.out, r); err != nil {
			return curated.Errorf(WriteError, err)
		}
	}

	return nil
}
