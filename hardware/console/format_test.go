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

package console_test

import (
	"math"
	"strings"
	"testing"

	"github.com/katos/katos/hardware/memory/memorymap"
	"github.com/katos/katos/test"
)

func TestDecimal(t *testing.T) {
	for _, tc := range []struct {
		number   uint64
		expected string
	}{
		{0, "0"},
		{7, "7"},
		{42, "42"},
		{1000, "1000"},
		{65535, "65535"},
		{math.MaxUint64, "18446744073709551615"},
	} {
		con := newConsole(t, memorymap.Width, memorymap.Height)
		con.WriteDecimal(tc.number, green)
		test.ExpectEquality(t, strings.TrimRight(con.Grid().Row(0), " "), tc.expected, tc.number)

		x, _ := con.Cursor()
		test.ExpectEquality(t, x, len(tc.expected), tc.number)
		test.ExpectEquality(t, con.Grid().Read(0, 0).Attr, green)
	}
}

func TestHex(t *testing.T) {
	for _, tc := range []struct {
		number   uint64
		expected string
	}{
		{0, "0x0"},
		{10, "0xA"},
		{16, "0x10"},
		{255, "0xFF"},
		{0xb8000, "0xB8000"},
		{math.MaxUint64, "0xFFFFFFFFFFFFFFFF"},
	} {
		con := newConsole(t, memorymap.Width, memorymap.Height)
		con.WriteHex(tc.number, green)
		test.ExpectEquality(t, strings.TrimRight(con.Grid().Row(0), " "), tc.expected, tc.number)
	}
}

func TestFormattedWrap(t *testing.T) {
	// formatted numbers take part in wrapping like any other text
	con := newConsole(t, 4, 2)
	con.WriteString("ab", green)
	con.WriteHex(0xff, green)
	test.ExpectEquality(t, con.Grid().Row(0), "ab0x")
	test.ExpectEquality(t, con.Grid().Row(1), "FF  ")

	x, y := con.Cursor()
	test.ExpectEquality(t, x, 2)
	test.ExpectEquality(t, y, 1)

	// and scrolling
	con.WriteDecimal(12345, green)
	test.ExpectEquality(t, con.Grid().Row(0), "FF12")
	test.ExpectEquality(t, con.Grid().Row(1), "345 ")
}
