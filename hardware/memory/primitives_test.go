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

package memory_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/katos/katos/hardware/memory"
	"github.com/katos/katos/test"
)

func TestCopy(t *testing.T) {
	src := []uint8("KatOS> ")

	for n := 0; n <= len(src); n++ {
		dest := make([]uint8, len(src))
		memory.Copy(dest, src, n)

		if diff := cmp.Diff(src[:n], dest[:n]); diff != "" {
			t.Errorf("copy of %d bytes (-want +got):\n%s", n, diff)
		}

		// bytes beyond the count are untouched
		for _, b := range dest[n:] {
			test.ExpectEquality(t, b, uint8(0))
		}
	}
}

func TestCopyZero(t *testing.T) {
	// a zero count copy does not touch either slice, even if they are empty
	memory.Copy(nil, nil, 0)

	dest := []uint8{1, 2, 3}
	memory.Copy(dest, []uint8{9, 9, 9}, 0)
	if diff := cmp.Diff([]uint8{1, 2, 3}, dest); diff != "" {
		t.Errorf("zero length copy changed destination (-want +got):\n%s", diff)
	}
}

func TestFill(t *testing.T) {
	dest := make([]uint8, 6)
	memory.Fill(dest, ' ', 4)
	if diff := cmp.Diff([]uint8{' ', ' ', ' ', ' ', 0, 0}, dest); diff != "" {
		t.Errorf("unexpected fill (-want +got):\n%s", diff)
	}

	memory.Fill(dest, 0x07, 0)
	test.ExpectEquality(t, dest[0], uint8(' '))
}

func TestLength(t *testing.T) {
	test.ExpectEquality(t, memory.Length([]uint8{0}), 0)
	test.ExpectEquality(t, memory.Length([]uint8("KatOS\x00")), 5)

	// only the bytes before the first terminator are counted
	test.ExpectEquality(t, memory.Length([]uint8("Kat\x00OS\x00")), 3)
}

func TestLengthUnterminated(t *testing.T) {
	defer func() {
		test.ExpectInequality(t, recover(), nil)
	}()
	memory.Length([]uint8("KatOS"))
}
