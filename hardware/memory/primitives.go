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

package memory

// Copy count bytes from src to dest, one byte at a time in ascending order.
// There is no overlap handling. Both slices must be at least count bytes
// long.
func Copy(dest []uint8, src []uint8, count int) {
	for i := 0; i < count; i++ {
		dest[i] = src[i]
	}
}

// Fill the first count bytes of dest with value.
func Fill(dest []uint8, value uint8, count int) {
	for i := 0; i < count; i++ {
		dest[i] = value
	}
}

// Length returns the number of bytes before the first zero byte in str. The
// sequence must be terminated. An unterminated sequence runs off the end of
// the slice.
func Length(str []uint8) int {
	n := 0
	for str[n] != 0x00 {
		n++
	}
	return n
}
