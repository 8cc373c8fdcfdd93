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

package console

import "github.com/katos/katos/hardware/vga"

// enough digits for the largest uint64 in base 10 (and therefore base 16)
const maxDigits = 20

const hexDigits = "0123456789ABCDEF"

// WriteDecimal writes an unsigned number in base 10.
func (con *Console) WriteDecimal(number uint64, attr vga.Attr) {
	if number == 0 {
		con.WriteChar('0', attr)
		return
	}

	var digits [maxDigits]uint8
	n := 0
	for number > 0 {
		digits[n] = '0' + uint8(number%10)
		number /= 10
		n++
	}

	for n > 0 {
		n--
		con.WriteChar(digits[n], attr)
	}
}

// WriteHex writes an unsigned number in base 16 with a "0x" prefix. Digits
// above nine are upper case and there is no zero padding.
func (con *Console) WriteHex(number uint64, attr vga.Attr) {
	if number == 0 {
		con.WriteString("0x0", attr)
		return
	}

	var digits [maxDigits]uint8
	n := 0
	for number > 0 {
		digits[n] = hexDigits[number%16]
		number /= 16
		n++
	}

	con.WriteString("0x", attr)
	for n > 0 {
		n--
		con.WriteChar(digits[n], attr)
	}
}
