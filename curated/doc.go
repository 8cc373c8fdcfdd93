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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It takes a pattern
// and placeholder values in the same way as fmt.Errorf() but the pattern is
// remembered so that the error can be identified later with the Is() and
// Has() functions. Packages should declare their patterns as constants:
//
//	const UnknownSurface = "surface: unknown kind (%s)"
//
//	err := curated.Errorf(UnknownSurface, kind)
//	if curated.Is(err, UnknownSurface) {
//		...
//	}
//
// Has() is similar to Is() but will look for the pattern anywhere in the
// chain of wrapped errors:
//
//	f := curated.Errorf("katos: %v", err)
//	curated.Has(f, UnknownSurface) // true
//	curated.Is(f, UnknownSurface)  // false
//
// The Error() implementation normalises the message by removing duplicate
// adjacent parts. This means that code does not need to worry about whether
// the error it is wrapping has already been wrapped with the same prefix.
//
//	e := curated.Errorf("vga: %v", curated.Errorf("vga: %v", "bad cell"))
//	e.Error() // "vga: bad cell"
//
// Actual panics should only be used when a programming constraint has been
// broken and there is nothing sensible to be done.
package curated
