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

// Package digest produces a hash of the display grid. The hash can be used
// to compare the output of subsequent executions. If a new hash differs
// from a previously recorded value then something has changed.
package digest

// Digest implementations should return a hash in response to a Hash()
// request. Generation of the hash is achieved via another function.
type Digest interface {
	Hash() string
	ResetDigest()
}
