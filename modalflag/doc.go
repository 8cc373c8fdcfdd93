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

// Package modalflag wraps the flag package of the standard library. It
// handles program modes and sub-modes, with a different set of flags for each
// mode.
//
// Arguments are given with NewArgs() and then Parse() is called with no
// arguments. This allows the same argument list to be parsed one mode at a
// time:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "PLAIN", "DIGEST")
//	log := md.AddBool("log", false, "echo log to stdout")
//
//	r, err := md.Parse()
//	switch r {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		md.AddString("prefs", "", "preferences for the hardware")
//		...
//	}
//
// The first sub-mode is the default. If the first non-flag argument is not a
// listed sub-mode then the default is chosen and the argument is left for
// the next call to Parse(). Sub-mode names are case insensitive.
//
// The modes encountered are recorded and returned by Path() as a slash
// separated string. Help messages produced by the "-help" flag include the
// path, the flags and the list of sub-modes.
package modalflag
