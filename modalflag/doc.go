// This file is part of screenpicture.
//
// screenpicture is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// screenpicture is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with screenpicture.  If not, see <https://www.gnu.org/licenses/>.

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Arguments are given to the Modes type with NewArgs() and then parsed with
// Parse(), which takes no arguments:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "TERM", "HEADLESS")
//	p, err := md.Parse()
//
// After parsing, Mode() returns the selected sub-mode. The first sub-mode in
// the list is the default. Sub-mode comparisons are case insensitive.
//
// A new set of flags and sub-modes can then be defined for the next layer of
// arguments by calling NewMode() and Parse() again:
//
//	md.NewMode()
//	script := md.AddString("script", "", "run commands from script file")
//	p, err = md.Parse()
//
// Non-flag arguments remaining after the sub-mode are available through
// RemainingArgs() and GetArg(). Help messages, requested with -help, are
// printed to the Output field automatically and Parse() returns ParseHelp.
package modalflag
