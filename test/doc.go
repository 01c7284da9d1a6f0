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

// Package test contains helper functions that remove common boilerplate from
// the package tests.
//
// The Expect functions report a failure with t.Errorf() and allow the test to
// continue. The Demand functions use t.Fatalf() and stop the test
// immediately. Demand functions are useful when the rest of a test depends on
// the result, for example when a constructor fails.
//
// ExpectSuccess() and ExpectFailure() understand bool and error values. A nil
// value is a success. This is because of how errors usually work in Go and is
// worth remembering when testing a value that might be a nil pointer.
//
// All functions accept optional tags. Tags are printed at the beginning of
// any failure message and help to identify which iteration of a table test
// failed.
//
// The CompareWriter type implements io.Writer. It should be used to capture
// output (of the logger for example) and to compare it with an expected
// string.
package test
