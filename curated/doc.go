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

// Package curated provides the error type used throughout screenpicture.
//
// A curated error is created with Errorf(). The pattern argument is kept with
// the error and it is the pattern, rather than the formatted message, that
// identifies the error. Packages that want callers to be able to recognise a
// particular condition export the pattern as a const string:
//
//	const InvalidArguments = "invalid arguments: %v"
//
//	err := curated.Errorf(InvalidArguments, "too few arguments for fade")
//	if curated.Is(err, InvalidArguments) {
//		...
//	}
//
// Has() checks the entire chain of curated errors. A curated error is part of
// the chain if it was passed as one of the values to Errorf().
//
//	err := curated.Errorf("overlay: %v", curated.Errorf(FadeOnEmptySlot, "fade"))
//
//	curated.Is(err, FadeOnEmptySlot)  // false
//	curated.Has(err, FadeOnEmptySlot) // true
//
// IsAny() answers whether an error is curated at all. Uncurated errors usually
// come from the standard library or from a third-party package and are best
// thought of as "unexpected".
//
// The Error() function normalises the message so that adjacent duplicate
// parts of the chain are removed. Parts are separated by ": ". This means
// that a package can wrap an error with its own name without worrying whether
// the error has already been wrapped in the same way:
//
//	overlay: overlay: fade slot is empty
//
// becomes
//
//	overlay: fade slot is empty
//
// Curated errors implement Unwrap() so that the errors package in the
// standard library can see through them to any uncurated error in the values.
package curated
