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

// Package overlay manages the two overlay slots, screen and fade. Each slot is
// bound to a picture id in the display engine and remembers how its picture
// was created: from a named asset or from a generated colour.
//
// The slots are independent. Nothing done to one slot affects the other.
//
// The screen slot is intended for tone changes (night, sepia, etc.) and the
// fade slot for hiding the screen during transitions. Both can be used at the
// same time.
package overlay
