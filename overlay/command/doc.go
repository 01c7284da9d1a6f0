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

// Package command interprets the arguments of the CRTA_ScreenPicture plugin
// command. The arguments are parsed into an Action which is then dispatched to
// the overlay.Registry.
//
// The command forms are:
//
//	CRTA_ScreenPicture set <slot> <asset> <opacity>
//	CRTA_ScreenPicture set <slot> <r> <g> <b> <opacity>
//	CRTA_ScreenPicture fade <slot> <opacity> <duration>
//	CRTA_ScreenPicture erase <slot>
//
// The slot token "screen" selects the screen slot. Any other token selects
// the fade slot.
//
// The duration of a fade is resolved by an ExpressionResolver, allowing the
// host to supply the value from its own variables. Arguments that cannot be
// parsed result in an InvalidArguments error and the command is skipped.
package command
