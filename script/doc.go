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

// Package script runs a simple script of plugin commands over a number of
// frames. Scripts are used to drive the overlay slots without a host engine.
//
// A script file starts with a two line header. The first line must be
// "screenpicturescript" and the second line is a version string, which is
// currently ignored.
//
// Plugin commands are written as they would be in the host, with the name of
// the plugin followed by the arguments. The name must have been registered
// with AddPlugin().
//
//	CRTA_ScreenPicture set screen 0 0 0 128
//
// The WAIT instruction pauses the execution of the script for the specified
// number of frames. If no value is given then the number of frames defaults to
// 60.
//
// Variables are set with the VAR instruction. A variable can be referenced in
// the arguments of a plugin command with the % symbol.
//
//	VAR t 30
//	CRTA_ScreenPicture fade fade 255 %t
//
// The host's numbered variables are set with the GAMEVAR instruction and are
// referenced with $gameVariables.value(n).
//
//	GAMEVAR 1 45
//	CRTA_ScreenPicture fade fade 0 $gameVariables.value(1)
//
// Basic loops are supported and can be nested. When a loop is named the
// counter can be referenced as a variable.
//
//	DO loopCt [loopName]
//		...
//	LOOP
//
// The QUIT instruction ends the script and asks the host to quit.
//
// Lines can be commented by prefixing the line with two dashes (--). Leading
// and trailing white space is ignored.
//
// Any errors in a script will result in a log entry and the termination of the
// script.
package script
