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

// Package prefs stores and loads user preferences. Preference values are typed
// (Bool, Int, String) and safe to read from any goroutine. Each value can have
// a hook that is called before and after the value is changed.
//
// Values are associated with a key and a file on disk through the Disk type.
// The file format is a simple list of key/value pairs, one per line,
// separated by " :: ".
//
// Values can also be given on the command line. See PushCommandLineStack().
package prefs
