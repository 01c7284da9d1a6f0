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

// Package paths contains functions to prepare paths to screenpicture resources.
//
// The ResourcePath() function prepends the supplied resource with the
// appropriate config directory. For example, the following returns the path
// to the preferences file.
//
//	pth := paths.ResourcePath("preferences")
//
// The policy of ResourcePath() is simple: if the base resource path,
// ".screenpicture", is present in the program's current directory then that
// is the base path. Otherwise the user's config directory is used, as
// returned by os.UserConfigDir(). On a Linux system the example above would
// return:
//
//	/home/user/.config/screenpicture/preferences
package paths
