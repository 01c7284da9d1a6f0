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

// Package display is the binding between the overlay slots and whatever is
// drawing the screen.
//
// The Engine interface is all that the overlay package knows about the
// display. Pictures is the implementation used by screenpicture: a registry
// of pictures keyed by a numeric id, each with a source, a placement and an
// optional move in progress. Step() must be called once per frame and
// advances every move by one frame.
//
// A picture's Source is either the name of an asset or a colour. Sources are
// turned into images by the Sources type: named assets with an AssetLoader
// and colours through the tint cache.
package display
