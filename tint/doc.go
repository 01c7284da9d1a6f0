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

// Package tint generates and caches the full-screen surfaces used by colour
// specified overlays.
//
// A surface is generated by the ToneGenerator: a viewport sized image is
// filled black, the colour is applied with AdjustTone() and then, once the
// pixels are ready, the hue is rotated with RotateHue(). The two passes are
// always applied separately and in that order.
//
// Generation is expensive so surfaces are stored in a Cache. The key for a
// surface is made with the Key() function and depends only on the colour.
// Entries are never evicted or modified once generated.
package tint
