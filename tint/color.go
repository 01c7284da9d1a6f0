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

package tint

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// KeyPrefix is the start of every key made by the Key() function. Asset names
// beginning with the prefix are never loaded from disk.
const KeyPrefix = "ScreenPicture"

// Color is the colour triple of a generated surface. Each channel is used as
// both a tone adjustment and, taken together, as a hue vector.
type Color struct {
	R, G, B uint8
}

// FromInts returns a Color from int values. Values outside the range 0 to 255
// are clamped.
func FromInts(r, g, b int) Color {
	return Color{R: clamp(r), G: clamp(g), B: clamp(b)}
}

func clamp(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func (c Color) String() string {
	return fmt.Sprintf("%d,%d,%d", c.R, c.G, c.B)
}

// Key returns the cache key for a colour. The same colour always results in
// the same key and different colours never share a key.
func Key(c Color) string {
	return fmt.Sprintf("%s:%s", KeyPrefix, c)
}

// HueOffset is the rotation, in degrees, applied by the second pass of the
// generator. The colour triple is interpreted as a vector in RGB space and the
// offset is the hue angle of that vector. Greys (including black) have no hue
// and an offset of zero.
func HueOffset(c Color) float64 {
	h, s, _ := colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}.Hsl()
	if s == 0 {
		return 0
	}
	return h
}
