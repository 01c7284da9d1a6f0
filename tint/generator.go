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
	"image"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Generator creates the image for a colour specified overlay.
type Generator interface {
	Generate(width, height int, c Color) *image.RGBA
}

// ToneGenerator is the Generator used by screenpicture. The zero value is
// ready to use.
type ToneGenerator struct{}

// Generate implements the Generator interface.
func (ToneGenerator) Generate(width, height int, c Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	FillAll(img, color.RGBA{A: 0xff})
	AdjustTone(img, int(c.R), int(c.G), int(c.B))

	// the pixels of a generated image are ready immediately. the hue rotation
	// is still a separate pass
	RotateHue(img, HueOffset(c))

	return img
}

// FillAll sets every pixel of the image to the colour.
func FillAll(img *image.RGBA, col color.RGBA) {
	for i := 0; i+3 < len(img.Pix); i += 4 {
		img.Pix[i] = col.R
		img.Pix[i+1] = col.G
		img.Pix[i+2] = col.B
		img.Pix[i+3] = col.A
	}
}

// AdjustTone adds the values to the red, green and blue channels of every
// pixel. Results are clamped to the range 0 to 255. Alpha is unchanged.
func AdjustTone(img *image.RGBA, r, g, b int) {
	if r == 0 && g == 0 && b == 0 {
		return
	}
	for i := 0; i+3 < len(img.Pix); i += 4 {
		img.Pix[i] = clamp(int(img.Pix[i]) + r)
		img.Pix[i+1] = clamp(int(img.Pix[i+1]) + g)
		img.Pix[i+2] = clamp(int(img.Pix[i+2]) + b)
	}
}

// RotateHue rotates the hue of every pixel by offset degrees. Saturation and
// lightness are preserved. Alpha is unchanged.
func RotateHue(img *image.RGBA, offset float64) {
	offset = math.Mod(math.Mod(offset, 360)+360, 360)
	if offset == 0 {
		return
	}

	// most surfaces are a single colour so the result for the previous pixel
	// is kept
	var last, result [3]uint8
	var primed bool

	for i := 0; i+3 < len(img.Pix); i += 4 {
		px := [3]uint8{img.Pix[i], img.Pix[i+1], img.Pix[i+2]}
		if !primed || px != last {
			h, s, l := colorful.Color{
				R: float64(px[0]) / 255.0,
				G: float64(px[1]) / 255.0,
				B: float64(px[2]) / 255.0,
			}.Hsl()
			result[0], result[1], result[2] = colorful.Hsl(math.Mod(h+offset, 360), s, l).Clamped().RGB255()
			last = px
			primed = true
		}
		img.Pix[i] = result[0]
		img.Pix[i+1] = result[1]
		img.Pix[i+2] = result[2]
	}
}
