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

package display

import (
	"image"
	"image/color"
	"math"
)

// Backdrop returns the colour behind all pictures at a point on the display.
type Backdrop func(x, y float64) color.RGBA

// Compositor combines the pictures of a Pictures instance in software. It is
// suitable for low resolution previews where only a few points are sampled.
type Compositor struct {
	Pictures *Pictures
	Sources  *Sources
	Backdrop Backdrop
}

// At returns the colour of the display at the point after all pictures have
// been drawn in ascending id order. Pictures that cannot be resolved are
// skipped.
func (cmp Compositor) At(x, y float64) color.RGBA {
	var c color.RGBA
	if cmp.Backdrop != nil {
		c = cmp.Backdrop(x, y)
	}
	c.A = 255

	cmp.Pictures.Each(func(p Picture) {
		img, err := cmp.Sources.Resolve(p.Source)
		if err != nil {
			return
		}

		s, ok := sample(img, p.Placement, x, y)
		if !ok {
			return
		}

		a := float64(s.A) / 255 * float64(p.Alpha()) / 255
		c = blend(p.Blend, c, s, a)
	})

	return c
}

// sample returns the colour of the image at the display point. The colour is
// not premultiplied.
func sample(img image.Image, pl Placement, x, y float64) (color.NRGBA, bool) {
	b := img.Bounds()
	w := float64(b.Dx()) * pl.ScaleX / 100
	h := float64(b.Dy()) * pl.ScaleY / 100
	if w <= 0 || h <= 0 {
		return color.NRGBA{}, false
	}

	left := pl.X
	top := pl.Y
	if pl.Origin == OriginCenter {
		left -= w / 2
		top -= h / 2
	}

	if x < left || y < top || x >= left+w || y >= top+h {
		return color.NRGBA{}, false
	}

	ix := b.Min.X + int((x-left)*float64(b.Dx())/w)
	iy := b.Min.Y + int((y-top)*float64(b.Dy())/h)

	return color.NRGBAModel.Convert(img.At(ix, iy)).(color.NRGBA), true
}

// blend the source colour onto the destination with the alpha value.
func blend(mode BlendMode, dst color.RGBA, src color.NRGBA, a float64) color.RGBA {
	mix := func(d, s uint8) uint8 {
		fd := float64(d)
		fs := float64(s)

		var v float64
		switch mode {
		case BlendAdditive:
			v = fd + fs*a
		case BlendMultiply:
			v = fd*(1-a) + fd*fs/255*a
		case BlendScreen:
			v = fd*(1-a) + (255-(255-fd)*(255-fs)/255)*a
		default:
			v = fd*(1-a) + fs*a
		}

		return uint8(math.Min(255, math.Round(v)))
	}

	return color.RGBA{
		R: mix(dst.R, src.R),
		G: mix(dst.G, src.G),
		B: mix(dst.B, src.B),
		A: 255,
	}
}
