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

package sdlscreen

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

// IMGLoader is an implementation of display.AssetLoader that uses SDL_image.
// Assets are loaded from <Dir>/<name>.png.
type IMGLoader struct {
	Dir string
}

// Load implements the display.AssetLoader interface.
func (ldr IMGLoader) Load(name string) (image.Image, error) {
	surface, err := img.Load(filepath.Join(ldr.Dir, fmt.Sprintf("%s.png", name)))
	if err != nil {
		return nil, err
	}
	defer surface.Free()

	return surfaceToRGBA(surface)
}

// surfaceToRGBA copies the contents of an SDL surface to a new image.RGBA.
func surfaceToRGBA(surface *sdl.Surface) (*image.RGBA, error) {
	// ABGR8888 is stored as R, G, B, A bytes, the same layout as image.RGBA
	conv, err := surface.ConvertFormat(uint32(sdl.PIXELFORMAT_ABGR8888), 0)
	if err != nil {
		return nil, err
	}
	defer conv.Free()

	w := int(conv.W)
	h := int(conv.H)
	rgba := image.NewRGBA(image.Rect(0, 0, w, h))

	err = conv.Lock()
	if err != nil {
		return nil, err
	}
	defer conv.Unlock()

	pix := conv.Pixels()
	pitch := int(conv.Pitch)
	for y := 0; y < h; y++ {
		copy(rgba.Pix[y*rgba.Stride:y*rgba.Stride+w*4], pix[y*pitch:y*pitch+w*4])
	}

	return rgba, nil
}

// rgbaToSurface copies an image to a new SDL surface. The surface must be
// freed by the caller.
func rgbaToSurface(rgba *image.RGBA) (*sdl.Surface, error) {
	w := rgba.Bounds().Dx()
	h := rgba.Bounds().Dy()

	surface, err := sdl.CreateRGBSurfaceWithFormat(0, int32(w), int32(h), 32, uint32(sdl.PIXELFORMAT_ABGR8888))
	if err != nil {
		return nil, err
	}

	err = surface.Lock()
	if err != nil {
		surface.Free()
		return nil, err
	}
	defer surface.Unlock()

	pix := surface.Pixels()
	pitch := int(surface.Pitch)
	for y := 0; y < h; y++ {
		o := rgba.PixOffset(rgba.Bounds().Min.X, rgba.Bounds().Min.Y+y)
		copy(pix[y*pitch:y*pitch+w*4], rgba.Pix[o:o+w*4])
	}

	return surface, nil
}
