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
	"image"
	"image/draw"
	"math"
	"runtime"

	"github.com/tokineco/screenpicture/curated"
	"github.com/tokineco/screenpicture/display"
	"github.com/tokineco/screenpicture/logger"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

// SDL is the error pattern for errors from the SDL library.
const SDL = "sdl: %v"

// the size of the squares in the backdrop
const backdropGrid = 48

// Screen is an SDL window showing the pictures of a display.Pictures
// instance.
type Screen struct {
	window   *sdl.Window
	renderer *sdl.Renderer

	pcs  *display.Pictures
	srcs *display.Sources

	// textures are keyed by display.Source.Key()
	textures map[string]*sdl.Texture

	// sources that could not be resolved. they are not tried again
	unresolved map[string]bool

	lim *fpsLimiter

	width  int32
	height int32
}

// NewScreen creates the SDL window. The window is destroyed with Destroy().
func NewScreen(title string, width int, height int, fps int, pcs *display.Pictures, srcs *display.Sources) (*Screen, error) {
	runtime.LockOSThread()

	scr := &Screen{
		pcs:        pcs,
		srcs:       srcs,
		textures:   make(map[string]*sdl.Texture),
		unresolved: make(map[string]bool),
		width:      int32(width),
		height:     int32(height),
	}

	var err error

	scr.lim, err = newFPSLimiter(fps)
	if err != nil {
		return nil, curated.Errorf(SDL, err)
	}

	err = sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS)
	if err != nil {
		return nil, curated.Errorf(SDL, err)
	}

	err = img.Init(img.INIT_PNG)
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf(SDL, err)
	}

	scr.window, err = sdl.CreateWindow(title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		scr.width, scr.height, sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE)
	if err != nil {
		scr.Destroy()
		return nil, curated.Errorf(SDL, err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		scr.Destroy()
		return nil, curated.Errorf(SDL, err)
	}

	// the logical size is the display size regardless of the window size
	err = scr.renderer.SetLogicalSize(scr.width, scr.height)
	if err != nil {
		scr.Destroy()
		return nil, curated.Errorf(SDL, err)
	}

	logger.Logf(logger.Allow, "sdl", "window created (%dx%d at %dfps)", width, height, fps)

	return scr, nil
}

// Destroy the window and release all textures.
func (scr *Screen) Destroy() {
	for k, t := range scr.textures {
		_ = t.Destroy()
		delete(scr.textures, k)
	}
	if scr.renderer != nil {
		_ = scr.renderer.Destroy()
		scr.renderer = nil
	}
	if scr.window != nil {
		_ = scr.window.Destroy()
		scr.window = nil
	}
	img.Quit()
	sdl.Quit()
}

// Run the window until it is closed or until step returns false. The step
// function is called once per frame before the window is drawn.
func (scr *Screen) Run(step func() bool) error {
	for {
		for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
			switch ev := ev.(type) {
			case *sdl.QuitEvent:
				return nil
			case *sdl.KeyboardEvent:
				if ev.Type == sdl.KEYDOWN && ev.Keysym.Sym == sdl.K_ESCAPE {
					return nil
				}
			}
		}

		if !step() {
			return nil
		}

		err := scr.render()
		if err != nil {
			return curated.Errorf(SDL, err)
		}

		scr.lim.wait()
	}
}

// render draws the backdrop and every picture in ascending id order.
func (scr *Screen) render() error {
	err := scr.renderBackdrop()
	if err != nil {
		return err
	}

	scr.pcs.Each(func(p display.Picture) {
		if err != nil {
			return
		}

		tex, ok := scr.texture(p.Source)
		if !ok {
			return
		}

		err = tex.SetAlphaMod(p.Alpha())
		if err != nil {
			return
		}
		err = tex.SetBlendMode(blendMode(p.Blend))
		if err != nil {
			return
		}

		_, _, w, h, qerr := tex.Query()
		if qerr != nil {
			err = qerr
			return
		}
		err = scr.renderer.Copy(tex, nil, destRect(p.Placement, w, h))
	})
	if err != nil {
		return err
	}

	scr.renderer.Present()

	return nil
}

// renderBackdrop draws a grid so that the effect of the overlays can be seen.
func (scr *Screen) renderBackdrop() error {
	err := scr.renderer.SetDrawColor(40, 40, 48, 255)
	if err != nil {
		return err
	}
	err = scr.renderer.Clear()
	if err != nil {
		return err
	}

	err = scr.renderer.SetDrawColor(200, 180, 120, 255)
	if err != nil {
		return err
	}
	for y := int32(0); y < scr.height; y += backdropGrid {
		for x := int32(0); x < scr.width; x += backdropGrid {
			if (x/backdropGrid+y/backdropGrid)%2 == 0 {
				err = scr.renderer.FillRect(&sdl.Rect{X: x, Y: y, W: backdropGrid, H: backdropGrid})
				if err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// texture returns the texture for the source, creating it if necessary.
func (scr *Screen) texture(src display.Source) (*sdl.Texture, bool) {
	key := src.Key()

	if t, ok := scr.textures[key]; ok {
		return t, true
	}
	if scr.unresolved[key] {
		return nil, false
	}

	t, err := scr.createTexture(src)
	if err != nil {
		scr.unresolved[key] = true
		logger.Logf(logger.Allow, "sdl", "%s: %v", src, err)
		return nil, false
	}

	scr.textures[key] = t
	return t, true
}

func (scr *Screen) createTexture(src display.Source) (*sdl.Texture, error) {
	im, err := scr.srcs.Resolve(src)
	if err != nil {
		return nil, err
	}

	rgba, ok := im.(*image.RGBA)
	if !ok {
		rgba = image.NewRGBA(im.Bounds())
		draw.Draw(rgba, rgba.Bounds(), im, im.Bounds().Min, draw.Src)
	}

	surface, err := rgbaToSurface(rgba)
	if err != nil {
		return nil, err
	}
	defer surface.Free()

	return scr.renderer.CreateTextureFromSurface(surface)
}

// destRect returns the rectangle the picture is drawn to.
func destRect(pl display.Placement, w int32, h int32) *sdl.Rect {
	dw := int32(math.Round(float64(w) * pl.ScaleX / 100))
	dh := int32(math.Round(float64(h) * pl.ScaleY / 100))
	x := int32(math.Round(pl.X))
	y := int32(math.Round(pl.Y))

	if pl.Origin == display.OriginCenter {
		x -= dw / 2
		y -= dh / 2
	}

	return &sdl.Rect{X: x, Y: y, W: dw, H: dh}
}

// blendMode converts the display blend mode to the nearest SDL blend mode.
func blendMode(b display.BlendMode) sdl.BlendMode {
	switch b {
	case display.BlendAdditive:
		return sdl.BLENDMODE_ADD
	case display.BlendMultiply:
		return sdl.BLENDMODE_MOD
	case display.BlendScreen:
		// SDL has no screen blend. additive is the closest
		return sdl.BLENDMODE_ADD
	}
	return sdl.BLENDMODE_BLEND
}
