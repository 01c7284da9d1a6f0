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
	"fmt"

	"github.com/tokineco/screenpicture/tint"
)

// Origin of a picture's placement.
type Origin int

// List of valid Origin values.
const (
	OriginUpperLeft Origin = iota
	OriginCenter
)

func (o Origin) String() string {
	switch o {
	case OriginUpperLeft:
		return "upper-left"
	case OriginCenter:
		return "center"
	}
	return "unknown origin"
}

// BlendMode used when drawing a picture.
type BlendMode int

// List of valid BlendMode values.
const (
	BlendNormal BlendMode = iota
	BlendAdditive
	BlendMultiply
	BlendScreen
)

func (b BlendMode) String() string {
	switch b {
	case BlendNormal:
		return "normal"
	case BlendAdditive:
		return "additive"
	case BlendMultiply:
		return "multiply"
	case BlendScreen:
		return "screen"
	}
	return "unknown blend"
}

// Placement of a picture on the screen. Scale values are percentages.
// Opacity is in the range 0 to 255; values outside of that range are
// accepted and clamped when drawn.
type Placement struct {
	Origin  Origin
	X, Y    float64
	ScaleX  float64
	ScaleY  float64
	Opacity float64
	Blend   BlendMode
}

// FullScreen returns a placement at the upper-left corner, at full scale and
// with the normal blend mode.
func FullScreen(opacity int) Placement {
	return Placement{
		Origin:  OriginUpperLeft,
		ScaleX:  100,
		ScaleY:  100,
		Opacity: float64(opacity),
		Blend:   BlendNormal,
	}
}

// Alpha returns the opacity clamped and rounded to the range 0 to 255.
func (pl Placement) Alpha() uint8 {
	switch {
	case pl.Opacity <= 0:
		return 0
	case pl.Opacity >= 255:
		return 255
	}
	return uint8(pl.Opacity + 0.5)
}

// Source of a picture's image.
type Source struct {
	// name of the asset or, for synthetic sources, a descriptive name
	Name string

	// synthetic sources are generated from Color and are never loaded
	Synthetic bool
	Color     tint.Color
}

// AssetSource returns a Source for a named asset.
func AssetSource(name string) Source {
	return Source{Name: name}
}

// ColorSource returns a synthetic Source for the colour.
func ColorSource(name string, col tint.Color) Source {
	return Source{Name: name, Synthetic: true, Color: col}
}

// Key identifies the image the source resolves to. Sources with the same key
// share an image.
func (src Source) Key() string {
	if src.Synthetic {
		return tint.Key(src.Color)
	}
	return src.Name
}

func (src Source) String() string {
	if src.Synthetic {
		return fmt.Sprintf("%s (%s)", src.Name, src.Color)
	}
	return src.Name
}

// Engine is the interface to the display used by the overlay slots. Pictures
// are addressed by a numeric id.
type Engine interface {
	// Show the source with the placement. Any existing picture with the same
	// id is replaced.
	Show(id int, src Source, pl Placement)

	// Move an existing picture to the placement over the number of frames.
	// A move replaces any move already in progress.
	Move(id int, pl Placement, duration int)

	// Erase the picture. Erasing a picture that does not exist does nothing.
	Erase(id int)
}
