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

package overlay

import (
	"fmt"

	"github.com/tokineco/screenpicture/tint"
)

// SlotID identifies one of the two overlay slots.
type SlotID int

// List of valid SlotID values.
const (
	Screen SlotID = iota
	Fade
	NumSlots
)

func (id SlotID) String() string {
	switch id {
	case Screen:
		return "screen"
	case Fade:
		return "fade"
	}
	return "unknown slot"
}

// SourceKind is the lifecycle state of a slot.
type SourceKind int

// List of valid SourceKind values.
const (
	None SourceKind = iota
	Asset
	GeneratedColor
)

func (k SourceKind) String() string {
	switch k {
	case None:
		return "none"
	case Asset:
		return "asset"
	case GeneratedColor:
		return "color"
	}
	return "unknown kind"
}

// Slot is the state of an overlay slot.
type Slot struct {
	ID        SlotID
	PictureID int
	Kind      SourceKind

	// the name of the asset. only valid if Kind is Asset
	Asset string

	// the colour of the generated picture. only valid if Kind is GeneratedColor
	Color tint.Color

	// the most recently requested opacity. the opacity in the display engine
	// may still be moving towards this value
	Opacity int
}

func (s Slot) String() string {
	switch s.Kind {
	case Asset:
		return fmt.Sprintf("%s [%d]: asset %s (opacity %d)", s.ID, s.PictureID, s.Asset, s.Opacity)
	case GeneratedColor:
		return fmt.Sprintf("%s [%d]: color %s (opacity %d)", s.ID, s.PictureID, s.Color, s.Opacity)
	}
	return fmt.Sprintf("%s [%d]: none", s.ID, s.PictureID)
}
