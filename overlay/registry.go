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

	"github.com/tokineco/screenpicture/curated"
	"github.com/tokineco/screenpicture/display"
	"github.com/tokineco/screenpicture/logger"
	"github.com/tokineco/screenpicture/tint"
)

// Sentinal error patterns.
const (
	FadeOnEmptySlot    = "overlay: %s slot is empty"
	DuplicatePictureID = "overlay: screen and fade slots cannot share picture id %d"
	UnknownSlot        = "overlay: unknown slot (%d)"
	PictureIDMismatch  = "overlay: %s slot uses picture id %d not %d"
)

// Registry of the two overlay slots.
type Registry struct {
	engine display.Engine
	slots  [NumSlots]Slot
}

// NewRegistry is the preferred method of initialisation for the Registry
// type. The picture ids must be different.
func NewRegistry(screenID int, fadeID int, engine display.Engine) (*Registry, error) {
	if screenID == fadeID {
		return nil, curated.Errorf(DuplicatePictureID, screenID)
	}

	reg := &Registry{engine: engine}
	reg.slots[Screen] = Slot{ID: Screen, PictureID: screenID}
	reg.slots[Fade] = Slot{ID: Fade, PictureID: fadeID}

	return reg, nil
}

func (reg *Registry) String() string {
	return fmt.Sprintf("%s\n%s", reg.slots[Screen], reg.slots[Fade])
}

func (reg *Registry) slot(id SlotID) (*Slot, error) {
	if id < 0 || id >= NumSlots {
		return nil, curated.Errorf(UnknownSlot, id)
	}
	return &reg.slots[id], nil
}

// Slot returns a copy of the slot state.
func (reg *Registry) Slot(id SlotID) Slot {
	s, err := reg.slot(id)
	if err != nil {
		return Slot{ID: id}
	}
	return *s
}

// Slots returns a copy of the state of both slots.
func (reg *Registry) Slots() [NumSlots]Slot {
	return reg.slots
}

// CreateAsset shows the named asset in the slot at full screen.
func (reg *Registry) CreateAsset(id SlotID, asset string, opacity int) error {
	s, err := reg.slot(id)
	if err != nil {
		return err
	}

	s.Kind = Asset
	s.Asset = asset
	s.Color = tint.Color{}
	s.Opacity = opacity

	reg.engine.Show(s.PictureID, display.AssetSource(asset), display.FullScreen(opacity))
	logger.Logf(logger.Allow, "overlay", "create %s", s)

	return nil
}

// CreateColor shows a generated picture of the colour in the slot at full
// screen.
func (reg *Registry) CreateColor(id SlotID, col tint.Color, opacity int) error {
	s, err := reg.slot(id)
	if err != nil {
		return err
	}

	s.Kind = GeneratedColor
	s.Asset = ""
	s.Color = col
	s.Opacity = opacity

	reg.engine.Show(s.PictureID, display.ColorSource(syntheticName(id), col), display.FullScreen(opacity))
	logger.Logf(logger.Allow, "overlay", "create %s", s)

	return nil
}

// syntheticName is the name given to a generated picture in the slot.
func syntheticName(id SlotID) string {
	return fmt.Sprintf("%s_%s", tint.KeyPrefix, id)
}

// Fade moves the opacity of the slot's picture to the new value over the
// number of frames. Fading an empty slot is reported with the FadeOnEmptySlot
// error but the move is still sent to the display engine.
func (reg *Registry) Fade(id SlotID, opacity int, duration int) error {
	s, err := reg.slot(id)
	if err != nil {
		return err
	}

	reg.engine.Move(s.PictureID, display.FullScreen(opacity), duration)

	if s.Kind == None {
		err := curated.Errorf(FadeOnEmptySlot, id)
		logger.Log(logger.Allow, "overlay", err.Error())
		return err
	}

	s.Opacity = opacity
	logger.Logf(logger.Allow, "overlay", "fade %s to %d over %d frames", id, opacity, duration)

	return nil
}

// Erase the slot's picture. Erasing an empty slot does nothing.
func (reg *Registry) Erase(id SlotID) error {
	s, err := reg.slot(id)
	if err != nil {
		return err
	}

	if s.Kind == None {
		return nil
	}

	reg.engine.Erase(s.PictureID)

	s.Kind = None
	s.Asset = ""
	s.Color = tint.Color{}
	s.Opacity = 0
	logger.Logf(logger.Allow, "overlay", "erase %s", id)

	return nil
}

// Snapshot returns the state of both slots. Suitable for saving.
func (reg *Registry) Snapshot() []Slot {
	return []Slot{reg.slots[Screen], reg.slots[Fade]}
}

// Restore the state of the slots from a snapshot. Slots with a source are
// shown again at the saved opacity. Slots that are empty in the snapshot are
// erased. The picture ids in the snapshot must match the registry.
func (reg *Registry) Restore(snapshot []Slot) error {
	for _, r := range snapshot {
		s, err := reg.slot(r.ID)
		if err != nil {
			return err
		}
		if r.PictureID != s.PictureID {
			return curated.Errorf(PictureIDMismatch, r.ID, r.PictureID, s.PictureID)
		}
	}

	for _, r := range snapshot {
		var err error
		switch r.Kind {
		case None:
			err = reg.Erase(r.ID)
		case Asset:
			err = reg.CreateAsset(r.ID, r.Asset, r.Opacity)
		case GeneratedColor:
			err = reg.CreateColor(r.ID, r.Color, r.Opacity)
		}
		if err != nil {
			return err
		}
	}

	return nil
}
