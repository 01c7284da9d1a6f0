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
	"sort"

	"github.com/tokineco/screenpicture/logger"
)

// Picture is a shown picture and the state of any move in progress.
type Picture struct {
	ID     int
	Source Source

	// the current placement. changes every frame while a move is in progress
	Placement

	target   Placement
	duration int
}

// Moving returns true if a move is in progress.
func (p Picture) Moving() bool {
	return p.duration > 0
}

// Target returns the placement the picture is moving to and the number of
// frames remaining. If the picture is not moving the current placement is
// returned with a duration of zero.
func (p Picture) Target() (Placement, int) {
	if p.duration > 0 {
		return p.target, p.duration
	}
	return p.Placement, 0
}

// update advances a move by one frame.
func (p *Picture) update() {
	if p.duration <= 0 {
		return
	}

	d := float64(p.duration)
	p.X = (p.X*(d-1) + p.target.X) / d
	p.Y = (p.Y*(d-1) + p.target.Y) / d
	p.ScaleX = (p.ScaleX*(d-1) + p.target.ScaleX) / d
	p.ScaleY = (p.ScaleY*(d-1) + p.target.ScaleY) / d
	p.Opacity = (p.Opacity*(d-1) + p.target.Opacity) / d
	p.duration--

	if p.duration == 0 {
		p.Placement = p.target
	}
}

// Pictures is an implementation of the Engine interface. It should be
// stepped once per frame by the host.
type Pictures struct {
	pictures map[int]*Picture
	frame    int
}

// NewPictures is the preferred method of initialisation for the Pictures type.
func NewPictures() *Pictures {
	return &Pictures{
		pictures: make(map[int]*Picture),
	}
}

// Show implements the Engine interface.
func (pcs *Pictures) Show(id int, src Source, pl Placement) {
	pcs.pictures[id] = &Picture{
		ID:        id,
		Source:    src,
		Placement: pl,
	}
	logger.Logf(logger.Allow, "display", "show picture %d: %s (opacity %.0f)", id, src, pl.Opacity)
}

// Move implements the Engine interface. A duration of zero or less moves the
// picture immediately.
func (pcs *Pictures) Move(id int, pl Placement, duration int) {
	p, ok := pcs.pictures[id]
	if !ok {
		logger.Logf(logger.Allow, "display", "move picture %d: no picture", id)
		return
	}

	if duration <= 0 {
		p.Placement = pl
		p.duration = 0
		return
	}

	// origin and blend mode change immediately
	p.Origin = pl.Origin
	p.Blend = pl.Blend

	p.target = pl
	p.duration = duration
	logger.Logf(logger.Allow, "display", "move picture %d: opacity %.0f -> %.0f over %d frames", id, p.Opacity, pl.Opacity, duration)
}

// Erase implements the Engine interface.
func (pcs *Pictures) Erase(id int) {
	if _, ok := pcs.pictures[id]; !ok {
		return
	}
	delete(pcs.pictures, id)
	logger.Logf(logger.Allow, "display", "erase picture %d", id)
}

// Step advances every move in progress by one frame.
func (pcs *Pictures) Step() {
	pcs.frame++
	for _, p := range pcs.pictures {
		p.update()
	}
}

// Frame returns the number of times Step() has been called.
func (pcs *Pictures) Frame() int {
	return pcs.frame
}

// Picture returns a copy of the picture with the id.
func (pcs *Pictures) Picture(id int) (Picture, bool) {
	p, ok := pcs.pictures[id]
	if !ok {
		return Picture{}, false
	}
	return *p, true
}

// Each calls the function for every picture in ascending id order. Pictures
// with higher ids are drawn over pictures with lower ids.
func (pcs *Pictures) Each(f func(Picture)) {
	ids := make([]int, 0, len(pcs.pictures))
	for id := range pcs.pictures {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		f(*pcs.pictures[id])
	}
}

// Len returns the number of pictures being shown.
func (pcs *Pictures) Len() int {
	return len(pcs.pictures)
}
