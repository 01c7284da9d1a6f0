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
	"github.com/tokineco/screenpicture/paths"
	"github.com/tokineco/screenpicture/prefs"
)

// Preferences for the display.
type Preferences struct {
	dsk *prefs.Disk

	// size of the viewport. generated surfaces are this size
	Width  prefs.Int
	Height prefs.Int

	// number of frames per second
	FPS prefs.Int

	// directory containing picture assets
	Assets prefs.String
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// default values are the default screen size of the host engine
const (
	defaultWidth  = 816
	defaultHeight = 624
	defaultFPS    = 60
	defaultAssets = "img/pictures"
)

// NewPreferences is the preferred method of initialisation for the
// Preferences type.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	var err error
	p.dsk, err = prefs.NewDisk(paths.ResourcePath("", prefs.DefaultPrefsFile))
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("display.width", &p.Width)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("display.height", &p.Height)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("display.fps", &p.FPS)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("display.assets", &p.Assets)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to the default values.
func (p *Preferences) SetDefaults() {
	p.Width.Set(defaultWidth)
	p.Height.Set(defaultHeight)
	p.FPS.Set(defaultFPS)
	p.Assets.Set(defaultAssets)
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// Viewport returns the width and height preferences. Suitable for use as a
// tint.Viewport.
func (p *Preferences) Viewport() (int, int) {
	return p.Width.Get().(int), p.Height.Get().(int)
}
