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
	"github.com/tokineco/screenpicture/paths"
	"github.com/tokineco/screenpicture/prefs"
)

// Preferences for the overlay slots. The picture ids are reserved: nothing
// else in the presentation layer should show pictures with these ids.
type Preferences struct {
	dsk *prefs.Disk

	ScreenPictureID prefs.Int
	FadePictureID   prefs.Int
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

const (
	defaultScreenPictureID = 90
	defaultFadePictureID   = 91
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

	err = p.dsk.Add("overlay.screenPictureID", &p.ScreenPictureID)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("overlay.fadePictureID", &p.FadePictureID)
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
	p.ScreenPictureID.Set(defaultScreenPictureID)
	p.FadePictureID.Set(defaultFadePictureID)
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// PictureIDs returns the screen and fade picture ids.
func (p *Preferences) PictureIDs() (int, int) {
	return p.ScreenPictureID.Get().(int), p.FadePictureID.Get().(int)
}
