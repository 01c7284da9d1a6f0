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
	"image/png"
	"os"
	"path/filepath"
)

// DirLoader is an AssetLoader that loads PNG files from a directory. The
// asset name is the filename without the extension.
type DirLoader struct {
	Dir string
}

// Load implements the AssetLoader interface.
func (ldr DirLoader) Load(name string) (image.Image, error) {
	f, err := os.Open(filepath.Join(ldr.Dir, name+".png"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return png.Decode(f)
}
