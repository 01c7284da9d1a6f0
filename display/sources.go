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
	"strings"
	"sync"

	"github.com/tokineco/screenpicture/curated"
	"github.com/tokineco/screenpicture/logger"
	"github.com/tokineco/screenpicture/tint"
)

// Sentinal error patterns.
const (
	SyntheticAsset = "display: %s is a generated picture and cannot be loaded"
	AssetLoad      = "display: asset %s: %v"
)

// AssetLoader loads a named asset.
type AssetLoader interface {
	Load(name string) (image.Image, error)
}

// Sources turns a Source into an image. Loaded assets are kept so that an
// asset is only loaded once. Failures are also kept so that a missing asset is
// only reported once.
type Sources struct {
	crit   sync.Mutex
	assets AssetLoader
	tints  *tint.Cache
	loaded map[string]image.Image
	failed map[string]error
}

// NewSources is the preferred method of initialisation for the Sources type.
func NewSources(assets AssetLoader, tints *tint.Cache) *Sources {
	return &Sources{
		assets: assets,
		tints:  tints,
		loaded: make(map[string]image.Image),
		failed: make(map[string]error),
	}
}

// Resolve returns the image for the source. Synthetic sources are resolved
// through the tint cache. Named assets are resolved with the AssetLoader.
func (srcs *Sources) Resolve(src Source) (image.Image, error) {
	if src.Synthetic {
		return srcs.tints.GetOrCreate(src.Key(), src.Color).Image, nil
	}

	srcs.crit.Lock()
	defer srcs.crit.Unlock()

	if img, ok := srcs.loaded[src.Name]; ok {
		return img, nil
	}
	if err, ok := srcs.failed[src.Name]; ok {
		return nil, err
	}

	if strings.HasPrefix(src.Name, tint.KeyPrefix) {
		err := curated.Errorf(SyntheticAsset, src.Name)
		srcs.failed[src.Name] = err
		return nil, err
	}

	img, err := srcs.assets.Load(src.Name)
	if err != nil {
		err = curated.Errorf(AssetLoad, src.Name, err)
		srcs.failed[src.Name] = err
		logger.Log(logger.Allow, "display", err.Error())
		return nil, err
	}

	srcs.loaded[src.Name] = img
	return img, nil
}
