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

package tint

import (
	"image"
	"sync"

	"github.com/tokineco/screenpicture/logger"
)

// Surface is a generated image and the colour it was generated from. A
// Surface is never modified after it has been added to the cache.
type Surface struct {
	Key   string
	Color Color
	Image *image.RGBA
}

// Viewport returns the size of the display. Generated surfaces are the size
// of the viewport at the moment of generation.
type Viewport func() (width int, height int)

// Cache of generated surfaces. Entries are never evicted.
type Cache struct {
	crit     sync.RWMutex
	gen      Generator
	viewport Viewport
	entries  map[string]*Surface
}

// NewCache is the preferred method of initialisation for the Cache type.
func NewCache(gen Generator, viewport Viewport) *Cache {
	return &Cache{
		gen:      gen,
		viewport: viewport,
		entries:  make(map[string]*Surface),
	}
}

// GetOrCreate returns the surface stored under the key. If there is no such
// surface then one is generated from the colour and stored.
func (c *Cache) GetOrCreate(key string, col Color) *Surface {
	c.crit.RLock()
	if s, ok := c.entries[key]; ok {
		c.crit.RUnlock()
		return s
	}
	c.crit.RUnlock()

	c.crit.Lock()
	defer c.crit.Unlock()

	// check again now that we have the write lock
	if s, ok := c.entries[key]; ok {
		return s
	}

	w, h := c.viewport()
	s := &Surface{
		Key:   key,
		Color: col,
		Image: c.gen.Generate(w, h, col),
	}
	c.entries[key] = s

	logger.Logf(logger.Allow, "tint", "generated %s (%dx%d)", key, w, h)

	return s
}

// Lookup returns the surface stored under the key without generating one.
func (c *Cache) Lookup(key string) (*Surface, bool) {
	c.crit.RLock()
	defer c.crit.RUnlock()
	s, ok := c.entries[key]
	return s, ok
}

// Len returns the number of surfaces in the cache.
func (c *Cache) Len() int {
	c.crit.RLock()
	defer c.crit.RUnlock()
	return len(c.entries)
}
