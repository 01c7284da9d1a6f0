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

// Package sdlscreen shows the pictures of a display.Pictures instance in an
// SDL window. The window is redrawn once per frame and the frame rate is
// regulated by a simple limiter.
//
// Named assets are loaded with SDL_image. Generated pictures are taken from
// the tint cache through display.Sources. Every image is converted to a
// texture once and the texture is kept for as long as the Screen exists.
//
// Functions in this package must be called from the main thread.
package sdlscreen
