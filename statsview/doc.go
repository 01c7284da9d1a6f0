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

// Package statsview is an optional package that is built only when the
// statsview build tag is present:
//
//	go build -tags statsview
//
// It provides a HTTP server running locally offering runtime statistics
// (heap, goroutines, GC pauses). Useful when checking that the tint cache is
// not growing unexpectedly. Underlying functionality is provided by
// github.com/go-echarts/statsview.
//
// After launch, graphical statistics are viewable at:
//
//	localhost:12690/debug/statsview
package statsview
