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

package sdlscreen

import (
	"fmt"
	"time"
)

// fpsLimiter regulates how often the screen is updated.
type fpsLimiter struct {
	secondsPerFrame time.Duration
	next            time.Time
}

func newFPSLimiter(framesPerSecond int) (*fpsLimiter, error) {
	if framesPerSecond <= 0 {
		return nil, fmt.Errorf("fps limiter: invalid frame rate (%d)", framesPerSecond)
	}

	lim := &fpsLimiter{
		secondsPerFrame: time.Second / time.Duration(framesPerSecond),
	}
	lim.next = time.Now().Add(lim.secondsPerFrame)

	return lim, nil
}

// wait until the next frame is due. if we've fallen behind by more than a
// frame then the schedule is reset rather than trying to catch up
func (lim *fpsLimiter) wait() {
	now := time.Now()
	if d := lim.next.Sub(now); d > 0 {
		time.Sleep(d)
		lim.next = lim.next.Add(lim.secondsPerFrame)
		return
	}
	if now.Sub(lim.next) > lim.secondsPerFrame {
		lim.next = now
	}
	lim.next = lim.next.Add(lim.secondsPerFrame)
}
