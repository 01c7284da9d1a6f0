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

package termscreen

import (
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/tokineco/screenpicture/curated"
	"github.com/tokineco/screenpicture/display"
	"github.com/tokineco/screenpicture/logger"
)

// Term is the error pattern for errors from the terminal.
const Term = "term: %v"

// the size of the squares in the backdrop, in display pixels
const backdropGrid = 48

// Screen previews the pictures of a display.Pictures instance in a terminal.
type Screen struct {
	scr tcell.Screen
	cmp display.Compositor

	// size of the display being previewed
	width  int
	height int

	status func() string
}

// NewScreen initialises the terminal. The terminal is restored with Fini().
func NewScreen(scr tcell.Screen, width int, height int, pcs *display.Pictures, srcs *display.Sources) (*Screen, error) {
	err := scr.Init()
	if err != nil {
		return nil, curated.Errorf(Term, err)
	}
	scr.HideCursor()
	scr.Clear()

	ts := &Screen{
		scr:    scr,
		width:  width,
		height: height,
		cmp: display.Compositor{
			Pictures: pcs,
			Sources:  srcs,
			Backdrop: backdrop,
		},
	}

	logger.Log(logger.Allow, "term", "terminal preview started")

	return ts, nil
}

// backdrop is a checkerboard so that the effect of the overlays can be seen.
func backdrop(x, y float64) color.RGBA {
	if (int(x)/backdropGrid+int(y)/backdropGrid)%2 == 0 {
		return color.RGBA{R: 200, G: 180, B: 120, A: 255}
	}
	return color.RGBA{R: 40, G: 40, B: 48, A: 255}
}

// SetStatus sets the function that supplies the status line.
func (ts *Screen) SetStatus(status func() string) {
	ts.status = status
}

// Fini restores the terminal.
func (ts *Screen) Fini() {
	ts.scr.Fini()
}

// Draw the preview and the status line.
func (ts *Screen) Draw() {
	cols, rows := ts.scr.Size()
	if cols <= 0 || rows <= 0 {
		return
	}

	// last row is the status line
	previewRows := rows - 1
	if previewRows > 0 {
		sx := float64(ts.width) / float64(cols)
		sy := float64(ts.height) / float64(previewRows)

		for cy := 0; cy < previewRows; cy++ {
			for cx := 0; cx < cols; cx++ {
				c := ts.cmp.At((float64(cx)+0.5)*sx, (float64(cy)+0.5)*sy)
				style := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
				ts.scr.SetContent(cx, cy, ' ', nil, style)
			}
		}
	}

	var status string
	if ts.status != nil {
		status = ts.status()
	}
	ts.drawStatus(rows-1, cols, status)

	ts.scr.Show()
}

// drawStatus writes the status text to the row, truncated to fit.
func (ts *Screen) drawStatus(row int, cols int, status string) {
	style := tcell.StyleDefault.Reverse(true)

	status = runewidth.Truncate(status, cols, "…")

	x := 0
	for _, r := range status {
		if x >= cols {
			break
		}
		ts.scr.SetContent(x, row, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
	for ; x < cols; x++ {
		ts.scr.SetContent(x, row, ' ', nil, style)
	}
}

// Run the preview until the user presses Escape or q, or until step returns
// false. The step function is called once per frame before the preview is
// drawn.
func (ts *Screen) Run(step func() bool, fps int) error {
	if fps <= 0 {
		return curated.Errorf(Term, "invalid frame rate")
	}

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)

	go func() {
		for {
			ev := ts.scr.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Rune() == 'q' {
					return nil
				}
			case *tcell.EventResize:
				ts.scr.Sync()
			}

		case <-ticker.C:
			if !step() {
				return nil
			}
			ts.Draw()
		}
	}
}
