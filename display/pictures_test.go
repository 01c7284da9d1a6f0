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

package display_test

import (
	"testing"

	"github.com/tokineco/screenpicture/display"
	"github.com/tokineco/screenpicture/test"
	"github.com/tokineco/screenpicture/tint"
)

func TestShowErase(t *testing.T) {
	pcs := display.NewPictures()

	pcs.Show(91, display.AssetSource("ScreenPoisonMist"), display.FullScreen(168))
	p, ok := pcs.Picture(91)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, p.Source.Name, "ScreenPoisonMist")
	test.ExpectEquality(t, p.Alpha(), uint8(168))
	test.ExpectEquality(t, p.ScaleX, 100.0)
	test.ExpectEquality(t, p.Origin, display.OriginUpperLeft)
	test.ExpectEquality(t, p.Blend, display.BlendNormal)
	test.ExpectEquality(t, pcs.Len(), 1)

	pcs.Erase(91)
	_, ok = pcs.Picture(91)
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, pcs.Len(), 0)

	// erasing again is inert
	pcs.Erase(91)
	test.ExpectEquality(t, pcs.Len(), 0)
}

func TestMove(t *testing.T) {
	pcs := display.NewPictures()
	pcs.Show(91, display.AssetSource("ScreenPoisonMist"), display.FullScreen(168))
	pcs.Move(91, display.FullScreen(255), 60)

	p, _ := pcs.Picture(91)
	test.ExpectSuccess(t, p.Moving())
	target, remaining := p.Target()
	test.ExpectEquality(t, target.Alpha(), uint8(255))
	test.ExpectEquality(t, remaining, 60)

	// opacity has not changed before the first step
	test.ExpectEquality(t, p.Alpha(), uint8(168))

	pcs.Step()
	p, _ = pcs.Picture(91)
	test.ExpectEquality(t, p.Opacity, (168.0*59.0+255.0)/60.0)

	var last float64 = p.Opacity
	for i := 1; i < 59; i++ {
		pcs.Step()
		p, _ = pcs.Picture(91)
		test.ExpectSuccess(t, p.Opacity > last, i)
		last = p.Opacity
	}

	p, _ = pcs.Picture(91)
	test.ExpectSuccess(t, p.Moving())
	test.ExpectEquality(t, p.Alpha() < 255, true)

	pcs.Step()
	p, _ = pcs.Picture(91)
	test.ExpectFailure(t, p.Moving())
	test.ExpectEquality(t, p.Opacity, 255.0)
	test.ExpectEquality(t, p.X, 0.0)
	test.ExpectEquality(t, p.ScaleY, 100.0)
	test.ExpectEquality(t, pcs.Frame(), 60)

	// further steps change nothing
	pcs.Step()
	p, _ = pcs.Picture(91)
	test.ExpectEquality(t, p.Opacity, 255.0)
}

func TestMoveSupersedes(t *testing.T) {
	pcs := display.NewPictures()
	pcs.Show(90, display.ColorSource("screen", tint.Color{}), display.FullScreen(0))
	pcs.Move(90, display.FullScreen(255), 100)
	for i := 0; i < 10; i++ {
		pcs.Step()
	}

	// a new move starts from the current opacity
	pcs.Move(90, display.FullScreen(0), 5)
	for i := 0; i < 5; i++ {
		pcs.Step()
	}
	p, _ := pcs.Picture(90)
	test.ExpectFailure(t, p.Moving())
	test.ExpectEquality(t, p.Alpha(), uint8(0))
}

func TestMoveImmediate(t *testing.T) {
	pcs := display.NewPictures()
	pcs.Show(90, display.AssetSource("night"), display.FullScreen(128))
	pcs.Move(90, display.FullScreen(32), 0)
	p, _ := pcs.Picture(90)
	test.ExpectFailure(t, p.Moving())
	test.ExpectEquality(t, p.Alpha(), uint8(32))
}

func TestMoveAbsent(t *testing.T) {
	pcs := display.NewPictures()
	pcs.Move(91, display.FullScreen(255), 60)
	test.ExpectEquality(t, pcs.Len(), 0)
}

func TestEachOrder(t *testing.T) {
	pcs := display.NewPictures()
	pcs.Show(91, display.AssetSource("b"), display.FullScreen(1))
	pcs.Show(90, display.AssetSource("a"), display.FullScreen(1))
	pcs.Show(5, display.AssetSource("c"), display.FullScreen(1))

	var ids []int
	pcs.Each(func(p display.Picture) {
		ids = append(ids, p.ID)
	})
	test.DemandEquality(t, len(ids), 3)
	test.ExpectEquality(t, ids[0], 5)
	test.ExpectEquality(t, ids[1], 90)
	test.ExpectEquality(t, ids[2], 91)
}

func TestAlpha(t *testing.T) {
	test.ExpectEquality(t, display.FullScreen(-20).Alpha(), uint8(0))
	test.ExpectEquality(t, display.FullScreen(300).Alpha(), uint8(255))
	test.ExpectEquality(t, display.Placement{Opacity: 127.6}.Alpha(), uint8(128))
}

func TestSourceKey(t *testing.T) {
	a := display.ColorSource("screen", tint.Color{R: 1, G: 2, B: 3})
	b := display.ColorSource("fade", tint.Color{R: 1, G: 2, B: 3})
	test.ExpectEquality(t, a.Key(), b.Key())
	test.ExpectEquality(t, a.Key(), "ScreenPicture:1,2,3")
	test.ExpectEquality(t, display.AssetSource("ScreenPoisonMist").Key(), "ScreenPoisonMist")
}
