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

package script_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tokineco/screenpicture/curated"
	"github.com/tokineco/screenpicture/display"
	"github.com/tokineco/screenpicture/overlay"
	"github.com/tokineco/screenpicture/overlay/command"
	"github.com/tokineco/screenpicture/script"
	"github.com/tokineco/screenpicture/test"
)

// recorder is a script.Plugin that writes every command it receives along
// with the frame number.
type recorder struct {
	test.CompareWriter
	frame int
}

func (r *recorder) PluginCommand(name string, args []string) {
	fmt.Fprintf(r, "%d: %s %s\n", r.frame, name, strings.Join(args, " "))
}

func newRunner(t *testing.T, body string) (*script.Runner, *recorder) {
	t.Helper()
	run, err := script.NewRunnerFromReader("test", strings.NewReader("screenpicturescript\nv1\n"+body), nil)
	test.DemandSuccess(t, err)
	rec := &recorder{}
	run.AddPlugin("TEST", rec)
	return run, rec
}

// steps the runner until it is done or the frame limit is reached.
func steps(t *testing.T, run *script.Runner, rec *recorder, limit int) error {
	t.Helper()
	for rec.frame = 0; rec.frame < limit && !run.Done(); rec.frame++ {
		if err := run.Step(); err != nil {
			return err
		}
	}
	return nil
}

func TestHeader(t *testing.T) {
	_, err := script.NewRunnerFromReader("test", strings.NewReader("notascript\nv1\n"), nil)
	test.ExpectSuccess(t, curated.Is(err, script.NotAScript))

	_, err = script.NewRunnerFromReader("test", strings.NewReader(""), nil)
	test.ExpectSuccess(t, curated.Is(err, script.NotAScript))

	_, err = script.NewRunner(filepath.Join(t.TempDir(), "missing"), nil)
	test.ExpectFailure(t, err)
}

func TestWait(t *testing.T) {
	run, rec := newRunner(t, `-- comment
TEST a
WAIT 3
TEST b
WAIT
TEST c
`)
	test.ExpectSuccess(t, steps(t, run, rec, 1000))
	test.ExpectSuccess(t, run.Done())
	test.ExpectFailure(t, run.Quit())
	test.ExpectEquality(t, rec.String(), "0: TEST a\n3: TEST b\n63: TEST c\n")
}

func TestLoop(t *testing.T) {
	run, rec := newRunner(t, `DO 3 i
TEST %i
DO 2
TEST inner
LOOP
LOOP
TEST end
`)
	test.ExpectSuccess(t, steps(t, run, rec, 10))
	test.ExpectEquality(t, rec.String(), "0: TEST 0\n0: TEST inner\n0: TEST inner\n"+
		"0: TEST 1\n0: TEST inner\n0: TEST inner\n"+
		"0: TEST 2\n0: TEST inner\n0: TEST inner\n"+
		"0: TEST end\n")

	// the loop variable no longer exists
	_, err := run.Variables().Resolve("%i")
	test.ExpectFailure(t, err)
}

func TestQuit(t *testing.T) {
	run, rec := newRunner(t, `TEST a
QUIT
TEST b
`)
	test.ExpectSuccess(t, steps(t, run, rec, 10))
	test.ExpectSuccess(t, run.Quit())
	test.ExpectSuccess(t, run.Done())
	test.ExpectEquality(t, rec.String(), "0: TEST a\n")
}

func TestErrors(t *testing.T) {
	bad := []string{
		"UNKNOWN 1",
		"LOOP",
		"DO",
		"WAIT 1 2",
		"VAR x",
		"WAIT %missing",
		"TEST %missing",
		"QUIT now",
	}

	for _, b := range bad {
		run, rec := newRunner(t, "TEST a\n"+b+"\nTEST b\n")
		err := steps(t, run, rec, 10)
		test.ExpectSuccess(t, curated.Is(err, script.ScriptError), b)
		test.ExpectSuccess(t, run.Done(), b)
		test.ExpectSuccess(t, rec.Compare("0: TEST a\n"), b)
	}

	// line numbers in the error include the header
	run, rec := newRunner(t, "TEST a\nUNKNOWN\n")
	err := steps(t, run, rec, 10)
	test.DemandFailure(t, err)
	test.ExpectSuccess(t, strings.HasPrefix(err.Error(), "script: test: 4: "))
}

func TestVariables(t *testing.T) {
	vars := script.NewVariables()
	vars.Set("t", 30)
	vars.SetNumbered(1, 45)

	v, err := vars.Resolve("%t")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 30)

	v, err = vars.Resolve("$gameVariables.value(1)")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 45)

	// unset numbered variables are zero
	v, err = vars.Resolve("$gameVariables.value( 2 )")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0)

	v, err = vars.Resolve("60")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 60)

	_, err = vars.Resolve("%u")
	test.ExpectFailure(t, err)
	_, err = vars.Resolve("$gameVariables.value(x)")
	test.ExpectFailure(t, err)
	_, err = vars.Resolve("soon")
	test.ExpectFailure(t, err)
}

func TestOverlayScript(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "fade.txt")
	err := os.WriteFile(fn, []byte(`screenpicturescript
v1
-- darken the screen then fade to black
CRTA_ScreenPicture set screen 0 0 0 128
CRTA_ScreenPicture set fade ScreenPoisonMist 168
GAMEVAR 1 60
CRTA_ScreenPicture fade fade 255 $gameVariables.value(1)
WAIT 60
CRTA_ScreenPicture erase fade
`), 0o644)
	test.DemandSuccess(t, err)

	vars := script.NewVariables()
	run, err := script.NewRunner(fn, vars)
	test.DemandSuccess(t, err)

	pcs := display.NewPictures()
	reg, err := overlay.NewRegistry(90, 91, pcs)
	test.DemandSuccess(t, err)
	run.AddPlugin(command.CommandName, command.NewInterpreter(reg, vars.Resolve))

	for !run.Done() {
		test.DemandSuccess(t, run.Step())
		if !run.Done() {
			p, ok := pcs.Picture(91)
			test.DemandSuccess(t, ok)
			test.ExpectEquality(t, p.Source.Name, "ScreenPoisonMist")
		}
		pcs.Step()
	}

	test.ExpectEquality(t, pcs.Frame(), 61)
	test.ExpectEquality(t, reg.Slot(overlay.Fade).Kind, overlay.None)
	test.ExpectEquality(t, reg.Slot(overlay.Screen).Kind, overlay.GeneratedColor)
}
