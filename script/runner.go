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

package script

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/tokineco/screenpicture/curated"
	"github.com/tokineco/screenpicture/logger"
)

// ScriptError is the error pattern for errors found while running a script.
const ScriptError = "script: %s: %d: %v"

// NotAScript is the error pattern for files without the script header.
const NotAScript = "script: %s: not a script file"

// Plugin receives the plugin commands in a script.
type Plugin interface {
	PluginCommand(name string, args []string)
}

const (
	headerLineID = iota
	headerLineVersion
	headerNumLines
)

const headerID = "screenpicturescript"

// the number of frames for a WAIT instruction with no argument
const defaultWait = 60

type loop struct {
	line int

	// loop counters count upwards because it is more natural when
	// referencing the counter value to think of the counter as counting
	// upwards
	count    int
	countEnd int

	// if loop counter has been named then we need to know it so that we can
	// update the entry in the variables table
	countName string
}

// Runner executes a script one frame at a time.
type Runner struct {
	filename     string
	instructions []string
	plugins      map[string]Plugin
	vars         *Variables

	ln    int
	wait  int
	loops []loop

	done bool
	quit bool
}

// NewRunner opens the script file and prepares it for running.
func NewRunner(filename string, vars *Variables) (*Runner, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}
	defer f.Close()

	return NewRunnerFromReader(filename, f, vars)
}

// NewRunnerFromReader prepares the script read from r for running. The name
// is used in log entries and errors.
func NewRunnerFromReader(name string, r io.Reader, vars *Variables) (*Runner, error) {
	buffer, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}

	if vars == nil {
		vars = NewVariables()
	}

	run := &Runner{
		filename: name,
		plugins:  make(map[string]Plugin),
		vars:     vars,
	}

	// convert file contents to an array of lines
	run.instructions = strings.Split(strings.ReplaceAll(string(buffer), "\r\n", "\n"), "\n")
	if len(run.instructions) < headerNumLines {
		return nil, curated.Errorf(NotAScript, name)
	}
	if strings.TrimSpace(run.instructions[headerLineID]) != headerID {
		return nil, curated.Errorf(NotAScript, name)
	}

	// ignore version string for now

	// we no longer need the header
	run.instructions = run.instructions[headerNumLines:]

	return run, nil
}

// AddPlugin registers the plugin for plugin commands with the name.
func (run *Runner) AddPlugin(name string, p Plugin) {
	run.plugins[name] = p
}

// Variables returns the variables used by the script.
func (run *Runner) Variables() *Variables {
	return run.vars
}

// Done returns true if the script has finished.
func (run *Runner) Done() bool {
	return run.done
}

// Quit returns true if the script finished with a QUIT instruction.
func (run *Runner) Quit() bool {
	return run.quit
}

// Step should be called once per frame. Instructions are executed until a
// WAIT instruction is reached or the script finishes.
//
// An error ends the script. The error is logged and returned.
func (run *Runner) Step() error {
	if run.done {
		return nil
	}

	if run.wait > 0 {
		run.wait--
		if run.wait > 0 {
			return nil
		}
	}

	err := run.exec()
	if err != nil {
		run.done = true
		err = curated.Errorf(ScriptError, run.filename, run.ln+headerNumLines+1, err)
		logger.Log(logger.Allow, "script", err.Error())
		return err
	}

	return nil
}

// exec runs instructions from the current line until the script waits or
// finishes.
func (run *Runner) exec() error {
	for ; run.ln < len(run.instructions); run.ln++ {
		toks := strings.Fields(run.instructions[run.ln])
		if len(toks) == 0 {
			continue // for loop
		}

		switch toks[0] {
		case "--":
			// ignore comment lines

		case "VAR":
			if len(toks) != 3 {
				return fmt.Errorf("VAR requires a name and a value")
			}
			v, err := run.vars.Resolve(toks[2])
			if err != nil {
				return err
			}
			run.vars.Set(toks[1], v)

		case "GAMEVAR":
			if len(toks) != 3 {
				return fmt.Errorf("GAMEVAR requires a number and a value")
			}
			n, err := strconv.Atoi(toks[1])
			if err != nil {
				return err
			}
			v, err := run.vars.Resolve(toks[2])
			if err != nil {
				return err
			}
			run.vars.SetNumbered(n, v)

		case "DO":
			tl := len(toks)
			switch tl {
			case 1:
				return fmt.Errorf("too few arguments for DO")
			case 2, 3:
				ct, err := run.vars.Resolve(toks[1])
				if err != nil {
					return err
				}
				lp := loop{
					line:     run.ln,
					countEnd: ct,
				}
				if tl == 3 {
					lp.countName = toks[2]
					run.vars.Set(lp.countName, lp.count)
				}
				run.loops = append(run.loops, lp)
			default:
				return fmt.Errorf("too many arguments for DO")
			}

		case "LOOP":
			if len(toks) > 1 {
				return fmt.Errorf("too many arguments for LOOP")
			}

			idx := len(run.loops) - 1
			if idx == -1 {
				return fmt.Errorf("LOOP without a DO")
			}

			lp := &run.loops[idx]
			lp.count++

			if lp.count < lp.countEnd {
				// loop is ongoing so return to start of loop
				run.ln = lp.line

				// update named variable
				if lp.countName != "" {
					run.vars.Set(lp.countName, lp.count)
				}
			} else {
				// loop has ended. remove from loop stack and delete variable name
				if lp.countName != "" {
					run.vars.Delete(lp.countName)
				}
				run.loops = run.loops[:idx]
			}

		case "WAIT":
			w := defaultWait

			switch len(toks) {
			case 2:
				var err error
				w, err = run.vars.Resolve(toks[1])
				if err != nil {
					return err
				}
				fallthrough
			case 1:
				if w > 0 {
					run.wait = w
					run.ln++
					return nil
				}
			default:
				return fmt.Errorf("too many arguments for WAIT")
			}

		case "QUIT":
			if len(toks) > 1 {
				return fmt.Errorf("too many arguments for QUIT")
			}
			run.quit = true
			run.done = true
			logger.Logf(logger.Allow, "script", "%s: quit", run.filename)
			return nil

		default:
			p, ok := run.plugins[toks[0]]
			if !ok {
				return fmt.Errorf("unrecognised command: %s", toks[0])
			}

			args, err := run.vars.substitute(toks[1:])
			if err != nil {
				return err
			}
			p.PluginCommand(toks[0], args)
		}
	}

	run.done = true
	logger.Logf(logger.Allow, "script", "%s: finished", run.filename)

	return nil
}
