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

package command

import (
	"strings"

	"github.com/tokineco/screenpicture/logger"
	"github.com/tokineco/screenpicture/overlay"
)

// CommandName is the name of the plugin command handled by the Interpreter.
const CommandName = "CRTA_ScreenPicture"

// Interpreter parses commands and dispatches them to the overlay registry.
type Interpreter struct {
	reg     *overlay.Registry
	resolve ExpressionResolver
}

// NewInterpreter is the preferred method of initialisation for the
// Interpreter type. If resolve is nil then durations must be integer
// literals.
func NewInterpreter(reg *overlay.Registry, resolve ExpressionResolver) *Interpreter {
	if resolve == nil {
		resolve = LiteralResolver
	}
	return &Interpreter{
		reg:     reg,
		resolve: resolve,
	}
}

// Exec parses the arguments and dispatches the resulting action to the
// registry. Any error is logged before being returned.
func (in *Interpreter) Exec(args []string) error {
	act, err := Parse(args, in.resolve)
	if err != nil {
		logger.Logf(logger.Allow, "command", "%s %s: %v", CommandName, strings.Join(args, " "), err)
		return err
	}

	switch act.Verb {
	case Create:
		if act.Kind == overlay.Asset {
			err = in.reg.CreateAsset(act.Slot, act.Asset, act.Opacity)
		} else {
			err = in.reg.CreateColor(act.Slot, act.Color(), act.Opacity)
		}
	case Fade:
		err = in.reg.Fade(act.Slot, act.Opacity, act.Duration)
	case Erase:
		err = in.reg.Erase(act.Slot)
	}

	// errors from the registry have already been logged
	return err
}

// PluginCommand is the hook called by the host for every plugin command.
// Commands with other names are ignored. Errors are logged and are never
// returned to the host.
func (in *Interpreter) PluginCommand(name string, args []string) {
	if name != CommandName {
		return
	}
	_ = in.Exec(args)
}
