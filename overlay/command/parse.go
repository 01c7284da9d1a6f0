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
	"fmt"
	"strconv"
	"strings"

	"github.com/tokineco/screenpicture/curated"
	"github.com/tokineco/screenpicture/overlay"
	"github.com/tokineco/screenpicture/tint"
)

// InvalidArguments is the error pattern for commands that cannot be parsed.
const InvalidArguments = "command: invalid arguments: %s"

// Verb of an Action.
type Verb int

// List of valid Verb values.
const (
	Create Verb = iota
	Fade
	Erase
)

func (v Verb) String() string {
	switch v {
	case Create:
		return "set"
	case Fade:
		return "fade"
	case Erase:
		return "erase"
	}
	return "unknown verb"
}

// Action is the result of a successful parse.
type Action struct {
	Verb Verb
	Slot overlay.SlotID

	// Create only. Kind is either overlay.Asset or overlay.GeneratedColor
	Kind    overlay.SourceKind
	Asset   string
	R, G, B int

	// Create and Fade
	Opacity int

	// Fade only
	Duration int
}

func (a Action) String() string {
	switch a.Verb {
	case Create:
		if a.Kind == overlay.Asset {
			return fmt.Sprintf("set %s %s %d", a.Slot, a.Asset, a.Opacity)
		}
		return fmt.Sprintf("set %s %d %d %d %d", a.Slot, a.R, a.G, a.B, a.Opacity)
	case Fade:
		return fmt.Sprintf("fade %s %d %d", a.Slot, a.Opacity, a.Duration)
	}
	return fmt.Sprintf("%s %s", a.Verb, a.Slot)
}

// Color returns the colour of a Create action for a generated colour.
func (a Action) Color() tint.Color {
	return tint.FromInts(a.R, a.G, a.B)
}

// ExpressionResolver converts an argument to an integer. Used for arguments
// that may refer to the host's variables.
type ExpressionResolver func(string) (int, error)

// LiteralResolver is an ExpressionResolver that only accepts integer
// literals.
func LiteralResolver(s string) (int, error) {
	return strconv.Atoi(s)
}

// ResolveSlot returns the slot selected by the token. The mapping is total:
// anything other than "screen" selects the fade slot.
func ResolveSlot(token string) overlay.SlotID {
	if token == "screen" {
		return overlay.Screen
	}
	return overlay.Fade
}

// Parse the plugin command arguments. The first argument is the verb and the
// second argument is the slot selector.
func Parse(args []string, resolve ExpressionResolver) (Action, error) {
	if len(args) == 0 {
		return Action{}, curated.Errorf(InvalidArguments, "missing verb")
	}
	if len(args) == 1 {
		return Action{}, curated.Errorf(InvalidArguments, fmt.Sprintf("missing slot for %s", args[0]))
	}

	act := Action{Slot: ResolveSlot(args[1])}
	trailing := args[2:]

	var err error

	switch args[0] {
	case "set":
		act.Verb = Create

		switch len(trailing) {
		case 2:
			act.Kind = overlay.Asset
			act.Asset = trailing[0]

			// a numeric asset name is most likely a colour with missing values
			if _, err := strconv.ParseFloat(act.Asset, 64); err == nil {
				return Action{}, curated.Errorf(InvalidArguments, fmt.Sprintf("ambiguous asset name (%s)", act.Asset))
			}

			act.Opacity, err = number("opacity", trailing[1])
			if err != nil {
				return Action{}, err
			}

		case 4:
			act.Kind = overlay.GeneratedColor
			if act.R, err = number("red", trailing[0]); err != nil {
				return Action{}, err
			}
			if act.G, err = number("green", trailing[1]); err != nil {
				return Action{}, err
			}
			if act.B, err = number("blue", trailing[2]); err != nil {
				return Action{}, err
			}
			if act.Opacity, err = number("opacity", trailing[3]); err != nil {
				return Action{}, err
			}

		default:
			return Action{}, curated.Errorf(InvalidArguments, fmt.Sprintf("set expects 2 or 4 values after the slot, not %d", len(trailing)))
		}

	case "fade":
		act.Verb = Fade

		if len(trailing) < 2 {
			return Action{}, curated.Errorf(InvalidArguments, "fade expects an opacity and a duration")
		}

		act.Opacity, err = number("opacity", trailing[0])
		if err != nil {
			return Action{}, err
		}

		if resolve == nil {
			resolve = LiteralResolver
		}
		act.Duration, err = resolve(trailing[1])
		if err != nil {
			return Action{}, curated.Errorf(InvalidArguments, fmt.Sprintf("duration (%s): %v", trailing[1], err))
		}
		if act.Duration < 0 {
			return Action{}, curated.Errorf(InvalidArguments, fmt.Sprintf("negative duration (%d)", act.Duration))
		}

	case "erase":
		act.Verb = Erase

	default:
		return Action{}, curated.Errorf(InvalidArguments, fmt.Sprintf("unknown verb (%s)", args[0]))
	}

	return act, nil
}

// number converts a literal integer argument.
func number(name string, s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, curated.Errorf(InvalidArguments, fmt.Sprintf("%s is not a number (%s)", name, s))
	}
	return v, nil
}
