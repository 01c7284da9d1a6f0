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
	"regexp"
	"strconv"
	"strings"
)

// Variables holds named variables and the host's numbered variables.
type Variables struct {
	named    map[string]int
	numbered map[int]int
}

// NewVariables is the preferred method of initialisation for the Variables
// type.
func NewVariables() *Variables {
	return &Variables{
		named:    make(map[string]int),
		numbered: make(map[int]int),
	}
}

// Set a named variable.
func (vars *Variables) Set(name string, v int) {
	vars.named[name] = v
}

// Delete a named variable.
func (vars *Variables) Delete(name string) {
	delete(vars.named, name)
}

// SetNumbered sets one of the host's numbered variables.
func (vars *Variables) SetNumbered(n int, v int) {
	vars.numbered[n] = v
}

// Numbered returns one of the host's numbered variables. Variables that have
// never been set have the value zero.
func (vars *Variables) Numbered(n int) int {
	return vars.numbered[n]
}

var gameVariable = regexp.MustCompile(`^\$gameVariables\.value\(\s*(\d+)\s*\)$`)

// Resolve an argument to an integer. The argument may be an integer literal,
// a named variable prefixed with % or a reference to a numbered variable in
// the form $gameVariables.value(n).
//
// Resolve has the signature of command.ExpressionResolver.
func (vars *Variables) Resolve(s string) (int, error) {
	s = strings.TrimSpace(s)

	if n, ok := strings.CutPrefix(s, "%"); ok {
		v, ok := vars.named[n]
		if !ok {
			return 0, fmt.Errorf("variable '%s' does not exist", n)
		}
		return v, nil
	}

	if m := gameVariable.FindStringSubmatch(s); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return 0, err
		}
		return vars.numbered[n], nil
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("cannot resolve '%s'", s)
	}
	return v, nil
}

// substitute replaces named variable references with their values. Other
// arguments are left as they are.
func (vars *Variables) substitute(args []string) ([]string, error) {
	sub := make([]string, len(args))
	for i, a := range args {
		if !strings.HasPrefix(a, "%") {
			sub[i] = a
			continue
		}
		v, err := vars.Resolve(a)
		if err != nil {
			return nil, err
		}
		sub[i] = strconv.Itoa(v)
	}
	return sub, nil
}
