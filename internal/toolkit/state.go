package toolkit

import (
	"fmt"
	"strings"
)

// State is a set of runtime widget states. It is also used as the selector
// when attaching a style: a style attached with selector S applies while the
// widget's state contains every bit of S.
type State uint16

// StateDefault is the empty state; styles attached with it always apply.
const StateDefault State = 0

const (
	StateChecked State = 1 << iota
	StateFocused
	StatePressed
	StateDisabled
)

var stateNames = []struct {
	state State
	name  string
}{
	{StateChecked, "checked"},
	{StateFocused, "focused"},
	{StatePressed, "pressed"},
	{StateDisabled, "disabled"},
}

// Has reports whether s contains every bit of other.
func (s State) Has(other State) bool {
	return s&other == other
}

// String returns the state names joined by "|", or "default".
func (s State) String() string {
	if s == StateDefault {
		return "default"
	}
	var parts []string
	for _, sn := range stateNames {
		if s.Has(sn.state) {
			parts = append(parts, sn.name)
		}
	}
	return strings.Join(parts, "|")
}

// ParseState parses a "|" or "," separated list of state names.
func ParseState(s string) (State, error) {
	var result State
	for _, part := range strings.FieldsFunc(s, func(r rune) bool { return r == '|' || r == ',' }) {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" || name == "default" {
			continue
		}
		found := false
		for _, sn := range stateNames {
			if sn.name == name {
				result |= sn.state
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("unknown state %q", part)
		}
	}
	return result, nil
}
