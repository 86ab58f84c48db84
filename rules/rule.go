package rules

import (
	"strings"

	"github.com/pkg/errors"
)

// ErrBadRuleString is returned when a rulestring cannot be parsed.
var ErrBadRuleString = errors.New("malformed rulestring")

/*
Rule is a birth/survival rule table over Moore neighbor counts.

A dead cell becomes alive when its neighbor count is in the birth set; a
living cell stays alive when its count is in the survival set.
*/
type Rule struct {
	name     string
	birth    [9]bool
	survival [9]bool
}

// Name returns the rulestring the rule was built from, e.g. "B3/S23".
func (r Rule) Name() string {
	return r.name
}

// Apply determines the next state of a cell from its living neighbor
// count and current state.
func (r Rule) Apply(neighbors int, alive bool) bool {
	if neighbors < 0 || neighbors > 8 {
		return false
	}
	if alive {
		return r.survival[neighbors]
	}
	return r.birth[neighbors]
}

// Conway returns the classic Game of Life rule, B3/S23.
func Conway() Rule {
	r, _ := Parse("B3/S23")
	return r
}

// HighLife returns the HighLife variant, B36/S23.
func HighLife() Rule {
	r, _ := Parse("B36/S23")
	return r
}

// Parse builds a Rule from a B/S rulestring such as "B3/S23" or "B36/S23".
func Parse(s string) (Rule, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return Rule{}, errors.Wrapf(ErrBadRuleString, "[Parse] %q must have a B part and an S part", s)
	}

	bPart, sPart := parts[0], parts[1]
	if !strings.HasPrefix(bPart, "B") || !strings.HasPrefix(sPart, "S") {
		return Rule{}, errors.Wrapf(ErrBadRuleString, "[Parse] %q must look like B<digits>/S<digits>", s)
	}

	r := Rule{name: s}
	if err := fillCounts(&r.birth, bPart[1:]); err != nil {
		return Rule{}, errors.Wrapf(err, "[Parse] birth part of %q", s)
	}
	if err := fillCounts(&r.survival, sPart[1:]); err != nil {
		return Rule{}, errors.Wrapf(err, "[Parse] survival part of %q", s)
	}
	return r, nil
}

// fillCounts marks the neighbor counts named by a digit run.
func fillCounts(set *[9]bool, digits string) error {
	for _, d := range digits {
		if d < '0' || d > '8' {
			return errors.Wrapf(ErrBadRuleString, "neighbor count %q outside 0-8", d)
		}
		set[d-'0'] = true
	}
	return nil
}
