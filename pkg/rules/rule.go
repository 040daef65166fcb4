package rules

import (
	"fmt"
	"sort"
)

// LockKeyword is the keyword that turns a pattern line into a lock
const LockKeyword = "locked"

// Rule binds a placement pattern to a category keyword. Rules are values;
// they are never modified once built.
type Rule struct {
	pattern   string
	keyword   string
	ruleType  Type
	priority  int
	positions []int
}

// New builds a rule from a pattern and a keyword
func New(pattern, keyword string) (Rule, error) {
	placement, err := ParsePattern(pattern)
	if err != nil {
		return Rule{}, err
	}

	return Rule{
		pattern:   pattern,
		keyword:   keyword,
		ruleType:  placement.Type,
		priority:  placement.Type.LowestPriority(),
		positions: placement.Positions,
	}, nil
}

// Pattern returns the raw placement token
func (r Rule) Pattern() string { return r.pattern }

// Keyword returns the category keyword
func (r Rule) Keyword() string { return r.keyword }

// Type returns the pattern type
func (r Rule) Type() Type { return r.ruleType }

// Priority returns the sort priority, higher first
func (r Rule) Priority() int { return r.priority }

// Positions returns the preferred slots in fill order
func (r Rule) Positions() []int {
	out := make([]int, len(r.positions))
	copy(out, r.positions)
	return out
}

func (r Rule) String() string {
	return fmt.Sprintf("%s %s (%s, priority %d)", r.pattern, r.keyword, r.ruleType, r.priority)
}

// SortByPriority orders rules by priority, highest first. Equal priorities
// keep their relative order.
func SortByPriority(rules []Rule) {
	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].priority > rules[j].priority
	})
}
