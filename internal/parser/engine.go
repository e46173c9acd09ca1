package parser

import "regexp"

// Every assembler is the same shape: an anchor line opens a transaction,
// the lines up to the next anchor form its body, and the final group runs
// to end-of-input. The formats differ in anchor pattern (CIMB adds a
// literal, Maybank credit needs two adjacent date tokens) and in how the
// body lines fill the record's slots.

// lineGroup is one anchor-led run of lines.
type lineGroup struct {
	anchor []string
	body   []string
}

// anchorFunc reports whether an anchor begins at lines[i] and how many
// lines it consumes.
type anchorFunc func(lines []string, i int) (consumed int, ok bool)

// groupByAnchor splits a filtered line sequence into anchor-led groups.
// Lines before the first anchor are skipped. boundary marks a line that
// ends the current body without necessarily opening a new group (Maybank
// credit bodies end at any single date token, but a group needs a pair);
// nil means body lines run until the next anchor.
func groupByAnchor(lines []string, anchor anchorFunc, boundary func(lines []string, i int) bool) []lineGroup {
	if boundary == nil {
		boundary = func(ls []string, i int) bool {
			_, ok := anchor(ls, i)
			return ok
		}
	}

	var groups []lineGroup
	for i := 0; i < len(lines); {
		consumed, ok := anchor(lines, i)
		if !ok {
			i++
			continue
		}
		g := lineGroup{anchor: lines[i : i+consumed]}
		i += consumed
		for i < len(lines) && !boundary(lines, i) {
			g.body = append(g.body, lines[i])
			i++
		}
		groups = append(groups, g)
	}
	return groups
}

// lineStartAnchor builds a single-line anchor from a line-start pattern.
func lineStartAnchor(pattern *regexp.Regexp) anchorFunc {
	return func(lines []string, i int) (int, bool) {
		if pattern.MatchString(lines[i]) {
			return 1, true
		}
		return 0, false
	}
}

// slotState tracks which field of the in-progress record the next
// matching numeric line fills. Description lines accumulate in every
// state.
type slotState int

const (
	awaitingAmount slotState = iota
	awaitingBalance
	slotsFilled
)
