package buechi

import (
	"strings"

	"github.com/dekarrin/remora/internal/fa"
)

// SetOfStates is an ordered set of input-automaton states, the building
// block of a tuple. Its canonical label joins the member labels with commas
// inside a bracket pair that encodes the set's color.
type SetOfStates struct {
	Label  string
	States []*fa.State

	Accept    bool
	Reachable bool

	// Mixed reports that the set holds both accepting and non-accepting
	// states. Mixed sets never receive a successor row; they are only ever
	// consumed by subset splitting.
	Mixed bool

	Color Color

	// Succ is the successor row, indexed by symbol, populated once by the
	// modified subset construction. A nil cell means no transition.
	Succ []*SetOfStates
}

// newSetOfStates builds a fresh set from a non-empty list of states already
// ordered ascending by label with duplicates collapsed. The set starts with
// the default color and an empty successor row.
func newSetOfStates(states []*fa.State) *SetOfStates {
	s := &SetOfStates{
		Label:  setLabel(states),
		States: states,
		Color:  FOrdinary,
	}

	for _, st := range states {
		s.Accept = s.Accept || st.Accept
		s.Reachable = s.Reachable || st.Reachable
	}
	for _, st := range states {
		if st.Accept != s.Accept {
			s.Mixed = true
			break
		}
	}

	return s
}

// setLabel assembles the canonical label of a set from its ordered member
// list, with the default braces.
func setLabel(states []*fa.State) string {
	var sb strings.Builder

	sb.WriteByte('{')
	for i := range states {
		sb.WriteString(states[i].Label)
		if i+1 < len(states) {
			sb.WriteByte(',')
		}
	}
	sb.WriteByte('}')

	return sb.String()
}

// recolor sets the color of the set and rewrites the outer bracket pair of
// its label to match.
func (s *SetOfStates) recolor(c Color) {
	open, close := c.brackets()
	b := []byte(s.Label)
	b[0] = open
	b[len(b)-1] = close
	s.Label = string(b)
	s.Color = c
}

// internSet asks the set store for an entry equal to s: by label alone while
// the finite part is under construction, by label and color in the infinite
// part. On a hit the freshly built set is discarded in favor of the
// incumbent; on a miss s is inserted. The second return value reports a
// fresh insertion.
func (c *construction) internSet(s *SetOfStates) (*SetOfStates, bool) {
	if c.part == PartInfinite {
		if e, ok := c.sets.LookupTagged(s.Label, uint8(s.Color)); ok {
			return e, false
		}
	} else {
		if e, ok := c.sets.Lookup(s.Label); ok {
			return e, false
		}
	}

	// the key cannot collide after the lookups above
	_ = c.sets.Insert(s.Label, uint8(s.Color), s)

	return s, true
}
