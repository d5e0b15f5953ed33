package buechi

import (
	"strings"

	"github.com/dekarrin/remora/internal/fa"
	"github.com/dekarrin/remora/internal/faerr"
)

// Tuple is an ordered sequence of sets of states; a state of the complement
// automaton. Its canonical label joins the member set labels, bracket pairs
// included, inside parentheses.
type Tuple struct {
	Label string
	Sets  []*SetOfStates

	Accept    bool
	Reachable bool

	// HasDiscontinued reports that some member carries the discontinued
	// color; such a tuple is never accepting.
	HasDiscontinued bool

	// Part is the construction phase the tuple was born under.
	Part Part

	// Visited marks the infinite-part copy of the initial tuple.
	Visited bool

	// Succ is the successor row, indexed by symbol; each cell is an ordered
	// list of successor tuples.
	Succ [][]*Tuple
}

// tupleLabel assembles the canonical label of a tuple from its ordered
// member sets.
func tupleLabel(sets []*SetOfStates) string {
	var sb strings.Builder

	sb.WriteByte('(')
	for i := range sets {
		sb.WriteString(sets[i].Label)
		if i+1 < len(sets) {
			sb.WriteByte(',')
		}
	}
	sb.WriteByte(')')

	return sb.String()
}

// newTuple builds a tuple from a non-empty ordered list of interned sets.
// Tuples born in the finite part are never accepting; tuples born in the
// infinite part accept exactly when no member is discontinued.
func (c *construction) newTuple(sets []*SetOfStates) (*Tuple, error) {
	if len(sets) == 0 {
		return nil, faerr.Invalid(faerr.ModBuechi, "tuple must have at least one set of states")
	}

	t := &Tuple{
		Label:  tupleLabel(sets),
		Sets:   sets,
		Accept: c.part == PartInfinite,
		Part:   c.part,
	}

	for _, s := range sets {
		if c.part == PartInfinite && s.Color == Discontinued {
			t.Accept = false
			t.HasDiscontinued = true
		}
		t.Reachable = t.Reachable || s.Reachable
	}

	return t, nil
}

// internTuple asks the tuple store for an entry equal to t: by label alone
// in the finite part, by label and part in the infinite part. On a hit the
// fresh tuple is discarded in favor of the incumbent; on a miss t is
// inserted. The second return value reports a fresh insertion.
func (c *construction) internTuple(t *Tuple) (*Tuple, bool) {
	if c.part == PartInfinite {
		if e, ok := c.tuples.LookupTagged(t.Label, uint8(PartInfinite)); ok {
			return e, false
		}
	} else {
		if e, ok := c.tuples.Lookup(t.Label); ok {
			return e, false
		}
	}

	_ = c.tuples.Insert(t.Label, uint8(t.Part), t)

	return t, true
}

// buildSetList folds one member's split results into the accumulating list
// of successor-tuple members. States already claimed by a set built earlier
// in the round are pruned via their visited flag, so no state appears in two
// distinct sets of one successor tuple; a set left empty by the pruning is
// dropped. Each surviving set is rebuilt, re-interned, and prepended, which
// preserves the left-to-right member order across the reverse member
// traversal of the tuple construction.
//
// In the infinite part the rebuilt set restores the color encoded in the
// source set's bracket. In either part, a set the store had not seen before
// has its successor row computed on the spot.
func (c *construction) buildSetList(members []*SetOfStates, split []*SetOfStates) ([]*SetOfStates, error) {
	for _, src := range split {
		var fresh []*fa.State
		for _, st := range src.States {
			if st.Visited {
				continue
			}
			st.Visited = true
			fresh = append(fresh, st)
		}
		if len(fresh) == 0 {
			continue
		}

		ns := newSetOfStates(fresh)

		if c.part == PartInfinite {
			switch src.Label[0] {
			case '{':
				ns.recolor(Ordinary)
			case '(':
				ns.recolor(OnHold)
			case '[':
				ns.recolor(Discontinued)
			default:
				return nil, faerr.Domain(faerr.ModBuechi, "set label bracket outside the color encoding")
			}
		}

		entry, inserted := c.internSet(ns)
		if inserted {
			if err := c.modSubConst([]*SetOfStates{entry}); err != nil {
				return nil, err
			}
		}

		members = append([]*SetOfStates{entry}, members...)
	}

	return members, nil
}
