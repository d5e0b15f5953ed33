package buechi

import (
	"strings"

	"github.com/dekarrin/remora/internal/fa"
	"github.com/dekarrin/remora/internal/faerr"
)

// tupleConst expands every tuple on the work list one symbol at a time,
// appending newly discovered tuples to the list until closure. For each
// symbol the members of the tuple are traversed in reverse order, rightmost
// first; each member's successor set is interned (and, in the infinite part,
// recolored according to the transition rules), split if mixed, and folded
// into the successor tuple's member list with cross-set deduplication. The
// assembled successor tuple is interned and appended to the tuple's
// successor row.
//
// With the optimization of the unifr2 variant enabled, a rightmost member
// whose split head comes out discontinued abandons the successor for the
// current symbol entirely; the equivalent successor is smaller that way.
func (c *construction) tupleConst(worklist []*Tuple) error {
	if len(worklist) == 0 {
		return faerr.Invalid(faerr.ModBuechi, "tuple construction work list is empty")
	}

	for i := 0; i < len(worklist); i++ {
		t := worklist[i]

		if t.Succ == nil {
			t.Succ = make([][]*Tuple, len(c.au.Alphabet))
		}

		for sym := range c.au.Alphabet {
			members, err := c.symbolSuccessor(t, sym)
			if err != nil {
				return err
			}
			if len(members) == 0 {
				continue
			}

			nt, err := c.newTuple(members)
			if err != nil {
				return err
			}

			entry, fresh := c.internTuple(nt)
			if fresh {
				// the infinite-part copy of the initial tuple needs to be
				// told apart from the original
				if strings.HasPrefix(entry.Label, c.initialLabel) {
					entry.Visited = true
				}
				worklist = append(worklist, entry)
			}

			t.Succ[sym] = append(t.Succ[sym], entry)
		}
	}

	return nil
}

// symbolSuccessor assembles the member list of the successor tuple of t
// under one symbol. A nil result means the successor is empty and no tuple
// is emitted for the symbol. Visited flags raised during the round are
// cleared before the list is yielded.
func (c *construction) symbolSuccessor(t *Tuple, sym int) ([]*SetOfStates, error) {
	var members []*SetOfStates
	last := len(t.Sets) - 1

	for j := last; j >= 0; j-- {
		member := t.Sets[j]

		moved := fa.Move(member.States, sym)
		if len(moved) == 0 {
			continue
		}

		sc := newSetOfStates(moved)
		if c.part == PartInfinite {
			if err := c.recolorMoved(member, sc, t); err != nil {
				clearVisited(members)
				return nil, err
			}
		}

		entry, fresh := c.internSet(sc)
		if fresh && !entry.Mixed {
			if err := c.modSubConst([]*SetOfStates{entry}); err != nil {
				clearVisited(members)
				return nil, err
			}
		}

		split := []*SetOfStates{entry}
		if entry.Mixed {
			var err error
			split, err = c.splitSet(entry, member.Color, t)
			if err != nil {
				clearVisited(members)
				return nil, err
			}
		}

		if c.optimize && j == last && split[0].Color == Discontinued {
			// the rightmost position came out discontinued; abandon the
			// successor for this symbol entirely
			clearVisited(members)
			return nil, nil
		}

		var err error
		members, err = c.buildSetList(members, split)
		if err != nil {
			clearVisited(members)
			return nil, err
		}
	}

	clearVisited(members)

	return members, nil
}

// recolorMoved applies the color transition rules to the freshly moved,
// still default-colored successor of a tuple member.
func (c *construction) recolorMoved(parent, suc *SetOfStates, t *Tuple) error {
	switch {
	case parent.Color == FOrdinary && (parent.Accept || suc.Mixed):
		suc.recolor(Discontinued)
	case parent.Color == FOrdinary || parent.Color == Ordinary:
		if suc.Accept || suc.Mixed {
			if t.HasDiscontinued {
				suc.recolor(OnHold)
			} else {
				suc.recolor(Discontinued)
			}
		} else {
			suc.recolor(Ordinary)
		}
	case parent.Color == OnHold && t.HasDiscontinued:
		suc.recolor(OnHold)
	case parent.Color == OnHold || parent.Color == Discontinued:
		suc.recolor(Discontinued)
	default:
		return faerr.Domain(faerr.ModBuechi, "set color outside the transition table")
	}

	return nil
}

// clearVisited lowers the visited flag on every state of every listed set.
func clearVisited(sets []*SetOfStates) {
	for _, s := range sets {
		for _, st := range s.States {
			st.Visited = false
		}
	}
}
