package buechi

import (
	"github.com/dekarrin/remora/internal/fa"
	"github.com/dekarrin/remora/internal/faerr"
)

// modSubConst is the modified subset construction. It expands every set on
// the work list by allocating its successor row and interning the successor
// set for each symbol, appending newly discovered non-mixed sets to the work
// list until closure. Mixed sets are held without expansion: they are only
// reached through subset splitting during tuple construction, never as
// subset-construction states in their own right.
//
// Every set on the work list must already be present in the set store with
// an unpopulated successor row. Termination follows from finiteness of the
// state powerset; each set is expanded at most once.
func (c *construction) modSubConst(worklist []*SetOfStates) error {
	if len(worklist) == 0 {
		return faerr.Invalid(faerr.ModBuechi, "subset construction work list is empty")
	}
	if c.sets == nil || c.au.States == nil || c.au.States.Len() == 0 {
		return faerr.Invalid(faerr.ModBuechi, "subset construction over an empty store")
	}

	for i := 0; i < len(worklist); i++ {
		s := worklist[i]

		if s.Mixed || s.Succ != nil {
			continue
		}

		s.Succ = make([]*SetOfStates, len(c.au.Alphabet))

		for sym := range c.au.Alphabet {
			moved := fa.Move(s.States, sym)
			if len(moved) == 0 {
				continue
			}

			entry, fresh := c.internSet(newSetOfStates(moved))
			if fresh && !entry.Mixed {
				worklist = append(worklist, entry)
			}

			s.Succ[sym] = entry
		}
	}

	return nil
}
