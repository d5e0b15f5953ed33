package buechi

import (
	"github.com/dekarrin/remora/internal/fa"
	"github.com/dekarrin/remora/internal/faerr"
)

// splitSet partitions a mixed set into its accepting and non-accepting
// children, colors them according to the transition rules, and interns both
// in the set store. The result lists the accepting child first, matching the
// reverse order the successor-tuple builder consumes.
//
// The coloring is keyed on the color of the set's parent in the transition
// and on whether the enclosing tuple already carries a discontinued set: an
// accepting component owes the automaton an accepting visit, and that
// obligation is marked discontinued for this round unless a sibling already
// carries it, in which case the component is placed on hold for the next
// round. Anything descending from a discontinued parent stays discontinued
// until the round resets. While the finite part is under construction no
// coloring happens at all.
func (c *construction) splitSet(m *SetOfStates, parent Color, t *Tuple) ([]*SetOfStates, error) {
	var acc, nac []*fa.State
	for _, st := range m.States {
		if st.Accept {
			acc = append(acc, st)
		} else {
			nac = append(nac, st)
		}
	}
	if len(acc) == 0 || len(nac) == 0 {
		return nil, faerr.Invalid(faerr.ModBuechi, "splitting a set that is not mixed")
	}

	accSet := newSetOfStates(acc)
	nacSet := newSetOfStates(nac)

	if c.part == PartInfinite {
		switch parent {
		case FOrdinary:
			accSet.recolor(Discontinued)
			nacSet.recolor(Ordinary)
		case Ordinary:
			if t.HasDiscontinued {
				accSet.recolor(OnHold)
			} else {
				accSet.recolor(Discontinued)
			}
			nacSet.recolor(Ordinary)
		case OnHold:
			if t.HasDiscontinued {
				accSet.recolor(OnHold)
				nacSet.recolor(OnHold)
			} else {
				accSet.recolor(Discontinued)
				nacSet.recolor(Ordinary)
			}
		case Discontinued:
			accSet.recolor(Discontinued)
			nacSet.recolor(Discontinued)
		default:
			return nil, faerr.Domain(faerr.ModBuechi, "set color outside the transition table")
		}
	}

	accEntry, _ := c.internSet(accSet)
	nacEntry, _ := c.internSet(nacSet)

	return []*SetOfStates{accEntry, nacEntry}, nil
}
