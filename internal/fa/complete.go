package fa

import (
	"github.com/dekarrin/remora/internal/faerr"
	"github.com/google/uuid"
)

// Complete ensures every (state, symbol) pair has at least one successor by
// adding at most one fresh non-accepting trap state that loops to itself on
// the whole alphabet. Automata that are already complete are not modified.
func (a *Automaton) Complete() error {
	if a.States == nil || a.States.Initial == nil {
		return faerr.Invalid(faerr.ModFAMod, "automaton has no states")
	}

	var trap *State

	err := a.States.Each(func(st *State) error {
		for i := range a.Alphabet {
			if st.Trans != nil && len(st.Trans[i]) > 0 {
				continue
			}

			if trap == nil {
				// the label only needs to be unique within the store
				trap = &State{
					Label:     uuid.NewString(),
					Reachable: true,
					Trans:     make([][]*State, len(a.Alphabet)),
				}
				for j := range a.Alphabet {
					trap.Trans[j] = []*State{trap}
				}
				if insErr := a.States.Insert(trap.Label, 0, trap); insErr != nil {
					return faerr.Wrap(faerr.ModFAMod, insErr, "inserting trap state")
				}
			}

			if st.Trans == nil {
				st.Trans = make([][]*State, len(a.Alphabet))
			}
			st.Trans[i] = []*State{trap}
		}
		return nil
	})

	return err
}
