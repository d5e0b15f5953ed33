package buechi

import (
	"github.com/dekarrin/remora/internal/fa"
	"github.com/dekarrin/remora/internal/faerr"
	"github.com/dekarrin/remora/internal/store"
)

// stateLabel is the label the projected state of a tuple carries. Tuples of
// the infinite part get their outer parentheses rewritten to square
// brackets, which tells the two otherwise identically labeled copies of a
// tuple apart in the flat state store.
func stateLabel(t *Tuple) string {
	if t.Part != PartInfinite {
		return t.Label
	}

	b := []byte(t.Label)
	b[0] = '['
	b[len(b)-1] = ']'
	return string(b)
}

// projectTuples flattens the tuple store into a state store usable by the
// rest of the library. The first pass materializes one state per tuple, the
// second wires the transition rows through label lookups on the new store.
// The resulting store always describes a nondeterministic Büchi automaton.
func (c *construction) projectTuples() (*store.Table[*fa.State], error) {
	out := store.New[*fa.State]()

	err := c.tuples.Each(func(t *Tuple) error {
		st := &fa.State{
			Label:     stateLabel(t),
			Accept:    t.Accept,
			Reachable: t.Reachable,
		}

		if err := out.Insert(st.Label, 0, st); err != nil {
			return faerr.Wrapf(faerr.ModBuechi, err, "projecting tuple %q", t.Label)
		}
		if t == c.tuples.Initial {
			out.Initial = st
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = c.tuples.Each(func(t *Tuple) error {
		from, ok := out.Lookup(stateLabel(t))
		if !ok {
			return faerr.Domain(faerr.ModBuechi, "projected tuple is missing from the state store")
		}

		if t.Succ == nil {
			return nil
		}

		for sym, cell := range t.Succ {
			for _, suc := range cell {
				to, ok := out.Lookup(stateLabel(suc))
				if !ok {
					return faerr.Domain(faerr.ModBuechi, "successor tuple is missing from the state store")
				}

				if from.Trans == nil {
					from.Trans = make([][]*fa.State, len(c.au.Alphabet))
				}
				from.Trans[sym] = append(from.Trans[sym], to)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}
