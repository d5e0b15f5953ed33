package fa

import "github.com/dekarrin/remora/internal/faerr"

// Run feeds a finite word to an ordinary automaton and reports whether it is
// accepted, that is whether any run over the word ends in an accepting
// state. Büchi automata accept ω-words, not finite ones, and are rejected
// with an invalid-argument error.
func (a *Automaton) Run(word []string) (bool, error) {
	if a.Type != Ordinary {
		return false, faerr.Invalid(faerr.ModFAMod, "word runs require an ordinary automaton")
	}
	if a.States == nil || a.States.Initial == nil {
		return false, faerr.Invalid(faerr.ModFAMod, "automaton has no initial state")
	}

	current := []*State{a.States.Initial}
	for _, sym := range word {
		idx, ok := a.SymbolIndex(sym)
		if !ok {
			return false, faerr.Invalidf(faerr.ModFAMod, "symbol %q is not in the alphabet", sym)
		}

		current = Move(current, idx)
		if len(current) == 0 {
			return false, nil
		}
	}

	for _, st := range current {
		if st.Accept {
			return true, nil
		}
	}

	return false, nil
}
