// Package fa defines the finite-automaton model shared by every algorithm in
// the library: automata over finite alphabets with a label-keyed state store
// and ordered nondeterministic transition rows.
package fa

import (
	"github.com/dekarrin/remora/internal/faerr"
	"github.com/dekarrin/remora/internal/store"
	"github.com/google/uuid"
)

// Type is the kind of acceptance an automaton uses.
type Type int

const (
	// Ordinary automata accept finite words that end in an accepting state.
	Ordinary Type = iota

	// Buechi automata accept ω-words with a run visiting accepting states
	// infinitely often.
	Buechi
)

func (t Type) String() string {
	switch t {
	case Ordinary:
		return "ordinary"
	case Buechi:
		return "buechi"
	default:
		return "unknown"
	}
}

// ParseType returns the Type named by s.
func ParseType(s string) (Type, error) {
	switch s {
	case "ordinary":
		return Ordinary, nil
	case "buechi":
		return Buechi, nil
	default:
		return Ordinary, faerr.Invalidf(faerr.ModCore, "unknown automaton type %q", s)
	}
}

// Class is the determinism class of an automaton.
type Class int

const (
	Deterministic Class = iota
	NonDeterministic
	EpsilonNonDeterministic
)

func (c Class) String() string {
	switch c {
	case Deterministic:
		return "deterministic"
	case NonDeterministic:
		return "non-deterministic"
	case EpsilonNonDeterministic:
		return "epsilon-non-deterministic"
	default:
		return "unknown"
	}
}

// ParseClass returns the Class named by s.
func ParseClass(s string) (Class, error) {
	switch s {
	case "deterministic":
		return Deterministic, nil
	case "non-deterministic":
		return NonDeterministic, nil
	case "epsilon-non-deterministic":
		return EpsilonNonDeterministic, nil
	default:
		return Deterministic, faerr.Invalidf(faerr.ModCore, "unknown automaton class %q", s)
	}
}

// State is a single automaton state. Its transition row is indexed by symbol
// position in the owning automaton's alphabet; each cell is an ordered list
// of successor states, and a nil cell means the transition is missing.
type State struct {
	Label     string
	Accept    bool
	Reachable bool

	// Visited is a scratch flag used by set constructions during a single
	// round; it is always cleared before the round's result is yielded.
	Visited bool

	Trans [][]*State
}

// Automaton is a finite automaton over a finite alphabet. States live in a
// label-keyed store whose Initial field designates the starting state.
type Automaton struct {
	Name     string
	Alphabet []string
	Type     Type
	Class    Class
	States   *store.Table[*State]
}

// New creates an empty automaton. If name is empty a generated one is
// assigned.
func New(name string, alphabet []string, typ Type, class Class) *Automaton {
	if name == "" {
		name = uuid.NewString()
	}

	return &Automaton{
		Name:     name,
		Alphabet: alphabet,
		Type:     typ,
		Class:    class,
		States:   store.New[*State](),
	}
}

// SymbolIndex returns the position of sym in the alphabet.
func (a *Automaton) SymbolIndex(sym string) (int, bool) {
	for i := range a.Alphabet {
		if a.Alphabet[i] == sym {
			return i, true
		}
	}
	return 0, false
}

// AddState creates a state with the given label and inserts it into the
// state store. The first state added becomes the initial state.
func (a *Automaton) AddState(label string, accept bool) (*State, error) {
	st := &State{
		Label:  label,
		Accept: accept,
	}

	if err := a.States.Insert(label, 0, st); err != nil {
		return nil, faerr.Wrapf(faerr.ModCore, faerr.ErrInvalidArgument, "state %q already exists", label)
	}

	if a.States.Initial == nil {
		a.States.Initial = st
	}

	return st, nil
}

// SetInitial marks the state with the given label as the initial state.
func (a *Automaton) SetInitial(label string) error {
	st, ok := a.States.Lookup(label)
	if !ok {
		return faerr.Invalidf(faerr.ModCore, "initial state %q does not exist", label)
	}
	a.States.Initial = st
	return nil
}

// AddTransition adds a transition from one state to another on the given
// symbol. Transition cells are kept ordered by successor label with
// duplicates collapsed.
func (a *Automaton) AddTransition(from, sym, to string) error {
	fromState, ok := a.States.Lookup(from)
	if !ok {
		return faerr.Invalidf(faerr.ModCore, "transition from non-existent state %q", from)
	}
	toState, ok := a.States.Lookup(to)
	if !ok {
		return faerr.Invalidf(faerr.ModCore, "transition to non-existent state %q", to)
	}
	symIdx, ok := a.SymbolIndex(sym)
	if !ok {
		return faerr.Invalidf(faerr.ModCore, "symbol %q is not in the alphabet", sym)
	}

	if fromState.Trans == nil {
		fromState.Trans = make([][]*State, len(a.Alphabet))
	}
	fromState.Trans[symIdx] = insertOrdered(fromState.Trans[symIdx], toState)
	toState.Reachable = true

	return nil
}

// insertOrdered adds st to the label-ordered list cell, collapsing
// duplicates.
func insertOrdered(cell []*State, st *State) []*State {
	for i := range cell {
		if cell[i].Label == st.Label {
			return cell
		}
		if st.Label < cell[i].Label {
			cell = append(cell, nil)
			copy(cell[i+1:], cell[i:])
			cell[i] = st
			return cell
		}
	}
	return append(cell, st)
}
