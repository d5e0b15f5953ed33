// Package buechi implements a determinization-based complementation
// procedure for nondeterministic Büchi automata, developed at the University
// of Fribourg.
//
// The construction builds tuples of labeled sets of the input's states in
// two phases. The finite part is built colorless by a modified subset
// construction that refuses to expand sets mixing accepting and
// non-accepting states; such mixed sets are only ever split into an
// accepting and a non-accepting child during tuple transitions. The infinite
// part replays the same tuple construction with a three-valued color
// (ordinary, on-hold, discontinued) attached to every set, tracking the
// Büchi acceptance obligation. A final connect pass re-expands every
// finite-part tuple in colored mode to wire the two halves together, and the
// resulting tuple store is flattened back into an ordinary state store.
//
// Colors are encoded both in a set's Color field and in the outer bracket
// pair of its canonical label: braces for ordinary sets, parentheses for
// on-hold, square brackets for discontinued. Two sets whose labels differ
// only in that bracket pair are distinct entries of the set store.
package buechi

import (
	"github.com/dekarrin/remora/internal/fa"
	"github.com/dekarrin/remora/internal/store"
)

// Color is the Büchi obligation attached to a set of states during the
// infinite part of the construction.
type Color uint8

const (
	// FOrdinary is the pre-coloring default carried by every set built
	// during the finite part, before coloring begins.
	FOrdinary Color = iota

	// Ordinary marks a set that currently owes no accepting visit.
	Ordinary

	// OnHold marks an accepting component whose obligation is deferred to
	// the next round because the enclosing tuple already carries a
	// discontinued set.
	OnHold

	// Discontinued marks a set whose accepting obligation is satisfied for
	// the current round.
	Discontinued
)

func (c Color) String() string {
	switch c {
	case FOrdinary:
		return "f-ordinary"
	case Ordinary:
		return "ordinary"
	case OnHold:
		return "on-hold"
	case Discontinued:
		return "discontinued"
	default:
		return "unknown"
	}
}

// brackets gives the label bracket pair that encodes the color.
func (c Color) brackets() (open, close byte) {
	switch c {
	case OnHold:
		return '(', ')'
	case Discontinued:
		return '[', ']'
	default:
		return '{', '}'
	}
}

// Part is the phase of the construction a tuple was born under.
type Part uint8

const (
	PartInitial Part = iota
	PartFinite
	PartInfinite
)

func (p Part) String() string {
	switch p {
	case PartInitial:
		return "initial"
	case PartFinite:
		return "finite"
	case PartInfinite:
		return "infinite"
	default:
		return "unknown"
	}
}

// Variant selects one of the three complementation drivers.
type Variant int

const (
	// Unifr runs the plain construction: no pre-completion of the input and
	// no successor pruning.
	Unifr Variant = iota

	// Unifr2 pre-completes the input automaton and prunes any symbol
	// successor whose rightmost split head comes out discontinued.
	Unifr2

	// Unifr3 pre-completes the input automaton but keeps the full,
	// unpruned construction.
	Unifr3
)

func (v Variant) String() string {
	switch v {
	case Unifr:
		return "unifr"
	case Unifr2:
		return "unifr2"
	case Unifr3:
		return "unifr3"
	default:
		return "unknown"
	}
}

// Verbosity is a bitmask of optional progress reports.
type Verbosity uint8

const (
	VerboseMemory Verbosity = 1 << iota
	VerboseTime
)

// construction carries the state of one complementation call. Threading it
// through every step keeps the procedure free of package-level state, so two
// complementations cannot corrupt each other.
type construction struct {
	au     *fa.Automaton
	sets   *store.Table[*SetOfStates]
	tuples *store.Table[*Tuple]

	// part is the current construction mode; it decides whether set and
	// tuple lookups are colorless or colored.
	part Part

	// initialLabel is the label of the initial tuple. A freshly interned
	// tuple whose label starts with it is the infinite-part copy of the
	// initial tuple.
	initialLabel string

	// optimize enables the trailing-discontinued successor pruning of the
	// unifr2 variant.
	optimize bool
}
