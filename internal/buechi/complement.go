package buechi

import (
	"fmt"
	"strconv"
	"time"

	"github.com/dekarrin/rosed"

	"github.com/dekarrin/remora/internal/fa"
	"github.com/dekarrin/remora/internal/faerr"
	"github.com/dekarrin/remora/internal/store"
)

// Complement replaces the state store of a nondeterministic Büchi automaton
// with one accepting the complement of its ω-language. The alphabet, name,
// and type of the automaton are unchanged and its class is set to
// non-deterministic; a deterministic input is returned untouched.
//
// The variant selects pre-completion and pruning behavior; see the Variant
// constants. Verbosity is a bitmask: VerboseTime reports the wall-clock
// duration of the construction, VerboseMemory the size of the input state
// store and of the set and tuple stores it built.
func Complement(au *fa.Automaton, variant Variant, verbose Verbosity) error {
	if au == nil || au.States == nil || au.States.Initial == nil {
		return faerr.Invalid(faerr.ModBuechi, "automaton has no initial state")
	}
	if au.Type != fa.Buechi {
		return faerr.Invalid(faerr.ModBuechi, "automaton is not a Büchi automaton")
	}
	if au.Class == fa.Deterministic {
		return nil
	}

	start := time.Now()

	c, err := buildParts(au, variant)
	if err != nil {
		return err
	}

	nbStates := au.States.Len()
	nbSets := c.sets.Len()
	nbTuples := c.tuples.Len()

	states, err := c.projectTuples()
	if err != nil {
		return err
	}

	// the original state store and the set store are dropped here; only the
	// projected store survives the call
	au.States = states
	au.Class = fa.NonDeterministic
	c.sets = nil
	c.tuples = nil

	if verbose&VerboseTime != 0 {
		fmt.Printf(" [BUECHI] Complementing Büchi automaton '%s': %s\n", au.Name, time.Since(start))
	}
	if verbose&VerboseMemory != 0 {
		data := [][]string{
			{"Entity", "Count"},
			{"states", strconv.Itoa(nbStates)},
			{"sets and mixed sets", strconv.Itoa(nbSets)},
			{"tuples", strconv.Itoa(nbTuples)},
		}
		fmt.Print(rosed.Edit("").
			InsertTableOpts(0, data, 40, rosed.Options{
				TableHeaders:             true,
				NoTrailingLineSeparators: true,
			}).
			String() + "\n")
	}

	return nil
}

// buildParts runs the three construction passes and returns the finished
// construction with its set and tuple stores still intact.
func buildParts(au *fa.Automaton, variant Variant) (*construction, error) {
	if variant == Unifr2 || variant == Unifr3 {
		if err := au.Complete(); err != nil {
			return nil, err
		}
	}

	c := &construction{
		au:       au,
		sets:     store.New[*SetOfStates](),
		tuples:   store.New[*Tuple](),
		part:     PartFinite,
		optimize: variant == Unifr2,
	}

	// Finite part: wrap the initial state into a set and the set into a
	// 1-tuple, then run the colorless tuple construction to fixpoint.
	initSet, _ := c.internSet(newSetOfStates([]*fa.State{au.States.Initial}))
	c.sets.Initial = initSet

	if err := c.modSubConst([]*SetOfStates{initSet}); err != nil {
		return nil, err
	}

	initTuple, err := c.newTuple([]*SetOfStates{initSet})
	if err != nil {
		return nil, err
	}
	initTuple.Part = PartInitial
	if err := c.tuples.Insert(initTuple.Label, uint8(PartInitial), initTuple); err != nil {
		return nil, faerr.Wrap(faerr.ModBuechi, err, "inserting initial tuple")
	}
	c.tuples.Initial = initTuple
	c.initialLabel = initTuple.Label

	if err := c.tupleConst([]*Tuple{initTuple}); err != nil {
		return nil, err
	}

	// Infinite part: re-enqueue the initial tuple and replay the
	// construction with coloring on.
	c.part = PartInfinite

	if err := c.tupleConst([]*Tuple{initTuple}); err != nil {
		return nil, err
	}

	// Connect pass: re-expand every finite-part tuple in colored mode so
	// the finite part can reach the infinite part.
	var connect []*Tuple
	_ = c.tuples.Each(func(t *Tuple) error {
		if t.Part == PartFinite {
			connect = append(connect, t)
		}
		return nil
	})
	if len(connect) > 0 {
		if err := c.tupleConst(connect); err != nil {
			return nil, err
		}
	}

	return c, nil
}
