package fa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// buildAutomaton assembles an automaton from a transition table of the form
// stateLabel -> symbol -> successor labels.
func buildAutomaton(t *testing.T, typ Type, class Class, alphabet []string, trans map[string]map[string][]string, accepting []string, initial string) *Automaton {
	t.Helper()

	au := New("test", alphabet, typ, class)

	acceptSet := map[string]bool{}
	for _, label := range accepting {
		acceptSet[label] = true
	}

	labels := make([]string, 0, len(trans))
	for label := range trans {
		labels = append(labels, label)
	}
	// deterministic state order keeps store iteration stable across runs
	for i := range labels {
		for j := i + 1; j < len(labels); j++ {
			if labels[j] < labels[i] {
				labels[i], labels[j] = labels[j], labels[i]
			}
		}
	}

	for _, label := range labels {
		_, err := au.AddState(label, acceptSet[label])
		assert.NoError(t, err)
	}
	for _, from := range labels {
		for sym, tos := range trans[from] {
			for _, to := range tos {
				assert.NoError(t, au.AddTransition(from, sym, to))
			}
		}
	}

	assert.NoError(t, au.SetInitial(initial))

	return au
}

func Test_Move(t *testing.T) {
	au := buildAutomaton(t, Buechi, NonDeterministic, []string{"a", "b"}, map[string]map[string][]string{
		"q0": {"a": {"q1", "q0"}},
		"q1": {"a": {"q1"}, "b": {"q0"}},
	}, []string{"q1"}, "q0")

	q0, _ := au.States.Lookup("q0")
	q1, _ := au.States.Lookup("q1")

	testCases := []struct {
		name   string
		from   []*State
		symbol int
		expect []string
	}{
		{
			name:   "single state",
			from:   []*State{q1},
			symbol: 0,
			expect: []string{"q1"},
		},
		{
			name:   "union is ordered and deduplicated",
			from:   []*State{q0, q1},
			symbol: 0,
			expect: []string{"q0", "q1"},
		},
		{
			name:   "missing transition gives the empty set",
			from:   []*State{q0},
			symbol: 1,
			expect: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			actual := Move(tc.from, tc.symbol)

			var labels []string
			for _, st := range actual {
				labels = append(labels, st.Label)
			}
			assert.Equal(tc.expect, labels)
		})
	}
}

func Test_Complete(t *testing.T) {
	assert := assert.New(t)

	au := buildAutomaton(t, Buechi, NonDeterministic, []string{"a", "b"}, map[string]map[string][]string{
		"q0": {"a": {"q1"}},
		"q1": {"b": {"q0"}},
	}, []string{"q1"}, "q0")

	assert.NoError(au.Complete())

	// exactly one trap state was added
	assert.Equal(3, au.States.Len())

	// every state now has a successor on every symbol, and the trap loops
	// back to itself
	_ = au.States.Each(func(st *State) error {
		for i := range au.Alphabet {
			assert.NotEmpty(st.Trans[i], "state %q has no successor on %q", st.Label, au.Alphabet[i])
		}
		return nil
	})

	q0, _ := au.States.Lookup("q0")
	trap := q0.Trans[1][0]
	assert.False(trap.Accept)
	assert.Same(trap, trap.Trans[0][0])
	assert.Same(trap, trap.Trans[1][0])

	// a second call has nothing left to do
	assert.NoError(au.Complete())
	assert.Equal(3, au.States.Len())
}

func Test_Run(t *testing.T) {
	au := buildAutomaton(t, Ordinary, NonDeterministic, []string{"a", "b"}, map[string]map[string][]string{
		"q0": {"a": {"q0", "q1"}, "b": {"q0"}},
		"q1": {"b": {"q2"}},
		"q2": {},
	}, []string{"q2"}, "q0")

	testCases := []struct {
		name   string
		word   []string
		expect bool
	}{
		{
			name:   "empty word on non-accepting initial",
			word:   nil,
			expect: false,
		},
		{
			name:   "word reaching the accepting state",
			word:   []string{"a", "b"},
			expect: true,
		},
		{
			name:   "word moving past the accepting state",
			word:   []string{"a", "b", "a"},
			expect: false,
		},
		{
			name:   "word staying in the initial state",
			word:   []string{"b", "b"},
			expect: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			actual, err := au.Run(tc.word)

			assert.NoError(err)
			assert.Equal(tc.expect, actual)
		})
	}
}

func Test_Run_RejectsBuechi(t *testing.T) {
	assert := assert.New(t)

	au := buildAutomaton(t, Buechi, NonDeterministic, []string{"a"}, map[string]map[string][]string{
		"q0": {"a": {"q0"}},
	}, []string{"q0"}, "q0")

	_, err := au.Run([]string{"a"})
	assert.Error(err)
}
