package remora

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dekarrin/remora/internal/buechi"
	"github.com/dekarrin/remora/internal/fa"
	"github.com/dekarrin/remora/internal/faerr"
)

func Test_ParseAlgorithms(t *testing.T) {
	testCases := []struct {
		name      string
		spec      string
		expect    []Algorithm
		expectErr bool
	}{
		{
			name:   "single algorithm",
			spec:   "complementation.unifr2",
			expect: []Algorithm{{Category: "complementation", Name: "unifr2"}},
		},
		{
			name: "chain keeps order",
			spec: "transformation.complete,complementation.unifr",
			expect: []Algorithm{
				{Category: "transformation", Name: "complete"},
				{Category: "complementation", Name: "unifr"},
			},
		},
		{
			name:   "whitespace is tolerated",
			spec:   " run.ordinary , transformation.complete ",
			expect: []Algorithm{{Category: "run", Name: "ordinary"}, {Category: "transformation", Name: "complete"}},
		},
		{
			name:      "empty spec",
			spec:      "",
			expectErr: true,
		},
		{
			name:      "missing category",
			spec:      "unifr2",
			expectErr: true,
		},
		{
			name:      "unknown algorithm",
			spec:      "complementation.safra",
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			actual, err := ParseAlgorithms(tc.spec)

			if tc.expectErr {
				assert.Error(err)
				return
			}
			assert.NoError(err)
			assert.Equal(tc.expect, actual)
		})
	}
}

func Test_ParseVerbosity(t *testing.T) {
	testCases := []struct {
		name      string
		spec      string
		expect    buechi.Verbosity
		expectErr bool
	}{
		{
			name:   "empty gives silence",
			spec:   "",
			expect: 0,
		},
		{
			name:   "memory only",
			spec:   "memory",
			expect: buechi.VerboseMemory,
		},
		{
			name:   "both levels",
			spec:   "memory,time",
			expect: buechi.VerboseMemory | buechi.VerboseTime,
		},
		{
			name:      "unknown level",
			spec:      "loud",
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			actual, err := ParseVerbosity(tc.spec)

			if tc.expectErr {
				assert.Error(err)
				return
			}
			assert.NoError(err)
			assert.Equal(tc.expect, actual)
		})
	}
}

func Test_Apply_StubsReturnNotImplemented(t *testing.T) {
	assert := assert.New(t)

	au := fa.New("test", []string{"a"}, fa.Ordinary, fa.Deterministic)
	_, err := au.AddState("q0", false)
	assert.NoError(err)

	var sb strings.Builder
	err = Apply(au, []Algorithm{{Category: "minimization", Name: "hopcroft"}}, Options{}, &sb)
	assert.ErrorIs(err, faerr.ErrNotImplemented)
}

func Test_Apply_RunReportsVerdict(t *testing.T) {
	assert := assert.New(t)

	au := fa.New("test", []string{"a"}, fa.Ordinary, fa.Deterministic)
	_, err := au.AddState("q0", true)
	assert.NoError(err)
	assert.NoError(au.AddTransition("q0", "a", "q0"))

	var sb strings.Builder
	err = Apply(au, []Algorithm{{Category: "run", Name: "ordinary"}}, Options{Word: []string{"a", "a"}}, &sb)
	assert.NoError(err)
	assert.Contains(sb.String(), "accepted")
}

func Test_Apply_CompleteThenComplement(t *testing.T) {
	assert := assert.New(t)

	au := fa.New("test", []string{"a", "b"}, fa.Buechi, fa.NonDeterministic)
	_, err := au.AddState("q0", false)
	assert.NoError(err)
	_, err = au.AddState("q1", true)
	assert.NoError(err)
	assert.NoError(au.AddTransition("q0", "a", "q1"))
	assert.NoError(au.AddTransition("q1", "b", "q0"))

	var sb strings.Builder
	err = Apply(au, []Algorithm{
		{Category: "transformation", Name: "complete"},
		{Category: "complementation", Name: "unifr"},
	}, Options{}, &sb)

	assert.NoError(err)
	assert.Equal(fa.NonDeterministic, au.Class)
	assert.Equal(fa.Buechi, au.Type)

	// the state store was replaced by the projected tuple store
	assert.NotEmpty(au.States.Len())
	assert.NotNil(au.States.Initial)
	assert.True(strings.HasPrefix(au.States.Initial.Label, "("))
}
