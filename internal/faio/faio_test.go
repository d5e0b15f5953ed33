package faio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dekarrin/remora/internal/fa"
)

const sampleTOML = `
format = "remora"
type = "automaton"

[automaton]
name = "loop"
type = "buechi"
class = "non-deterministic"
alphabet = ["a", "b"]
initial = "q0"

[[state]]
label = "q0"
accept = false

[state.transitions]
a = ["q0", "q1"]

[[state]]
label = "q1"
accept = true

[state.transitions]
b = ["q0"]
`

func sampleAutomaton(t *testing.T) *fa.Automaton {
	t.Helper()

	path := filepath.Join(t.TempDir(), "loop.toml")
	assert.NoError(t, os.WriteFile(path, []byte(sampleTOML), 0644))

	au, err := LoadTOMLFile(path)
	assert.NoError(t, err)

	return au
}

func Test_LoadTOMLFile(t *testing.T) {
	assert := assert.New(t)

	au := sampleAutomaton(t)

	assert.Equal("loop", au.Name)
	assert.Equal(fa.Buechi, au.Type)
	assert.Equal(fa.NonDeterministic, au.Class)
	assert.Equal([]string{"a", "b"}, au.Alphabet)
	assert.Equal(2, au.States.Len())
	assert.Equal("q0", au.States.Initial.Label)

	q0, ok := au.States.Lookup("q0")
	assert.True(ok)
	assert.False(q0.Accept)

	q1, ok := au.States.Lookup("q1")
	assert.True(ok)
	assert.True(q1.Accept)

	// transition cells are ordered by successor label
	assert.Len(q0.Trans[0], 2)
	assert.Same(q0, q0.Trans[0][0])
	assert.Same(q1, q0.Trans[0][1])
	assert.Empty(q0.Trans[1])
	assert.Same(q0, q1.Trans[1][0])
}

func Test_LoadTOMLFile_RejectsBadHeaders(t *testing.T) {
	testCases := []struct {
		name string
		data string
	}{
		{
			name: "wrong format",
			data: "format = \"tqw\"\ntype = \"automaton\"\n",
		},
		{
			name: "wrong type",
			data: "format = \"remora\"\ntype = \"manifest\"\n",
		},
		{
			name: "no alphabet",
			data: "format = \"remora\"\ntype = \"automaton\"\n[automaton]\nname = \"x\"\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			path := filepath.Join(t.TempDir(), "bad.toml")
			assert.NoError(os.WriteFile(path, []byte(tc.data), 0644))

			_, err := LoadTOMLFile(path)
			assert.Error(err)
		})
	}
}

func assertSameAutomaton(t *testing.T, expect, actual *fa.Automaton) {
	t.Helper()
	assert := assert.New(t)

	assert.Equal(expect.Name, actual.Name)
	assert.Equal(expect.Type, actual.Type)
	assert.Equal(expect.Class, actual.Class)
	assert.Equal(expect.Alphabet, actual.Alphabet)
	assert.Equal(expect.States.Len(), actual.States.Len())
	assert.Equal(expect.States.Initial.Label, actual.States.Initial.Label)

	_ = expect.States.Each(func(st *fa.State) error {
		got, ok := actual.States.Lookup(st.Label)
		if !assert.True(ok, "state %q is missing", st.Label) {
			return nil
		}
		assert.Equal(st.Accept, got.Accept)

		for i := range expect.Alphabet {
			var expectSucc, actualSucc []string
			if st.Trans != nil {
				for _, to := range st.Trans[i] {
					expectSucc = append(expectSucc, to.Label)
				}
			}
			if got.Trans != nil {
				for _, to := range got.Trans[i] {
					actualSucc = append(actualSucc, to.Label)
				}
			}
			assert.Equal(expectSucc, actualSucc, "state %q symbol %q", st.Label, expect.Alphabet[i])
		}
		return nil
	})
}

func Test_TOMLRoundTrip(t *testing.T) {
	assert := assert.New(t)

	au := sampleAutomaton(t)

	path := filepath.Join(t.TempDir(), "out.toml")
	assert.NoError(SaveTOMLFile(path, au))

	loaded, err := LoadTOMLFile(path)
	assert.NoError(err)

	assertSameAutomaton(t, au, loaded)
}

func Test_XMLRoundTrip(t *testing.T) {
	assert := assert.New(t)

	au := sampleAutomaton(t)

	path := filepath.Join(t.TempDir(), "out.xml")
	assert.NoError(SaveXMLFile(path, au))

	loaded, err := LoadXMLFile(path)
	assert.NoError(err)

	assertSameAutomaton(t, au, loaded)
}

func Test_SnapshotRoundTrip(t *testing.T) {
	assert := assert.New(t)

	au := sampleAutomaton(t)

	path := filepath.Join(t.TempDir(), "out.rfa")
	assert.NoError(SaveSnapshotFile(path, au))

	loaded, err := LoadSnapshotFile(path)
	assert.NoError(err)

	assertSameAutomaton(t, au, loaded)
}

func Test_WriteDOT(t *testing.T) {
	assert := assert.New(t)

	au := sampleAutomaton(t)

	var sb strings.Builder
	assert.NoError(WriteDOT(&sb, au))
	out := sb.String()

	assert.Contains(out, "digraph")
	assert.Contains(out, "q0")
	assert.Contains(out, "q1")
	assert.Contains(out, "doublecircle")
}

func Test_LoadAndSaveDispatchByExtension(t *testing.T) {
	assert := assert.New(t)

	au := sampleAutomaton(t)
	dir := t.TempDir()

	for _, ext := range []string{".toml", ".xml", ".rfa"} {
		path := filepath.Join(dir, "out"+ext)
		assert.NoError(Save(path, au))

		loaded, err := Load(path)
		assert.NoError(err, "extension %q", ext)
		assertSameAutomaton(t, au, loaded)
	}

	assert.NoError(Save(filepath.Join(dir, "out.dot"), au))

	_, err := Load(filepath.Join(dir, "out.dot"))
	assert.Error(err)

	err = Save(filepath.Join(dir, "out.png"), au)
	assert.Error(err)
}
