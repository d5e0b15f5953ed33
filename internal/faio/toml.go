package faio

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/dekarrin/remora/internal/fa"
	"github.com/dekarrin/remora/internal/faerr"
)

// CurrentFormat is the format identifier all TOML automaton files must
// declare in their header.
const CurrentFormat = "remora"

// topLevelAutomaton is the top-level structure containing all keys in a
// complete automaton resource file.
type topLevelAutomaton struct {
	Format    string        `toml:"format"`
	Type      string        `toml:"type"`
	Automaton tomlAutomaton `toml:"automaton"`
	States    []tomlState   `toml:"state"`
}

type tomlAutomaton struct {
	Name     string   `toml:"name"`
	Type     string   `toml:"type"`
	Class    string   `toml:"class"`
	Alphabet []string `toml:"alphabet"`
	Initial  string   `toml:"initial"`
}

type tomlState struct {
	Label       string              `toml:"label"`
	Accept      bool                `toml:"accept"`
	Transitions map[string][]string `toml:"transitions"`
}

// LoadTOMLFile loads an automaton from a TOML resource file.
func LoadTOMLFile(path string) (*fa.Automaton, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, faerr.Wrap(faerr.ModFAIO, err, "reading automaton file")
	}

	var tl topLevelAutomaton
	if err := toml.Unmarshal(data, &tl); err != nil {
		return nil, faerr.Wrap(faerr.ModFAIO, err, "decoding automaton file")
	}

	return parseAutomaton(tl)
}

func parseAutomaton(tl topLevelAutomaton) (*fa.Automaton, error) {
	if tl.Format != CurrentFormat {
		return nil, faerr.Invalidf(faerr.ModFAIO, "unsupported file format %q", tl.Format)
	}
	if tl.Type != "automaton" {
		return nil, faerr.Invalidf(faerr.ModFAIO, "file is not an automaton resource, it is %q", tl.Type)
	}
	if len(tl.Automaton.Alphabet) == 0 {
		return nil, faerr.Invalid(faerr.ModFAIO, "automaton has an empty alphabet")
	}
	if len(tl.States) == 0 {
		return nil, faerr.Invalid(faerr.ModFAIO, "automaton has no states")
	}

	typ, err := fa.ParseType(tl.Automaton.Type)
	if err != nil {
		return nil, err
	}
	class, err := fa.ParseClass(tl.Automaton.Class)
	if err != nil {
		return nil, err
	}

	au := fa.New(tl.Automaton.Name, tl.Automaton.Alphabet, typ, class)

	// states first, transitions second, so rows can refer ahead
	for _, ts := range tl.States {
		if _, err := au.AddState(ts.Label, ts.Accept); err != nil {
			return nil, err
		}
	}
	for _, ts := range tl.States {
		for sym, tos := range ts.Transitions {
			for _, to := range tos {
				if err := au.AddTransition(ts.Label, sym, to); err != nil {
					return nil, err
				}
			}
		}
	}

	initial := tl.Automaton.Initial
	if initial == "" {
		initial = tl.States[0].Label
	}
	if err := au.SetInitial(initial); err != nil {
		return nil, err
	}

	return au, nil
}

// SaveTOMLFile writes an automaton to a TOML resource file.
func SaveTOMLFile(path string, au *fa.Automaton) error {
	tl := marshalAutomaton(au)

	f, err := os.Create(path)
	if err != nil {
		return faerr.Wrap(faerr.ModFAIO, err, "creating automaton file")
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(tl); err != nil {
		return faerr.Wrap(faerr.ModFAIO, err, "encoding automaton file")
	}

	return nil
}

func marshalAutomaton(au *fa.Automaton) topLevelAutomaton {
	tl := topLevelAutomaton{
		Format: CurrentFormat,
		Type:   "automaton",
		Automaton: tomlAutomaton{
			Name:     au.Name,
			Type:     au.Type.String(),
			Class:    au.Class.String(),
			Alphabet: au.Alphabet,
		},
	}

	if au.States.Initial != nil {
		tl.Automaton.Initial = au.States.Initial.Label
	}

	_ = au.States.Each(func(st *fa.State) error {
		ts := tomlState{
			Label:  st.Label,
			Accept: st.Accept,
		}

		for i, cell := range st.Trans {
			if len(cell) == 0 {
				continue
			}
			if ts.Transitions == nil {
				ts.Transitions = map[string][]string{}
			}
			for _, to := range cell {
				ts.Transitions[au.Alphabet[i]] = append(ts.Transitions[au.Alphabet[i]], to.Label)
			}
		}

		tl.States = append(tl.States, ts)
		return nil
	})

	return tl
}
