package faio

import (
	"os"

	"github.com/dekarrin/rezi"

	"github.com/dekarrin/remora/internal/fa"
	"github.com/dekarrin/remora/internal/faerr"
)

// The binary snapshot format (.rfa) is a rezi encoding of the automaton:
// header fields first, then every state with its label and accept flag, then
// every transition row as label references, then the initial state's label.

// SaveSnapshotFile writes an automaton to a binary snapshot file.
func SaveSnapshotFile(path string, au *fa.Automaton) error {
	data := encodeAutomaton(au)

	if err := os.WriteFile(path, data, 0644); err != nil {
		return faerr.Wrap(faerr.ModFAIO, err, "writing snapshot file")
	}

	return nil
}

// LoadSnapshotFile loads an automaton from a binary snapshot file.
func LoadSnapshotFile(path string) (*fa.Automaton, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, faerr.Wrap(faerr.ModFAIO, err, "reading snapshot file")
	}

	return decodeAutomaton(data)
}

func encodeAutomaton(au *fa.Automaton) []byte {
	var data []byte

	data = append(data, rezi.EncString(au.Name)...)
	data = append(data, rezi.EncInt(int(au.Type))...)
	data = append(data, rezi.EncInt(int(au.Class))...)

	data = append(data, rezi.EncInt(len(au.Alphabet))...)
	for _, sym := range au.Alphabet {
		data = append(data, rezi.EncString(sym)...)
	}

	data = append(data, rezi.EncInt(au.States.Len())...)
	_ = au.States.Each(func(st *fa.State) error {
		data = append(data, rezi.EncString(st.Label)...)
		data = append(data, rezi.EncBool(st.Accept)...)
		return nil
	})

	// transition rows come after all states so decoding can resolve labels
	_ = au.States.Each(func(st *fa.State) error {
		for i := range au.Alphabet {
			var cell []*fa.State
			if st.Trans != nil {
				cell = st.Trans[i]
			}
			data = append(data, rezi.EncInt(len(cell))...)
			for _, to := range cell {
				data = append(data, rezi.EncString(to.Label)...)
			}
		}
		return nil
	})

	initial := ""
	if au.States.Initial != nil {
		initial = au.States.Initial.Label
	}
	data = append(data, rezi.EncString(initial)...)

	return data
}

func decodeAutomaton(data []byte) (*fa.Automaton, error) {
	d := &snapshotDecoder{data: data}

	name := d.str()
	typ := fa.Type(d.num())
	class := fa.Class(d.num())

	alphabet := make([]string, 0)
	nSyms := d.num()
	for i := 0; i < nSyms; i++ {
		alphabet = append(alphabet, d.str())
	}

	if d.err != nil {
		return nil, faerr.Wrap(faerr.ModFAIO, d.err, "decoding snapshot header")
	}

	au := fa.New(name, alphabet, typ, class)

	nStates := d.num()
	labels := make([]string, 0, nStates)
	for i := 0; i < nStates; i++ {
		label := d.str()
		accept := d.flag()
		if d.err != nil {
			return nil, faerr.Wrap(faerr.ModFAIO, d.err, "decoding snapshot states")
		}

		if _, err := au.AddState(label, accept); err != nil {
			return nil, err
		}
		labels = append(labels, label)
	}

	for i := 0; i < nStates; i++ {
		for j := range alphabet {
			nSucc := d.num()
			for k := 0; k < nSucc; k++ {
				to := d.str()
				if d.err != nil {
					return nil, faerr.Wrap(faerr.ModFAIO, d.err, "decoding snapshot transitions")
				}
				if err := au.AddTransition(labels[i], alphabet[j], to); err != nil {
					return nil, err
				}
			}
		}
	}

	initial := d.str()
	if d.err != nil {
		return nil, faerr.Wrap(faerr.ModFAIO, d.err, "decoding snapshot initial state")
	}
	if initial != "" {
		if err := au.SetInitial(initial); err != nil {
			return nil, err
		}
	}

	return au, nil
}

// snapshotDecoder walks the rezi stream, latching the first error so the
// call sites can stay flat.
type snapshotDecoder struct {
	data []byte
	err  error
}

func (d *snapshotDecoder) num() int {
	if d.err != nil {
		return 0
	}
	v, n, err := rezi.DecInt(d.data)
	if err != nil {
		d.err = err
		return 0
	}
	d.data = d.data[n:]
	return v
}

func (d *snapshotDecoder) str() string {
	if d.err != nil {
		return ""
	}
	v, n, err := rezi.DecString(d.data)
	if err != nil {
		d.err = err
		return ""
	}
	d.data = d.data[n:]
	return v
}

func (d *snapshotDecoder) flag() bool {
	if d.err != nil {
		return false
	}
	v, n, err := rezi.DecBool(d.data)
	if err != nil {
		d.err = err
		return false
	}
	d.data = d.data[n:]
	return v
}
