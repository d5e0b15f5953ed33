package faio

import (
	"io"
	"os"

	"github.com/emicklei/dot"

	"github.com/dekarrin/remora/internal/fa"
	"github.com/dekarrin/remora/internal/faerr"
)

// WriteDOT renders the automaton's state store as a directed graph in DOT
// format. Accepting states are drawn as double circles, and the initial
// state is pointed to by an entry arrow from a point-shaped start node.
func WriteDOT(w io.Writer, au *fa.Automaton) error {
	g := dot.NewGraph(dot.Directed)
	g.Attr("rankdir", "LR")
	g.Attr("label", au.Name)

	entry := g.Node("__start")
	entry.Attr("shape", "point")

	_ = au.States.Each(func(st *fa.State) error {
		n := g.Node(st.Label)
		if st.Accept {
			n.Attr("shape", "doublecircle")
		} else {
			n.Attr("shape", "circle")
		}
		return nil
	})

	if au.States.Initial != nil {
		g.Edge(entry, g.Node(au.States.Initial.Label))
	}

	_ = au.States.Each(func(st *fa.State) error {
		from := g.Node(st.Label)
		for i, cell := range st.Trans {
			for _, to := range cell {
				g.Edge(from, g.Node(to.Label), au.Alphabet[i])
			}
		}
		return nil
	})

	if _, err := io.WriteString(w, g.String()); err != nil {
		return faerr.Wrap(faerr.ModFADot, err, "writing DOT output")
	}

	return nil
}

// SaveDOTFile writes the automaton's DOT rendering to a file.
func SaveDOTFile(path string, au *fa.Automaton) error {
	f, err := os.Create(path)
	if err != nil {
		return faerr.Wrap(faerr.ModFADot, err, "creating DOT file")
	}
	defer f.Close()

	return WriteDOT(f, au)
}
