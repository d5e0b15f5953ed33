// Package remora is a library for manipulating finite automata over finite
// alphabets, with ordinary and Büchi acceptance. Algorithms are addressed as
// category.key pairs and applied to a loaded automaton in order; the
// centerpiece is the determinization-based Büchi complementation in the
// buechi package, surfaced here as complementation.unifr, .unifr2, and
// .unifr3.
package remora

import (
	"fmt"
	"io"
	"strings"

	"github.com/dekarrin/remora/internal/buechi"
	"github.com/dekarrin/remora/internal/fa"
	"github.com/dekarrin/remora/internal/faerr"
	"github.com/dekarrin/remora/internal/faio"
	"github.com/dekarrin/remora/internal/util"
)

// Algorithm identifies one algorithm of the library, as requested on the
// command line.
type Algorithm struct {
	Category string
	Name     string
}

func (a Algorithm) String() string {
	return a.Category + "." + a.Name
}

// knownAlgorithms lists every algorithm the library advertises. Entries
// mapped to false are recognized but not implemented.
var knownAlgorithms = map[string]bool{
	"complementation.ordinary": false,
	"complementation.unifr":    true,
	"complementation.unifr2":   true,
	"complementation.unifr3":   true,

	"equivalence.table-filling": false,

	"generator.boltzmann": false,
	"generator.recursive": false,

	"minimization.brzozowski": false,
	"minimization.hopcroft":   false,

	"run.ordinary": true,

	"transformation.collect":             false,
	"transformation.complete":            true,
	"transformation.subset-construction": false,
}

// ParseAlgorithms parses a comma-separated list of category.key pairs.
func ParseAlgorithms(spec string) ([]Algorithm, error) {
	var algos []Algorithm

	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		cat, name, ok := strings.Cut(part, ".")
		if !ok {
			return nil, faerr.Invalidf(faerr.ModTool, "algorithm %q is not a category.key pair", part)
		}

		a := Algorithm{Category: cat, Name: name}
		if _, known := knownAlgorithms[a.String()]; !known {
			names := util.OrderedKeys(knownAlgorithms)
			return nil, faerr.Invalidf(faerr.ModTool, "unknown algorithm %q; supported algorithms are %s", part, util.MakeTextList(names))
		}

		algos = append(algos, a)
	}

	if len(algos) == 0 {
		return nil, faerr.Invalid(faerr.ModTool, "no algorithms requested")
	}

	return algos, nil
}

// ParseVerbosity parses a comma-separated subset of {memory, time} into the
// verbosity bitmask.
func ParseVerbosity(spec string) (buechi.Verbosity, error) {
	var v buechi.Verbosity

	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		switch part {
		case "":
		case "memory":
			v |= buechi.VerboseMemory
		case "time":
			v |= buechi.VerboseTime
		default:
			return 0, faerr.Invalidf(faerr.ModTool, "unknown verbosity level %q; supported levels are memory and time", part)
		}
	}

	return v, nil
}

// Options carries the inputs algorithms may need besides the automaton
// itself.
type Options struct {
	Verbosity buechi.Verbosity

	// Word is the input word for run algorithms.
	Word []string
}

// Load reads an automaton from a file, picking the format by extension.
func Load(path string) (*fa.Automaton, error) {
	return faio.Load(path)
}

// Save writes an automaton to a file, picking the format by extension.
func Save(path string, au *fa.Automaton) error {
	return faio.Save(path, au)
}

// Apply runs the given algorithms on the automaton in order, stopping at the
// first failure. Results that are reports rather than transformations, such
// as word runs, are written to w.
func Apply(au *fa.Automaton, algos []Algorithm, opts Options, w io.Writer) error {
	if au == nil {
		return faerr.Invalid(faerr.ModTool, "no automaton to apply algorithms to")
	}

	for _, a := range algos {
		if impl, known := knownAlgorithms[a.String()]; !known || !impl {
			return faerr.NotImplemented(faerr.ModTool, a.String())
		}

		var err error
		switch a.String() {
		case "complementation.unifr":
			err = buechi.Complement(au, buechi.Unifr, opts.Verbosity)
		case "complementation.unifr2":
			err = buechi.Complement(au, buechi.Unifr2, opts.Verbosity)
		case "complementation.unifr3":
			err = buechi.Complement(au, buechi.Unifr3, opts.Verbosity)
		case "transformation.complete":
			err = au.Complete()
		case "run.ordinary":
			var accepted bool
			accepted, err = au.Run(opts.Word)
			if err == nil {
				verdict := "rejected"
				if accepted {
					verdict = "accepted"
				}
				fmt.Fprintf(w, "%s: word %q %s\n", au.Name, strings.Join(opts.Word, ""), verdict)
			}
		default:
			err = faerr.NotImplemented(faerr.ModTool, a.String())
		}

		if err != nil {
			return err
		}
	}

	return nil
}
