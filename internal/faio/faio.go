// Package faio reads and writes automata in the formats the tool speaks: a
// TOML resource format for authoring, an XML interchange format, a binary
// snapshot format, and DOT output for rendering.
package faio

import (
	"path/filepath"
	"strings"

	"github.com/dekarrin/remora/internal/fa"
	"github.com/dekarrin/remora/internal/faerr"
)

// Load reads an automaton from the given file, picking the format by file
// extension: .toml, .xml, or .rfa.
func Load(path string) (*fa.Automaton, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return LoadTOMLFile(path)
	case ".xml":
		return LoadXMLFile(path)
	case ".rfa":
		return LoadSnapshotFile(path)
	default:
		return nil, faerr.Invalidf(faerr.ModFAIO, "unsupported input file extension on %q", path)
	}
}

// Save writes an automaton to the given file, picking the format by file
// extension: .toml, .xml, .rfa, or .dot.
func Save(path string, au *fa.Automaton) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return SaveTOMLFile(path, au)
	case ".xml":
		return SaveXMLFile(path, au)
	case ".rfa":
		return SaveSnapshotFile(path, au)
	case ".dot":
		return SaveDOTFile(path, au)
	default:
		return faerr.Invalidf(faerr.ModFAIO, "unsupported output file extension on %q", path)
	}
}
