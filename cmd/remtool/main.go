/*
Remtool applies algorithms to finite automata read from resource files.

It reads an automaton from an input file, applies the requested algorithms to
it in order, and optionally writes the transformed automaton to an output
file. The input format is picked by file extension (.toml, .xml, .rfa), as is
the output format (.toml, .xml, .rfa, .dot).

Usage:

	remtool [flags]

The flags are:

	-v, --version
		Give the current version of remora and then exit.

	-i, --input FILE
		Read the automaton from the given resource file.

	-o, --output FILE
		Write the resulting automaton to the given file. If not set, the
		automaton is discarded after the algorithms run.

	-a, --algorithms LIST
		Apply the given comma-separated list of category.key algorithm
		pairs, e.g. "complementation.unifr2" or
		"transformation.complete,complementation.unifr".

	-V, --verbosity LIST
		Enable the given comma-separated verbosity levels out of "memory"
		and "time".

	-c, --config FILE
		Read flag defaults from the given TOML file. Defaults to
		"remtool.toml" in the current working directory if that file
		exists. Explicit flags override config values.

	-w, --word WORD
		The input word for run algorithms. Symbols are the individual
		characters of WORD, or comma-separated if WORD contains commas.
*/
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"

	"github.com/dekarrin/remora"
	"github.com/dekarrin/remora/internal/faerr"
	"github.com/dekarrin/remora/internal/version"
)

const (

	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitError indicates an unsuccessful program execution.
	ExitError
)

var (
	returnCode     int     = ExitSuccess
	flagVersion    *bool   = pflag.BoolP("version", "v", false, "Gives the version info")
	inputFile      *string = pflag.StringP("input", "i", "", "The automaton resource file to read")
	outputFile     *string = pflag.StringP("output", "o", "", "The file to write the resulting automaton to")
	algorithmsList *string = pflag.StringP("algorithms", "a", "", "Comma-separated category.key algorithm pairs to apply")
	verbosityList  *string = pflag.StringP("verbosity", "V", "", "Comma-separated verbosity levels out of memory and time")
	configFile     *string = pflag.StringP("config", "c", "", "TOML file with flag defaults")
	inputWord      *string = pflag.StringP("word", "w", "", "The input word for run algorithms")
)

// toolConfig is the structure of the TOML defaults file.
type toolConfig struct {
	Algorithms string `toml:"algorithms"`
	Verbosity  string `toml:"verbosity"`
	Output     string `toml:"output"`
}

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			// we are panicking, make sure we dont lose the panic just because
			// we checked
			panic(fmt.Sprintf("unrecoverable panic occured: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s\n", version.Current)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, faerr.Diagnostic(err))
		returnCode = ExitError
	}
}

func run() error {
	cfg, err := loadConfig(*configFile)
	if err != nil {
		return err
	}

	algoSpec := cfg.Algorithms
	if *algorithmsList != "" {
		algoSpec = *algorithmsList
	}
	verbSpec := cfg.Verbosity
	if *verbosityList != "" {
		verbSpec = *verbosityList
	}
	output := cfg.Output
	if *outputFile != "" {
		output = *outputFile
	}

	if *inputFile == "" {
		return faerr.Invalid(faerr.ModTool, "no input file given; use -i FILE")
	}

	algos, err := remora.ParseAlgorithms(algoSpec)
	if err != nil {
		return err
	}
	verbosity, err := remora.ParseVerbosity(verbSpec)
	if err != nil {
		return err
	}

	au, err := remora.Load(*inputFile)
	if err != nil {
		return err
	}

	opts := remora.Options{
		Verbosity: verbosity,
		Word:      parseWord(*inputWord),
	}

	if err := remora.Apply(au, algos, opts, os.Stdout); err != nil {
		return err
	}

	if output != "" {
		if err := remora.Save(output, au); err != nil {
			return err
		}
	}

	return nil
}

// loadConfig reads flag defaults from path, or from remtool.toml if path is
// empty and the file exists. A missing default config is not an error.
func loadConfig(path string) (toolConfig, error) {
	var cfg toolConfig

	explicit := path != ""
	if !explicit {
		path = "remtool.toml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if explicit {
			return cfg, faerr.Wrap(faerr.ModTool, err, "reading config file")
		}
		return cfg, nil
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, faerr.Wrap(faerr.ModTool, err, "decoding config file")
	}

	return cfg, nil
}

// parseWord splits a word flag into symbols: comma-separated if it contains
// commas, one symbol per character otherwise.
func parseWord(w string) []string {
	if w == "" {
		return nil
	}
	if strings.Contains(w, ",") {
		return strings.Split(w, ",")
	}
	return strings.Split(w, "")
}
