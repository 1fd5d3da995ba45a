// Command varspan enumerates every capture-group mapping a regular
// expression with named groups admits on an input text. Flag handling
// follows the style of the pack's projectdiscovery CLI tools
// (projectdiscovery-alterx's internal/runner.ParseFlags).
package main

import (
	"fmt"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"

	"github.com/varspan/varspan/internal/automaton"
	"github.com/varspan/varspan/internal/codegen"
	"github.com/varspan/varspan/internal/dot"
	"github.com/varspan/varspan/internal/format"
	"github.com/varspan/varspan/internal/naiveenum"
	"github.com/varspan/varspan/pkg/varspan"
)

type options struct {
	pattern       string
	text          string
	verbose       bool
	naive         bool
	limit         int
	outputFormat  string
	emitAutomaton string
	emitDot       string
}

func parseFlags() *options {
	opts := &options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Enumerate every capture-group mapping a regex admits on a text.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&opts.pattern, "regexp", "e", "", "regular expression with named capture groups"),
		flagSet.StringVarP(&opts.text, "text", "t", "", "text to enumerate mappings against"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.BoolVarP(&opts.verbose, "verbose", "v", false, "display compilation and preprocessing diagnostics"),
		flagSet.StringVar(&opts.outputFormat, "format", "", `output template substituting "$name" with each variable's matched text`),
		flagSet.IntVarP(&opts.limit, "limit", "c", 0, "maximum number of mappings to print (default: unlimited)"),
	)

	flagSet.CreateGroup("debug", "Debug",
		flagSet.BoolVarP(&opts.naive, "naive", "n", false, "use the brute-force reference enumerator instead of the jump-index engine"),
		flagSet.StringVar(&opts.emitAutomaton, "emit-automaton", "", "write the compiled variable-NFA as generated Go source to this file"),
		flagSet.StringVar(&opts.emitDot, "dot", "", "write the compiled variable-NFA as a Graphviz dot file"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("could not parse flags: %s", err)
	}
	return opts
}

func main() {
	opts := parseFlags()
	if opts.pattern == "" {
		gologger.Fatal().Msg("a pattern is required (-e/--regexp)")
	}

	result, err := automaton.Build(opts.pattern)
	if err != nil {
		gologger.Fatal().Msgf("compiling pattern: %s", err)
	}

	if opts.emitAutomaton != "" {
		if err := codegen.WriteAutomatonFile(opts.emitAutomaton, "main", opts.pattern, result); err != nil {
			gologger.Fatal().Msgf("emitting automaton source: %s", err)
		}
	}
	if opts.emitDot != "" {
		if err := dot.WriteFile(opts.emitDot, result); err != nil {
			gologger.Fatal().Msgf("emitting dot file: %s", err)
		}
	}

	if opts.text == "" {
		return
	}

	var printed int
	emit := func(m *varspan.Mapping) bool {
		if opts.limit > 0 && printed >= opts.limit {
			return false
		}
		printed++
		if opts.outputFormat != "" {
			fmt.Println(format.Render(opts.outputFormat, m))
		} else {
			fmt.Println(format.DefaultRender(m))
		}
		return true
	}

	if opts.naive {
		enum := naiveenum.New(result.Automaton, opts.text)
		for {
			m, ok, err := enum.Next()
			if err != nil {
				gologger.Fatal().Msgf("enumeration error: %s", err)
			}
			if !ok || !emit(m) {
				break
			}
		}
		return
	}

	spanner, err := varspan.Compile(varspan.Options{Pattern: opts.pattern, Verbose: opts.verbose})
	if err != nil {
		gologger.Fatal().Msgf("compiling pattern: %s", err)
	}
	it := spanner.Enumerate(opts.text)
	for {
		m, ok, err := it.Next()
		if err != nil {
			gologger.Fatal().Msgf("enumeration error: %s", err)
		}
		if !ok || !emit(m) {
			break
		}
	}
}
