// Package varspan is the public entry point: compile a pattern once, then
// enumerate every distinct capture-group Mapping it admits on any number of
// texts. Grounded on the teacher repository's pkg/regengo/regengo.go
// (Options/Validate/Compile shape), generalized from "compile regex to Go
// source" to "compile regex to an enumerable variable-NFA".
package varspan

import (
	"fmt"

	"github.com/varspan/varspan/internal/automaton"
	"github.com/varspan/varspan/internal/enumerator"
	"github.com/varspan/varspan/internal/leveldag"
	"github.com/varspan/varspan/internal/logging"
	"github.com/varspan/varspan/internal/mapping"
)

// Mapping, Group and Span are re-exported so callers never need to import
// the internal mapping package directly.
type (
	Mapping = mapping.Mapping
	Group   = mapping.Group
	Span    = mapping.Span
)

// Options configures pattern compilation.
type Options struct {
	// Pattern is the regular expression to compile, with named capture
	// groups for every variable the caller wants bound.
	Pattern string

	// Verbose turns on diagnostic logging of compilation statistics and
	// preprocessing (DAG layer count).
	Verbose bool
}

// Validate checks that Options describes a compilable pattern.
func (o Options) Validate() error {
	if o.Pattern == "" {
		return fmt.Errorf("varspan: pattern cannot be empty")
	}
	return nil
}

// Spanner is a compiled pattern, ready to enumerate mappings over any text.
type Spanner struct {
	result *automaton.Result
	logger *logging.Logger
}

// Compile builds the variable-NFA for opts.Pattern.
func Compile(opts Options) (*Spanner, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	logger := logging.New(opts.Verbose)
	logger.Section("compile")

	result, err := automaton.Build(opts.Pattern)
	if err != nil {
		return nil, fmt.Errorf("varspan: compiling pattern: %w", err)
	}
	logger.Log("pattern %q -> %d states, %d edges, %d variables (nested loops: %v)",
		opts.Pattern, result.Stats.NumStates, result.Stats.NumEdges, result.Stats.NumVariables, result.Stats.HasNestedLoops)

	return &Spanner{result: result, logger: logger}, nil
}

// Variables returns the names of every named capture group the pattern
// declares, including the implicit whole-match group "match".
func (s *Spanner) Variables() []string {
	names := make([]string, 0, len(s.result.Variables))
	for name := range s.result.Variables {
		names = append(names, name)
	}
	return names
}

// Iterator produces successive Mappings for one (pattern, text) pair.
type Iterator struct {
	enum *enumerator.Enumerator
}

// Next returns the next Mapping, or ok=false once exhausted.
func (it *Iterator) Next() (*Mapping, bool, error) {
	return it.enum.Next()
}

// All drains the Iterator into a slice. Convenient for small texts; for
// large or adversarial inputs prefer calling Next() directly so callers
// control how many mappings they materialize.
func (it *Iterator) All() ([]*Mapping, error) {
	var out []*Mapping
	for {
		m, ok, err := it.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, m)
	}
}

// Enumerate preprocesses text (building the level-DAG and jump index) and
// returns an Iterator over every Mapping the pattern admits on it.
func (s *Spanner) Enumerate(text string) *Iterator {
	s.logger.Section("preprocess")
	dag := leveldag.Compile(s.result.Automaton, text)
	s.logger.Log("text length %d code points -> %d DAG layers", dag.Index.Len(), dag.LastLevel()+1)

	s.logger.Section("enumerate")
	return &Iterator{enum: enumerator.New(dag)}
}
