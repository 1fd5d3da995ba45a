package automaton

import "errors"

// ErrRepetitionTooLarge is returned by Build when a pattern's estimated
// desugared term count exceeds the configured upper bound, checked before
// regexp/syntax.Simplify runs, guarding against patterns like a long literal
// repeated {1000} times that Simplify would otherwise materialize in full.
// Nested counted repetition such as `(a{500}){500}` never gets this far:
// regexp/syntax.Parse already rejects it with its own "invalid repeat count"
// error.
var ErrRepetitionTooLarge = errors.New("automaton: repetition count exceeds upper bound")

// ErrUnsupportedAnchor is returned when the pattern contains an anchor
// (^, $, \b, \B, or multiline variants) anywhere other than a single leading
// ^ or trailing $, which SPEC_FULL.md §4.2 handles by reformatting rather
// than by modelling anchors as NFA labels.
var ErrUnsupportedAnchor = errors.New("automaton: anchors are only supported at the start or end of the pattern")

// ErrEmptyPattern is returned for the empty-string pattern, which has no
// position to assign any label to and so cannot be compiled.
var ErrEmptyPattern = errors.New("automaton: empty pattern")
