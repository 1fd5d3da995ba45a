package automaton

import (
	"fmt"
	"regexp/syntax"
	"strings"
	"unicode"

	"github.com/varspan/varspan/internal/mapping"
)

// maxDesugaredTerms bounds the number of Glushkov positions a pattern may
// expand to once bounded repetition is unrolled. A pattern estimated to
// exceed it is rejected before regexp/syntax.Simplify ever runs, rather than
// discovered by way of an out-of-memory automaton.
const maxDesugaredTerms = 100000

// Result is the outcome of adapting a regular expression into a
// variable-NFA: the automaton itself plus a name→Variable lookup for the
// named capture groups it recognized, including the implicit whole-match
// group described below.
type Result struct {
	Automaton *Automaton
	Variables map[string]*mapping.Variable
	Stats     Stats
}

// Build compiles pattern into a variable-NFA per SPEC_FULL.md §4.1/§4.2.
//
// The pattern is first reformatted: unless it is left-anchored with a
// leading ^, it is prefixed with a "match anything" closure so the
// automaton can start matching at any text position; the pattern itself
// (minus any leading ^ / trailing $, which become implicit) is wrapped in a
// capturing group named "match" representing the whole matched span; unless
// the pattern is right-anchored with a trailing $, it is suffixed with the
// same "match anything" closure. The result is parsed with regexp/syntax,
// simplified (which desugars bounded repetition into concatenation and
// nested optionals, duplicating any capture groups inside), and walked to
// build the Glushkov factors and the Marker ε-edges for every named group.
func Build(pattern string) (*Result, error) {
	if pattern == "" {
		return nil, ErrEmptyPattern
	}

	body, leftAnchored, rightAnchored := stripAnchors(pattern)

	preflight, err := syntax.Parse(body, syntax.Perl)
	if err != nil {
		return nil, fmt.Errorf("automaton: parsing pattern: %w", err)
	}
	if size, overflow := estimateSize(preflight, maxDesugaredTerms); overflow || size > maxDesugaredTerms {
		return nil, ErrRepetitionTooLarge
	}

	wrapped := "(?P<match>" + body + ")"
	if !leftAnchored {
		wrapped = "(?s:.)*" + wrapped
	}
	if !rightAnchored {
		wrapped = wrapped + "(?s:.)*"
	}

	re, err := syntax.Parse(wrapped, syntax.Perl)
	if err != nil {
		return nil, fmt.Errorf("automaton: parsing reformatted pattern: %w", err)
	}
	re = re.Simplify()

	if err := rejectStrayAnchors(re); err != nil {
		return nil, err
	}

	b := &builder{vars: make(map[string]*mapping.Variable)}
	lang := b.build(re)
	a := buildAutomaton(lang)

	return &Result{
		Automaton: a,
		Variables: b.vars,
		Stats:     analyze(re, leftAnchored, rightAnchored, a, len(b.vars)),
	}, nil
}

func stripAnchors(pattern string) (body string, left, right bool) {
	body = pattern
	if strings.HasPrefix(body, "^") {
		left = true
		body = body[1:]
	}
	if len(body) > 0 && strings.HasSuffix(body, "$") && !strings.HasSuffix(body, `\$`) {
		right = true
		body = body[:len(body)-1]
	}
	return body, left, right
}

func rejectStrayAnchors(re *syntax.Regexp) error {
	switch re.Op {
	case syntax.OpBeginLine, syntax.OpEndLine, syntax.OpBeginText, syntax.OpEndText,
		syntax.OpWordBoundary, syntax.OpNoWordBoundary:
		return ErrUnsupportedAnchor
	}
	for _, sub := range re.Sub {
		if err := rejectStrayAnchors(sub); err != nil {
			return err
		}
	}
	return nil
}

// estimateSize approximates the number of Glushkov positions re would
// desugar to, short-circuiting once it exceeds limit so a deeply nested
// pattern (e.g. repetition raised to a power) cannot force a slow exact
// count.
func estimateSize(re *syntax.Regexp, limit int) (size int, overflow bool) {
	switch re.Op {
	case syntax.OpLiteral:
		n := len(re.Rune)
		if n == 0 {
			n = 1
		}
		return n, n > limit
	case syntax.OpCharClass, syntax.OpAnyChar, syntax.OpAnyCharNotNL:
		return 1, false
	case syntax.OpCapture:
		return estimateSize(re.Sub[0], limit)
	case syntax.OpStar, syntax.OpPlus, syntax.OpQuest:
		n, over := estimateSize(re.Sub[0], limit)
		return n, over
	case syntax.OpConcat, syntax.OpAlternate:
		total := 0
		for _, sub := range re.Sub {
			n, over := estimateSize(sub, limit)
			if over {
				return total, true
			}
			total += n
			if total > limit {
				return total, true
			}
		}
		return total, false
	case syntax.OpRepeat:
		n, over := estimateSize(re.Sub[0], limit)
		if over {
			return n, true
		}
		count := re.Max
		if count < 0 {
			count = re.Min + 1
		}
		if count == 0 {
			count = 1
		}
		total := n * count
		return total, total > limit
	default:
		return 1, false
	}
}

type builder struct {
	vars     map[string]*mapping.Variable
	nextID   int
	nextVarN int
}

func (b *builder) newVariable(name string) *mapping.Variable {
	v := mapping.NewVariable(b.nextVarN, name)
	b.nextVarN++
	b.vars[name] = v
	return v
}

func (b *builder) build(re *syntax.Regexp) localLang {
	switch re.Op {
	case syntax.OpNoMatch:
		return emptyLang()

	case syntax.OpEmptyMatch:
		return epsilonLang()

	case syntax.OpLiteral:
		lang := epsilonLang()
		for _, r := range re.Rune {
			lang = concatLang(lang, atomLang(literalLabel(r, re.Flags&syntax.FoldCase != 0)))
		}
		return lang

	case syntax.OpCharClass:
		return atomLang(atomLabel(NewAtomRanges(re.Rune)))

	case syntax.OpAnyCharNotNL:
		return atomLang(atomLabel(NewAtomRanges([]rune{0, '\n' - 1, '\n' + 1, unicode.MaxRune})))

	case syntax.OpAnyChar:
		return atomLang(atomLabel(NewAtomRanges([]rune{0, unicode.MaxRune})))

	case syntax.OpCapture:
		inner := b.build(re.Sub[0])
		if re.Name == "" {
			return inner
		}
		v := b.newVariable(re.Name)
		open := atomLangMarker(mapping.NewOpen(v))
		close := atomLangMarker(mapping.NewClose(v))
		return concatLang(concatLang(open, inner), close)

	case syntax.OpStar:
		return closureLang(optionalLang(b.build(re.Sub[0])))

	case syntax.OpPlus:
		return closureLang(b.build(re.Sub[0]))

	case syntax.OpQuest:
		return optionalLang(b.build(re.Sub[0]))

	case syntax.OpConcat:
		lang := epsilonLang()
		for _, sub := range re.Sub {
			lang = concatLang(lang, b.build(sub))
		}
		return lang

	case syntax.OpAlternate:
		lang := emptyLang()
		for i, sub := range re.Sub {
			if i == 0 {
				lang = b.build(sub)
				continue
			}
			lang = altLang(lang, b.build(sub))
		}
		return lang

	default:
		// Repetition should never survive Simplify; anchors and word
		// boundaries were rejected by rejectStrayAnchors before we get
		// here.
		panic(fmt.Sprintf("automaton: unexpected op %v after simplification", re.Op))
	}
}

func literalLabel(r rune, foldCase bool) Label {
	if !foldCase {
		return atomLabel(NewAtomLiteral(r))
	}
	runes := []rune{r, r}
	for f := unicode.SimpleFold(r); f != r; f = unicode.SimpleFold(f) {
		runes = append(runes, f, f)
	}
	return atomLabel(NewAtomRanges(runes))
}

func atomLangMarker(m mapping.Marker) localLang {
	return atomLang(markerLabel(m))
}
