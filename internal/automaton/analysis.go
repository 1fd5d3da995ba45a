package automaton

import "regexp/syntax"

// Stats summarizes a compiled pattern for diagnostic logging, adapted from
// the teacher's ComplexityAnalysis (internal/compiler/analysis.go) but
// trimmed to what the level-DAG engine actually cares about: size, and
// whether nested closures make the text-independent enumeration work
// (jump index depth, marker-split branching) likely to be large.
type Stats struct {
	NumVariables   int
	NumStates      int
	NumEdges       int
	HasNestedLoops bool
	LeftAnchored   bool
	RightAnchored  bool
}

// analyze collects Stats for a compiled Result, for use by callers that log
// at verbose level before running the enumerator.
func analyze(re *syntax.Regexp, leftAnchored, rightAnchored bool, a *Automaton, numVars int) Stats {
	return Stats{
		NumVariables:   numVars,
		NumStates:      a.NStates,
		NumEdges:       len(a.edges),
		HasNestedLoops: hasNestedLoops(re, false),
		LeftAnchored:   leftAnchored,
		RightAnchored:  rightAnchored,
	}
}

// hasNestedLoops reports whether a repeating construct (Star/Plus/Quest)
// contains another repeating construct in its body, the shape that drives
// up the number of positions Simplify produces.
func hasNestedLoops(re *syntax.Regexp, inLoop bool) bool {
	isLoop := re.Op == syntax.OpStar || re.Op == syntax.OpPlus || re.Op == syntax.OpQuest || re.Op == syntax.OpRepeat
	if isLoop && inLoop {
		return true
	}
	nextInLoop := inLoop || isLoop
	for _, sub := range re.Sub {
		if hasNestedLoops(sub, nextInLoop) {
			return true
		}
	}
	return false
}
