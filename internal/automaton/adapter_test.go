package automaton

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildEmptyPattern(t *testing.T) {
	_, err := Build("")
	require.ErrorIs(t, err, ErrEmptyPattern)
}

func TestBuildRejectsStrayAnchor(t *testing.T) {
	_, err := Build(`a^b`)
	require.ErrorIs(t, err, ErrUnsupportedAnchor)
}

func TestBuildRejectsOversizedRepetition(t *testing.T) {
	_, err := Build(`(?:a{1000}){1000}`)
	require.ErrorIs(t, err, ErrRepetitionTooLarge)
}

func TestBuildRegistersNamedVariables(t *testing.T) {
	result, err := Build(`(?P<user>\w+)@(?P<domain>\w+\.\w+)`)
	require.NoError(t, err)
	require.Contains(t, result.Variables, "match")
	require.Contains(t, result.Variables, "user")
	require.Contains(t, result.Variables, "domain")
}

func TestBuildAnchoredStats(t *testing.T) {
	result, err := Build(`^abc$`)
	require.NoError(t, err)
	require.True(t, result.Stats.LeftAnchored)
	require.True(t, result.Stats.RightAnchored)
}

func TestBuildUnanchoredStats(t *testing.T) {
	result, err := Build(`abc`)
	require.NoError(t, err)
	require.False(t, result.Stats.LeftAnchored)
	require.False(t, result.Stats.RightAnchored)
}

func TestAutomatonAdjForChar(t *testing.T) {
	result, err := Build(`^a$`)
	require.NoError(t, err)
	a := result.Automaton

	adj := a.AdjForChar('a')
	require.Len(t, adj, a.NStates)
	// Calling again must return the same cached slice contents.
	adj2 := a.AdjForChar('a')
	require.Equal(t, adj, adj2)
}

func TestAtomMatches(t *testing.T) {
	at := NewAtomRanges([]rune{'a', 'z', '0', '9'})
	require.True(t, at.Matches('m'))
	require.True(t, at.Matches('5'))
	require.False(t, at.Matches('Z'))
}

func TestAtomRangesRoundTrip(t *testing.T) {
	ranges := []rune{'a', 'c', 'x', 'z'}
	at := NewAtomRanges(ranges)
	require.Equal(t, ranges, at.Ranges())
}

func TestLiteralLabelCaseFolding(t *testing.T) {
	result, err := Build(`(?i)a`)
	require.NoError(t, err)
	a := result.Automaton
	adjLower := a.AdjForChar('a')
	adjUpper := a.AdjForChar('A')
	// Some state must have live targets for both cases.
	found := false
	for s := 0; s < a.NStates; s++ {
		if len(adjLower[s]) > 0 && len(adjUpper[s]) > 0 {
			found = true
		}
	}
	require.True(t, found, "case-insensitive literal should match both cases from some state")
}
