package automaton_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/varspan/varspan/internal/automaton"
	"github.com/varspan/varspan/internal/naiveenum"
)

func TestNaiveEnumFindsEmailLikeMatches(t *testing.T) {
	result, err := automaton.Build(`\w+@\w+`)
	require.NoError(t, err)

	mappings, err := naiveenum.All(result.Automaton, "a@b c@d")
	require.NoError(t, err)

	matches := make(map[string]bool)
	for _, m := range mappings {
		v, ok := m.Value("match")
		require.True(t, ok)
		matches[v] = true
	}
	require.True(t, matches["a@b"])
	require.True(t, matches["c@d"])
}

func TestNaiveEnumAnchoredNoMatch(t *testing.T) {
	result, err := automaton.Build(`^xyz$`)
	require.NoError(t, err)

	mappings, err := naiveenum.All(result.Automaton, "abc")
	require.NoError(t, err)
	require.Empty(t, mappings)
}

func TestNaiveEnumEmptyTextAcceptsEpsilon(t *testing.T) {
	result, err := automaton.Build(`^a*$`)
	require.NoError(t, err)

	mappings, err := naiveenum.All(result.Automaton, "")
	require.NoError(t, err)
	require.Len(t, mappings, 1)
	v, ok := mappings[0].Value("match")
	require.True(t, ok)
	require.Equal(t, "", v)
}
