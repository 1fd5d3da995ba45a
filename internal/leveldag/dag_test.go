package leveldag

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/varspan/varspan/internal/automaton"
)

func TestDagCompileLevelCount(t *testing.T) {
	result, err := automaton.Build(`abc`)
	require.NoError(t, err)

	dag := Compile(result.Automaton, "xabcy")
	require.Equal(t, 5, dag.LastLevel())
}

func TestDagFinalVerticesNonEmptyOnMatch(t *testing.T) {
	result, err := automaton.Build(`^abc$`)
	require.NoError(t, err)

	dag := Compile(result.Automaton, "abc")
	require.NotEmpty(t, dag.FinalVertices())
}

func TestDagFinalVerticesEmptyOnNoMatch(t *testing.T) {
	result, err := automaton.Build(`^xyz$`)
	require.NoError(t, err)

	dag := Compile(result.Automaton, "abc")
	require.Empty(t, dag.FinalVertices())
}

func TestDagEveryLevelReachableFromInitial(t *testing.T) {
	result, err := automaton.Build(`a+`)
	require.NoError(t, err)

	dag := Compile(result.Automaton, "aaaa")
	for l := 0; l <= dag.LastLevel(); l++ {
		require.NotEmpty(t, dag.Level(l), "level %d should have at least one vertex", l)
	}
}
