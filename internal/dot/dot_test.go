package dot

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/varspan/varspan/internal/automaton"
)

func TestWriteProducesValidDigraph(t *testing.T) {
	result, err := automaton.Build(`(?P<x>a)b`)
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, Write(&sb, result))

	out := sb.String()
	require.True(t, strings.HasPrefix(out, "digraph automaton {"))
	require.True(t, strings.HasSuffix(out, "}\n"))
}

func TestWriteMarksInitialStateWithDoublePeripheries(t *testing.T) {
	result, err := automaton.Build(`a`)
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, Write(&sb, result))
	require.Contains(t, sb.String(), "peripheries=2")
}

func TestWriteRendersMarkerEdgesDashed(t *testing.T) {
	result, err := automaton.Build(`(?P<x>a)`)
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, Write(&sb, result))
	require.Contains(t, sb.String(), "style=dashed")
}

func TestWriteRendersFinalStateAsDoubleCircle(t *testing.T) {
	result, err := automaton.Build(`a`)
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, Write(&sb, result))
	require.Contains(t, sb.String(), "shape=doublecircle")
}

func TestMarkerTextOpenAndClose(t *testing.T) {
	result, err := automaton.Build(`(?P<name>a)`)
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, Write(&sb, result))
	out := sb.String()
	require.Contains(t, out, "(name")
	require.Contains(t, out, "name)")
}

func TestWriteFileCreatesReadableFile(t *testing.T) {
	result, err := automaton.Build(`abc`)
	require.NoError(t, err)

	path := t.TempDir() + "/automaton.dot"
	require.NoError(t, WriteFile(path, result))
}
