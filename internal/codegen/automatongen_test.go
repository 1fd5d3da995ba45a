package codegen

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/varspan/varspan/internal/automaton"
)

func TestWriteAutomatonFileProducesExpectedShape(t *testing.T) {
	result, err := automaton.Build(`(?P<x>a)b`)
	require.NoError(t, err)

	path := t.TempDir() + "/generated.go"
	require.NoError(t, WriteAutomatonFile(path, "gen", `(?P<x>a)b`, result))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	src := string(data)

	require.Contains(t, src, "package gen")
	require.Contains(t, src, "DO NOT EDIT")
	require.Contains(t, src, BuildFuncName+"()")
	require.Contains(t, src, "FromTable(")
	require.Contains(t, src, `"(?P<x>a)b"`)
	require.Contains(t, src, "NewVariable(")
	require.Contains(t, src, `"x"`)
}

func TestWriteAutomatonFileAlwaysDeclaresImplicitMatchVariable(t *testing.T) {
	result, err := automaton.Build(`abc`)
	require.NoError(t, err)
	require.Len(t, result.Variables, 1) // only the implicit "match" group

	path := t.TempDir() + "/generated.go"
	require.NoError(t, WriteAutomatonFile(path, "gen", `abc`, result))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	src := string(data)
	require.Contains(t, src, "NewVariable(")
	require.Contains(t, src, `"match"`)
}
