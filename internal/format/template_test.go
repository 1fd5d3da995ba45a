package format

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/varspan/varspan/internal/mapping"
)

func buildMapping(t *testing.T, text string, events ...mapping.Event) *mapping.Mapping {
	t.Helper()
	idx := mapping.NewCodepointIndex(text)
	m, err := mapping.FromMarkers(text, idx, events)
	require.NoError(t, err)
	return m
}

func TestRenderSimplePlaceholder(t *testing.T) {
	v := mapping.NewVariable(0, "user")
	m := buildMapping(t, "alice", mapping.Event{Marker: mapping.NewOpen(v), Pos: 0}, mapping.Event{Marker: mapping.NewClose(v), Pos: 5})

	require.Equal(t, "hello alice!", Render("hello $user!", m))
}

func TestRenderBracedPlaceholder(t *testing.T) {
	v := mapping.NewVariable(0, "user")
	m := buildMapping(t, "alice", mapping.Event{Marker: mapping.NewOpen(v), Pos: 0}, mapping.Event{Marker: mapping.NewClose(v), Pos: 5})

	require.Equal(t, "id=alice.", Render("id=${user}.", m))
}

func TestRenderLiteralDollar(t *testing.T) {
	m := buildMapping(t, "")
	require.Equal(t, "$5", Render("$$5", m))
}

func TestRenderUnboundVariableYieldsEmptyString(t *testing.T) {
	m := buildMapping(t, "")
	require.Equal(t, "[]", Render("[$missing]", m))
}

func TestRenderTrailingDollarPassedThrough(t *testing.T) {
	m := buildMapping(t, "")
	require.Equal(t, "abc$", Render("abc$", m))
}

func TestRenderDollarFollowedByNonNameRune(t *testing.T) {
	m := buildMapping(t, "")
	require.Equal(t, "$5x", Render("$5x", m))
}

func TestRenderUnterminatedBraceFallsBackToLiteralDollar(t *testing.T) {
	m := buildMapping(t, "")
	require.Equal(t, "${oops", Render("${oops", m))
}

func TestDefaultRenderMatchesMappingString(t *testing.T) {
	v := mapping.NewVariable(0, "x")
	m := buildMapping(t, "ab", mapping.Event{Marker: mapping.NewOpen(v), Pos: 0}, mapping.Event{Marker: mapping.NewClose(v), Pos: 2})

	require.Equal(t, m.String(), DefaultRender(m))
}
