package varspan_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/varspan/varspan/internal/automaton"
	"github.com/varspan/varspan/internal/naiveenum"
	"github.com/varspan/varspan/pkg/varspan"
)

// enumerateKeys drains a compiled Spanner's output into a sorted slice of
// Mapping.Key values, for order-independent comparison.
func enumerateKeys(t *testing.T, pattern, text string) []string {
	t.Helper()
	spanner, err := varspan.Compile(varspan.Options{Pattern: pattern})
	require.NoError(t, err)

	it := spanner.Enumerate(text)
	mappings, err := it.All()
	require.NoError(t, err)

	return sortedKeys(mappings)
}

func naiveKeys(t *testing.T, pattern, text string) []string {
	t.Helper()
	result, err := automaton.Build(pattern)
	require.NoError(t, err)
	mappings, err := naiveenum.All(result.Automaton, text)
	require.NoError(t, err)
	return sortedKeys(mappings)
}

func sortedKeys(mappings []*varspan.Mapping) []string {
	keys := make([]string, 0, len(mappings))
	for _, m := range mappings {
		keys = append(keys, m.Key())
	}
	sort.Strings(keys)
	return keys
}

// requireMatchesOracle is the round-trip/uniqueness/soundness/completeness
// property of SPEC_FULL.md §8: the engine's output set must equal the naive
// oracle's, with no duplicates on either side.
func requireMatchesOracle(t *testing.T, pattern, text string) []string {
	t.Helper()
	engine := enumerateKeys(t, pattern, text)
	oracle := naiveKeys(t, pattern, text)
	require.Equal(t, oracle, engine, "engine output must equal naive oracle for pattern %q on %q", pattern, text)
	requireNoDuplicates(t, engine)
	return engine
}

func requireNoDuplicates(t *testing.T, keys []string) {
	t.Helper()
	for i := 1; i < len(keys); i++ {
		require.NotEqual(t, keys[i-1], keys[i], "duplicate mapping emitted")
	}
}

func TestScenario1TwoEmailLikeMatches(t *testing.T) {
	spanner, err := varspan.Compile(varspan.Options{Pattern: `\w+@\w+`})
	require.NoError(t, err)

	it := spanner.Enumerate("a@b c@d")
	mappings, err := it.All()
	require.NoError(t, err)

	matches := make(map[string]bool)
	for _, m := range mappings {
		v, ok := m.Value("match")
		require.True(t, ok)
		matches[v] = true
	}
	require.Len(t, matches, 2)
	require.True(t, matches["a@b"])
	require.True(t, matches["c@d"])
	requireMatchesOracle(t, `\w+@\w+`, "a@b c@d")
}

func TestScenario2SingleBlockA(t *testing.T) {
	pattern := `^(.*[^a])?(?P<block_a>a+)([^a].*)?$`
	keys := requireMatchesOracle(t, pattern, "bbbabb")

	spanner, err := varspan.Compile(varspan.Options{Pattern: pattern})
	require.NoError(t, err)
	mappings, err := spanner.Enumerate("bbbabb").All()
	require.NoError(t, err)

	blocks := make(map[string]bool)
	for _, m := range mappings {
		v, ok := m.Value("block_a")
		require.True(t, ok)
		blocks[v] = true
	}
	require.Equal(t, map[string]bool{"a": true}, blocks)
	require.NotEmpty(t, keys)
}

func TestScenario3ThreeBlockAVariants(t *testing.T) {
	pattern := `^(.*[^a])?(?P<block_a>a+)([^a].*)?$`
	text := "aaaabbaaababbbb"
	requireMatchesOracle(t, pattern, text)

	spanner, err := varspan.Compile(varspan.Options{Pattern: pattern})
	require.NoError(t, err)
	mappings, err := spanner.Enumerate(text).All()
	require.NoError(t, err)

	blocks := make(map[string]bool)
	for _, m := range mappings {
		v, ok := m.Value("block_a")
		require.True(t, ok)
		blocks[v] = true
	}
	require.Equal(t, map[string]bool{"aaaa": true, "aaa": true, "a": true}, blocks)
}

func TestScenario4LoginServerCapture(t *testing.T) {
	pattern := `(?P<login>\w+(\.\w+)*)@(?P<server>\w+\.\w+)`
	text := "aaaa@aaa.aa"
	requireMatchesOracle(t, pattern, text)

	spanner, err := varspan.Compile(varspan.Options{Pattern: pattern})
	require.NoError(t, err)
	mappings, err := spanner.Enumerate(text).All()
	require.NoError(t, err)
	require.Len(t, mappings, 1)

	login, ok := mappings[0].Value("login")
	require.True(t, ok)
	require.Equal(t, "aaaa", login)

	server, ok := mappings[0].Value("server")
	require.True(t, ok)
	require.Equal(t, "aaa.aa", server)
}

func TestScenario5DotStarAllSubstrings(t *testing.T) {
	keys := requireMatchesOracle(t, `.*`, "abc")
	require.Len(t, keys, 6) // (3+1 choose 2) = 6 contiguous substrings, including empty ones
}

func TestScenario6BoundedRepetitionBeforeLiteral(t *testing.T) {
	pattern := `(?P<x>a{0,3})b`
	text := "aaab"
	requireMatchesOracle(t, pattern, text)
}

func TestBoundaryEmptyTextAcceptingEpsilon(t *testing.T) {
	keys := requireMatchesOracle(t, `^a*$`, "")
	require.Len(t, keys, 1)
}

func TestBoundaryDotStarMappingCount(t *testing.T) {
	// |text|=4 -> (4+1 choose 2) = 10 contiguous (possibly empty) substrings.
	keys := requireMatchesOracle(t, `.*`, "abcd")
	require.Len(t, keys, 10)
}

func TestBoundaryAnchoredNoMatch(t *testing.T) {
	keys := requireMatchesOracle(t, `^xyz$`, "abc")
	require.Empty(t, keys)
}

func TestBoundaryMultiByteText(t *testing.T) {
	keys := requireMatchesOracle(t, `(?P<word>\pL+)`, "café noël")
	require.NotEmpty(t, keys)

	spanner, err := varspan.Compile(varspan.Options{Pattern: `(?P<word>\pL+)`})
	require.NoError(t, err)
	mappings, err := spanner.Enumerate("café noël").All()
	require.NoError(t, err)

	found := false
	for _, m := range mappings {
		if v, ok := m.Value("word"); ok && v == "café" {
			found = true
			span, _ := m.Get("word")
			require.Equal(t, 0, span.Start)
			require.Equal(t, len("café"), span.End) // byte offset, "é" is 2 bytes
		}
	}
	require.True(t, found)
}

func TestDeterminismAcrossRuns(t *testing.T) {
	pattern := `(?P<year>\d{4})-(?P<month>\d{2})-(?P<day>\d{2})`
	text := "Events: 2024-01-15, 2024-06-20, and 2024-12-25 are holidays"

	first := enumerateKeys(t, pattern, text)
	second := enumerateKeys(t, pattern, text)
	require.Equal(t, first, second)
}

func TestVariablesIncludesImplicitMatch(t *testing.T) {
	spanner, err := varspan.Compile(varspan.Options{Pattern: `(?P<user>\w+)@(?P<domain>\w+\.\w+)`})
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"match", "user", "domain"}, spanner.Variables())
}

func TestCompileValidatesEmptyPattern(t *testing.T) {
	_, err := varspan.Compile(varspan.Options{})
	require.Error(t, err)
}
