package invariant

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckPassesSilently(t *testing.T) {
	require.NotPanics(t, func() { Check(true, "unreachable") })
}

func TestCheckPanicsWithFormattedMessage(t *testing.T) {
	require.PanicsWithValue(t, "varspan: internal invariant violated: bad state 3", func() {
		Check(false, "bad state %d", 3)
	})
}
