// SPDX-License-Identifier: MIT
package bay_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bayreloc/bay"
)

func TestNewCaps_Constant(t *testing.T) {
	t.Parallel()
	b := sample()

	caps, err := bay.NewCaps(bay.ConstantCap, 4, b)
	require.NoError(t, err)
	require.Equal(t, bay.Caps{4, 4, 4}, caps)
	require.True(t, caps.Eligible(b, 0))

	caps, err = bay.NewCaps(bay.ConstantCap, 3, b)
	require.NoError(t, err)
	require.False(t, caps.Eligible(b, 0), "stack 0 is already at height 3")
	require.False(t, caps.Eligible(b, 9))

	_, err = bay.NewCaps(bay.ConstantCap, 2, b)
	require.ErrorIs(t, err, bay.ErrBadHeight)
}

func TestNewCaps_Variable(t *testing.T) {
	t.Parallel()

	caps, err := bay.NewCaps(bay.VariableCap, 2, sample())
	require.NoError(t, err)
	require.Equal(t, bay.Caps{5, 4, 3}, caps)
}

func TestNewCaps_Invalid(t *testing.T) {
	t.Parallel()

	_, err := bay.NewCaps(bay.ConstantCap, 0, sample())
	require.ErrorIs(t, err, bay.ErrBadHeight)
	_, err = bay.NewCaps(bay.CapMode(7), 3, sample())
	require.ErrorIs(t, err, bay.ErrBadCapMode)
}

func TestParseCapMode(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]bay.CapMode{
		"constant": bay.ConstantCap,
		"1":        bay.ConstantCap,
		"variable": bay.VariableCap,
		"nc":       bay.VariableCap,
	} {
		got, err := bay.ParseCapMode(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
	_, err := bay.ParseCapMode("diagonal")
	require.ErrorIs(t, err, bay.ErrBadCapMode)
	require.Equal(t, "NC", bay.VariableCap.String())
}

func TestLowerBound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		b    bay.Bay
		want int
	}{
		{"sorted", sample(), 0},
		{"single blocker", bay.Bay{{2, 1}, {}}, 0},
		{"inverted", bay.Bay{{1, 2}, {}}, 1},
		{"two stacks", bay.Bay{{1, 3, 2}, {4, 6, 5}}, 4},
		{"empty", bay.Bay{{}, {}}, 0},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.b.LowerBound())
		})
	}
}
