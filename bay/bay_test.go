// SPDX-License-Identifier: MIT
// Package bay_test contains unit tests for the bay primitives.
package bay_test

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bayreloc/bay"
)

// sample is the three-stack bay used throughout: top blocks are 1, 2 and 4.
func sample() bay.Bay {
	return bay.Bay{{6, 3, 1}, {5, 2}, {4}}
}

func TestLocate(t *testing.T) {
	t.Parallel()
	b := sample()

	stack, pos, err := b.Locate(3)
	require.NoError(t, err)
	require.Equal(t, 0, stack)
	require.Equal(t, 1, pos)
	require.Equal(t, 1, b.Above(stack, pos))

	_, _, err = b.Locate(42)
	require.ErrorIs(t, err, bay.ErrItemNotFound)
}

func TestMinAndEmpty(t *testing.T) {
	t.Parallel()
	b := bay.Bay{{6, 3, 1}, {}, {9, 7}}

	require.Equal(t, 1, b.Min(0))
	require.Equal(t, bay.Infinity, b.Min(1))
	require.Equal(t, 7, b.Min(2))
	require.Equal(t, bay.Infinity, b.Min(7), "invalid index behaves like an empty stack")

	require.False(t, b.IsEmpty(0))
	require.True(t, b.IsEmpty(1))

	top, ok := b.Top(2)
	require.True(t, ok)
	require.Equal(t, 7, top)
	_, ok = b.Top(1)
	require.False(t, ok)
}

func TestCloneDoesNotAlias(t *testing.T) {
	t.Parallel()
	b := sample()
	c := b.Clone()

	require.NoError(t, c.Relocate(0, 2, nil))
	if diff := cmp.Diff(sample(), b); diff != "" {
		t.Fatalf("original mutated through clone (-want +got):\n%s", diff)
	}
	require.Equal(t, [][]int{{6, 3}, {5, 2}, {4, 1}}, [][]int(c))
}

func TestRelocate(t *testing.T) {
	t.Parallel()
	caps := bay.Caps{3, 3, 2}

	tests := []struct {
		name     string
		from, to int
		wantErr  error
	}{
		{"legal", 0, 2, nil},
		{"same stack", 1, 1, bay.ErrSameStack},
		{"out of range", 0, 5, bay.ErrStackIndex},
		{"negative", -1, 0, bay.ErrStackIndex},
		{"full destination", 2, 0, bay.ErrStackFull},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			b := sample()
			before := b.Clone()
			err := b.Relocate(tc.from, tc.to, caps)
			if tc.wantErr != nil {
				require.Truef(t, errors.Is(err, tc.wantErr), "expected errors.Is(%v, %v)", err, tc.wantErr)
				require.True(t, bay.Equal(before, b), "failed relocation must not mutate")
				return
			}
			require.NoError(t, err)
			require.Equal(t, before.Items(), b.Items())
		})
	}

	empty := bay.Bay{{}, {1}}
	require.ErrorIs(t, empty.Relocate(0, 1, nil), bay.ErrEmptyStack)
}

func TestRetrieve(t *testing.T) {
	t.Parallel()
	b := sample()

	require.ErrorIs(t, b.Retrieve(3), bay.ErrNotOnTop)
	require.NoError(t, b.Retrieve(1))
	require.NoError(t, b.Retrieve(2))
	require.NoError(t, b.Retrieve(3))
	require.ErrorIs(t, b.Retrieve(3), bay.ErrItemNotFound)
	require.Equal(t, 3, b.Items())
}

func TestValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, sample().Validate(6))
	require.ErrorIs(t, sample().Validate(7), bay.ErrItemNotFound)
	require.ErrorIs(t, sample().Validate(5), bay.ErrItemOutOfRange)
	require.ErrorIs(t, bay.Bay{{1, 2}, {2}}.Validate(3), bay.ErrDuplicateItem)
	require.ErrorIs(t, bay.Bay{{0, 1}}.Validate(1), bay.ErrItemOutOfRange)
	require.ErrorIs(t, bay.Bay{{}}.Validate(-1), bay.ErrItemOutOfRange)
	require.ErrorIs(t, sample().Validate(math.MaxInt), bay.ErrItemNotFound)
	require.ErrorIs(t, bay.Bay{{1}}.Validate(1<<62), bay.ErrItemNotFound)
}

func TestString(t *testing.T) {
	t.Parallel()
	want := "stack   0 |   6   3   1\nstack   1 |   5   2\nstack   2 |   4\n"
	require.Equal(t, want, sample().String())
	require.Equal(t, "0->2", bay.Move{From: 0, To: 2}.String())
}
