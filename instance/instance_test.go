package instance_test

import (
	"bytes"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bayreloc/bay"
	"github.com/katalvlaran/bayreloc/instance"
)

const sample = `3 6
3 6 3 1
2 5 2
1 4
`

func TestRead(t *testing.T) {
	in, err := instance.Read(strings.NewReader(sample))
	require.NoError(t, err)
	assert.Equal(t, 3, in.Stacks())
	assert.Equal(t, 6, in.Items)
	assert.Equal(t, 3, in.Tiers())
	assert.Empty(t, cmp.Diff(bay.Bay{{6, 3, 1}, {5, 2}, {4}}, in.Bay))
}

func TestRead_EmptyStackAndLooseWhitespace(t *testing.T) {
	in, err := instance.Read(strings.NewReader("2 2\n\n 2 1\t2 0"))
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(bay.Bay{{1, 2}, {}}, in.Bay))
}

func TestRead_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
	}{
		{"empty", "", instance.ErrFormat},
		{"no stacks", "0 0", instance.ErrStackCount},
		{"not a number", "2 x", instance.ErrFormat},
		{"negative items", "1 -1", instance.ErrFormat},
		{"truncated stack", "2 3\n2 1 2\n1", instance.ErrFormat},
		{"oversized stack", "1 1\n5 1", instance.ErrFormat},
		{"missing block", "2 3\n1 1\n1 2", bay.ErrItemNotFound},
		{"duplicate block", "2 2\n1 1\n1 1", bay.ErrDuplicateItem},
		{"out of range", "1 2\n2 1 7", bay.ErrItemOutOfRange},
		{"huge item count", "1 4611686018427387904\n0\n", bay.ErrItemNotFound},
		{"huge stack size", "1 4611686018427387904\n4611686018427387904 1\n", instance.ErrFormat},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := instance.Read(strings.NewReader(tc.in))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestReadJSON(t *testing.T) {
	in, err := instance.ReadJSON([]byte(`{"name":"tiny","stacks":[[1,2],[]]}`))
	require.NoError(t, err)
	assert.Equal(t, "tiny", in.Name)
	assert.Equal(t, 2, in.Items)
	assert.Empty(t, cmp.Diff(bay.Bay{{1, 2}, {}}, in.Bay))

	in, err = instance.ReadJSON([]byte(`{"stacks":[[2],[1,3]],"items":3}`))
	require.NoError(t, err)
	assert.Equal(t, 3, in.Items)
}

func TestReadJSON_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
	}{
		{"invalid", `{"stacks":`, instance.ErrFormat},
		{"no stacks field", `{"name":"x"}`, instance.ErrFormat},
		{"empty stacks", `{"stacks":[]}`, instance.ErrStackCount},
		{"flat stacks", `{"stacks":[1,2]}`, instance.ErrFormat},
		{"fraction", `{"stacks":[[1.5]]}`, instance.ErrFormat},
		{"string block", `{"stacks":[["1"]]}`, instance.ErrFormat},
		{"items mismatch", `{"stacks":[[1]],"items":2}`, bay.ErrItemNotFound},
		{"negative items", `{"stacks":[[]],"items":-3}`, instance.ErrFormat},
		{"fractional items", `{"stacks":[[1,2]],"items":2.5}`, instance.ErrFormat},
		{"huge items", `{"stacks":[[1]],"items":4611686018427387904}`, bay.ErrItemNotFound},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := instance.ReadJSON([]byte(tc.in))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestWriteRead_Generated(t *testing.T) {
	gen, err := instance.Generate(4, 3, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	assert.Equal(t, "random_4x3", gen.Name)
	assert.Equal(t, 12, gen.Items)
	require.NoError(t, gen.Bay.Validate(12))

	var buf bytes.Buffer
	require.NoError(t, instance.Write(&buf, gen))
	assert.True(t, strings.HasPrefix(buf.String(), "4 12\n3 "))

	back, err := instance.Read(&buf)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(gen.Bay, back.Bay))
}

func TestGenerate_SeedDeterminism(t *testing.T) {
	a, err := instance.Generate(5, 4, rand.New(rand.NewSource(3)))
	require.NoError(t, err)
	b, err := instance.Generate(5, 4, rand.New(rand.NewSource(3)))
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(a.Bay, b.Bay))

	_, err = instance.Generate(0, 4, rand.New(rand.NewSource(3)))
	require.ErrorIs(t, err, instance.ErrStackCount)
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	txt := filepath.Join(dir, "bay3.dat")
	js := filepath.Join(dir, "bay2.JSON")
	require.NoError(t, os.WriteFile(txt, []byte(sample), 0o600))
	require.NoError(t, os.WriteFile(js, []byte(`{"stacks":[[1,2],[]]}`), 0o600))

	in, err := instance.ReadFile(txt)
	require.NoError(t, err)
	assert.Equal(t, "bay3.dat", in.Name)
	assert.Equal(t, 6, in.Items)

	in, err = instance.ReadFile(js)
	require.NoError(t, err)
	assert.Equal(t, "bay2.JSON", in.Name)
	assert.Equal(t, 2, in.Items)

	_, err = instance.ReadFile(filepath.Join(dir, "missing.dat"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
