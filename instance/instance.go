package instance

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"

	"github.com/katalvlaran/bayreloc/bay"
)

var (
	// ErrFormat indicates a malformed instance document.
	ErrFormat = errors.New("instance: malformed input")

	// ErrStackCount indicates a stack count below one.
	ErrStackCount = errors.New("instance: at least one stack is required")
)

// Instance is a loaded bay together with its block count.
type Instance struct {
	Name  string
	Items int
	Bay   bay.Bay
}

// Stacks returns the number of stacks.
func (in Instance) Stacks() int { return len(in.Bay) }

// Tiers returns the height of the tallest initial stack.
func (in Instance) Tiers() int {
	t := 0
	for i := range in.Bay {
		if h := in.Bay.Height(i); h > t {
			t = h
		}
	}
	return t
}

// tokenReader yields integers from a whitespace-separated stream.
type tokenReader struct {
	sc  *bufio.Scanner
	pos int
}

func newTokenReader(r io.Reader) *tokenReader {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &tokenReader{sc: sc}
}

func (t *tokenReader) next(what string) (int, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return 0, errors.Wrap(err, "instance: read")
		}
		return 0, errors.Wrapf(ErrFormat, "token %d (%s): unexpected end of input", t.pos, what)
	}
	t.pos++
	v, err := strconv.Atoi(t.sc.Text())
	if err != nil {
		return 0, errors.Wrapf(ErrFormat, "token %d (%s): %q is not an integer", t.pos, what, t.sc.Text())
	}
	return v, nil
}

// Read parses the text format from r.
func Read(r io.Reader) (Instance, error) {
	t := newTokenReader(r)

	m, err := t.next("stack count")
	if err != nil {
		return Instance{}, err
	}
	if m < 1 {
		return Instance{}, errors.Wrapf(ErrStackCount, "got %d", m)
	}
	nels, err := t.next("item count")
	if err != nil {
		return Instance{}, err
	}
	if nels < 0 {
		return Instance{}, errors.Wrapf(ErrFormat, "negative item count %d", nels)
	}

	b := make(bay.Bay, m)
	for i := 0; i < m; i++ {
		count, err := t.next(fmt.Sprintf("stack %d size", i))
		if err != nil {
			return Instance{}, err
		}
		if count < 0 || count > nels {
			return Instance{}, errors.Wrapf(ErrFormat, "stack %d: size %d out of [0,%d]", i, count, nels)
		}
		b[i] = []int{}
		for j := 0; j < count; j++ {
			v, err := t.next(fmt.Sprintf("stack %d tier %d", i, j))
			if err != nil {
				return Instance{}, err
			}
			b[i] = append(b[i], v)
		}
	}

	return finish(Instance{Items: nels, Bay: b})
}

// ReadJSON parses the JSON form.
func ReadJSON(data []byte) (Instance, error) {
	if !gjson.ValidBytes(data) {
		return Instance{}, errors.Wrap(ErrFormat, "invalid JSON")
	}
	doc := gjson.ParseBytes(data)

	stacks := doc.Get("stacks")
	if !stacks.IsArray() {
		return Instance{}, errors.Wrap(ErrFormat, `"stacks" must be an array of arrays`)
	}
	arr := stacks.Array()
	if len(arr) == 0 {
		return Instance{}, errors.Wrap(ErrStackCount, `"stacks" is empty`)
	}

	var (
		b     = make(bay.Bay, len(arr))
		total int
	)
	for i, s := range arr {
		if !s.IsArray() {
			return Instance{}, errors.Wrapf(ErrFormat, "stack %d is not an array", i)
		}
		items := s.Array()
		b[i] = make([]int, 0, len(items))
		for j, v := range items {
			if v.Type != gjson.Number || v.Num != float64(int(v.Num)) {
				return Instance{}, errors.Wrapf(ErrFormat, "stack %d tier %d: %s is not an integer", i, j, v.Raw)
			}
			b[i] = append(b[i], int(v.Int()))
		}
		total += len(items)
	}

	nels := total
	if n := doc.Get("items"); n.Exists() {
		if n.Type != gjson.Number || n.Num != float64(int(n.Num)) {
			return Instance{}, errors.Wrapf(ErrFormat, `"items": %s is not an integer`, n.Raw)
		}
		nels = int(n.Int())
	}

	return finish(Instance{Name: doc.Get("name").String(), Items: nels, Bay: b})
}

// ReadFile loads path, choosing the JSON reader for a .json extension. The
// instance is named after the file's base name unless the document names it.
func ReadFile(path string) (Instance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Instance{}, errors.Wrapf(err, "instance: open %s", path)
	}

	var in Instance
	if strings.EqualFold(filepath.Ext(path), ".json") {
		in, err = ReadJSON(data)
	} else {
		in, err = Read(bytes.NewReader(data))
	}
	if err != nil {
		return Instance{}, errors.WithMessage(err, path)
	}
	if in.Name == "" {
		in.Name = filepath.Base(path)
	}
	return in, nil
}

// Write emits in the text format.
func Write(w io.Writer, in Instance) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", len(in.Bay), in.Items)
	for _, s := range in.Bay {
		bw.WriteString(strconv.Itoa(len(s)))
		for _, v := range s {
			bw.WriteByte(' ')
			bw.WriteString(strconv.Itoa(v))
		}
		bw.WriteByte('\n')
	}
	return errors.Wrap(bw.Flush(), "instance: write")
}

// Generate returns a full bay of stacks×tiers blocks placed uniformly at random.
func Generate(stacks, tiers int, rng *rand.Rand) (Instance, error) {
	if stacks < 1 {
		return Instance{}, errors.Wrapf(ErrStackCount, "got %d", stacks)
	}
	if tiers < 0 {
		return Instance{}, errors.Wrapf(ErrFormat, "negative tier count %d", tiers)
	}

	n := stacks * tiers
	perm := rng.Perm(n)
	b := make(bay.Bay, stacks)
	for i := range b {
		b[i] = make([]int, tiers)
		for j := range b[i] {
			b[i][j] = perm[i*tiers+j] + 1
		}
	}

	return Instance{
		Name:  fmt.Sprintf("random_%dx%d", stacks, tiers),
		Items: n,
		Bay:   b,
	}, nil
}

func finish(in Instance) (Instance, error) {
	if in.Items < 0 {
		return Instance{}, errors.Wrapf(ErrFormat, "negative item count %d", in.Items)
	}
	if err := in.Bay.Validate(in.Items); err != nil {
		return Instance{}, errors.Wrap(err, "instance")
	}
	return in, nil
}
