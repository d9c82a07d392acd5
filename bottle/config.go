package bottle

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/zeebo/xxh3"
)

// Config is an immutable water-sort configuration: an ordered sequence of
// bottles. Bottle identity is positional, so two configurations are equal only
// when every bottle matches at the same index.
//
// A Config is safe to share between goroutines; every transition builds a new
// value and never touches the receiver.
type Config struct {
	bottles []Bottle
	hash    uint64
}

// New validates and deep-copies bottles into a Config.
//
// Validation (in order):
//  1. options must be valid (ErrOptionViolation).
//  2. at least one bottle.
//  3. bottle count matches WithBottleCount, if set.
//  4. no bottle holds more than Capacity units.
//  5. no color token is empty.
//  6. with WithStrictCounts, each color occurs exactly Capacity times.
//
// Failures 2–6 wrap ErrInvalidConfiguration.
func New(bottles [][]Color, opts ...Option) (Config, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Config{}, o.err
	}

	if len(bottles) == 0 {
		return Config{}, fmt.Errorf("%w: no bottles", ErrInvalidConfiguration)
	}
	if o.BottleCount > 0 && len(bottles) != o.BottleCount {
		return Config{}, fmt.Errorf("%w: got %d bottles, want %d",
			ErrInvalidConfiguration, len(bottles), o.BottleCount)
	}

	cp := make([]Bottle, len(bottles))
	for i, b := range bottles {
		if len(b) > Capacity {
			return Config{}, fmt.Errorf("%w: bottle %d holds %d units (capacity %d)",
				ErrInvalidConfiguration, i+1, len(b), Capacity)
		}
		for k, c := range b {
			if c == "" {
				return Config{}, fmt.Errorf("%w: bottle %d has an empty color at position %d",
					ErrInvalidConfiguration, i+1, k+1)
			}
		}
		cp[i] = append(Bottle(nil), b...)
	}

	cfg := newConfig(cp)
	if o.StrictCounts {
		for c, n := range cfg.ColorCounts() {
			if n != Capacity {
				return Config{}, fmt.Errorf("%w: color %q occurs %d times, want %d",
					ErrInvalidConfiguration, c, n, Capacity)
			}
		}
	}

	return cfg, nil
}

// FromStrings is New for plain string tokens, the shape used by puzzle files
// and the watersort.Play contract.
func FromStrings(bottles [][]string, opts ...Option) (Config, error) {
	conv := make([][]Color, len(bottles))
	for i, b := range bottles {
		conv[i] = make([]Color, len(b))
		for k, s := range b {
			conv[i][k] = Color(s)
		}
	}

	return New(conv, opts...)
}

// MustNew is New that panics on error. Intended for tests and fixtures.
func MustNew(bottles ...[]Color) Config {
	cfg, err := New(bottles)
	if err != nil {
		panic(err)
	}

	return cfg
}

// newConfig takes ownership of bottles and computes the hash.
func newConfig(bottles []Bottle) Config {
	return Config{bottles: bottles, hash: hashBottles(bottles)}
}

// hashBottles hashes a length-prefixed encoding so that ["ab"] and ["a","b"]
// never collide by construction.
func hashBottles(bottles []Bottle) uint64 {
	buf := make([]byte, 0, 64)
	buf = binary.AppendUvarint(buf, uint64(len(bottles)))
	for _, b := range bottles {
		buf = binary.AppendUvarint(buf, uint64(len(b)))
		for _, c := range b {
			buf = binary.AppendUvarint(buf, uint64(len(c)))
			buf = append(buf, c...)
		}
	}

	return xxh3.Hash(buf)
}

// Len returns the number of bottles.
func (c Config) Len() int { return len(c.bottles) }

// Hash returns the precomputed xxh3 fingerprint of the configuration.
func (c Config) Hash() uint64 { return c.hash }

// Equal reports positional, element-wise equality.
func (c Config) Equal(other Config) bool {
	if c.hash != other.hash || len(c.bottles) != len(other.bottles) {
		return false
	}
	for i := range c.bottles {
		a, b := c.bottles[i], other.bottles[i]
		if len(a) != len(b) {
			return false
		}
		for k := range a {
			if a[k] != b[k] {
				return false
			}
		}
	}

	return true
}

// Bottle returns a copy of bottle i (0-based).
func (c Config) Bottle(i int) Bottle {
	return append(Bottle(nil), c.bottles[i]...)
}

// Bottles returns a deep copy of all bottles.
func (c Config) Bottles() [][]Color {
	out := make([][]Color, len(c.bottles))
	for i, b := range c.bottles {
		out[i] = append([]Color(nil), b...)
	}

	return out
}

// Top returns the top color of bottle i.
func (c Config) Top(i int) (Color, bool) { return c.bottles[i].Top() }

// Level returns the number of units in bottle i.
func (c Config) Level(i int) int { return len(c.bottles[i]) }

// Free returns the remaining capacity of bottle i.
func (c Config) Free(i int) int { return Capacity - len(c.bottles[i]) }

// IsEmpty reports whether bottle i holds nothing.
func (c Config) IsEmpty(i int) bool { return len(c.bottles[i]) == 0 }

// IsUniform reports whether bottle i is non-empty and single-colored.
func (c Config) IsUniform(i int) bool { return c.bottles[i].Uniform() }

// IsSolved reports whether bottle i is full and single-colored.
func (c Config) IsSolved(i int) bool { return c.bottles[i].Solved() }

// ColorCounts returns how many units of each color the configuration holds.
func (c Config) ColorCounts() map[Color]int {
	counts := make(map[Color]int)
	for _, b := range c.bottles {
		for _, col := range b {
			counts[col]++
		}
	}

	return counts
}

// CanPour reports whether pouring src into dst (0-based) moves at least one
// unit: src non-empty, dst has room, and dst is empty or tops match.
func (c Config) CanPour(src, dst int) bool {
	if src == dst {
		return false
	}
	top, ok := c.Top(src)
	if !ok || c.Free(dst) == 0 {
		return false
	}
	dtop, dok := c.Top(dst)

	return !dok || dtop == top
}

// Pour moves the maximal contiguous run of src's top color into dst, limited
// by dst's free capacity. It returns the new configuration and the number of
// units moved. An illegal pour returns the receiver unchanged and 0.
//
// Only the two touched bottles are reallocated; the rest are shared with the
// receiver, which is safe because no Config is ever mutated.
func (c Config) Pour(src, dst int) (Config, int) {
	if !c.CanPour(src, dst) {
		return c, 0
	}

	from, to := c.bottles[src], c.bottles[dst]
	top := from[len(from)-1]

	// 1) Count the contiguous run of the top color.
	run := 0
	for k := len(from) - 1; k >= 0 && from[k] == top; k-- {
		run++
	}
	// 2) Limit by the destination's free space.
	n := min(run, Capacity-len(to))

	// 3) Copy-on-write the two touched bottles.
	next := make([]Bottle, len(c.bottles))
	copy(next, c.bottles)
	next[src] = append(Bottle(nil), from[:len(from)-n]...)
	nt := make(Bottle, len(to), len(to)+n)
	copy(nt, to)
	for k := 0; k < n; k++ {
		nt = append(nt, top)
	}
	next[dst] = nt

	return newConfig(next), n
}

// String renders the configuration bottom to top, e.g. "[red blue] [] [red]".
func (c Config) String() string {
	var sb strings.Builder
	for i, b := range c.bottles {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte('[')
		for k, col := range b {
			if k > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(string(col))
		}
		sb.WriteByte(']')
	}

	return sb.String()
}

// SameColors reports whether a and b hold the same multiset of colors.
func SameColors(a, b Config) bool {
	ca, cb := a.ColorCounts(), b.ColorCounts()
	if len(ca) != len(cb) {
		return false
	}
	for col, n := range ca {
		if cb[col] != n {
			return false
		}
	}

	return true
}
