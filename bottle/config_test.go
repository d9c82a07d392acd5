package bottle_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pourpath/bottle"
)

//----------------------------------------------------------------------------//
// New and validation
//----------------------------------------------------------------------------//

func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name    string
		bottles [][]bottle.Color
		opts    []bottle.Option
		err     error
	}{
		{"NoBottles", nil, nil, bottle.ErrInvalidConfiguration},
		{"OverCapacity", [][]bottle.Color{{"r", "r", "r", "r", "r"}}, nil, bottle.ErrInvalidConfiguration},
		{"EmptyColor", [][]bottle.Color{{"r", ""}}, nil, bottle.ErrInvalidConfiguration},
		{"BottleCount", [][]bottle.Color{{"r"}, {}}, []bottle.Option{bottle.WithBottleCount(3)}, bottle.ErrInvalidConfiguration},
		{"StrictCounts", [][]bottle.Color{{"r", "r", "r"}, {}}, []bottle.Option{bottle.WithStrictCounts()}, bottle.ErrInvalidConfiguration},
		{"NegativeBottleCount", [][]bottle.Color{{"r"}}, []bottle.Option{bottle.WithBottleCount(-1)}, bottle.ErrOptionViolation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := bottle.New(tc.bottles, tc.opts...)
			assert.True(t, errors.Is(err, tc.err), "New error = %v; want %v", err, tc.err)
		})
	}
}

func TestNew_AcceptsStrictPuzzle(t *testing.T) {
	cfg, err := bottle.New([][]bottle.Color{
		{"red", "blue", "red", "blue"},
		{"blue", "red", "blue", "red"},
		{},
	}, bottle.WithStrictCounts(), bottle.WithBottleCount(3))
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Len())
	assert.Equal(t, map[bottle.Color]int{"red": 4, "blue": 4}, cfg.ColorCounts())
}

func TestNew_CopiesInput(t *testing.T) {
	in := [][]bottle.Color{{"red", "blue"}, {}}
	cfg, err := bottle.New(in)
	require.NoError(t, err)

	in[0][0] = "green"
	assert.Equal(t, bottle.Bottle{"red", "blue"}, cfg.Bottle(0))

	out := cfg.Bottle(0)
	out[1] = "green"
	top, _ := cfg.Top(0)
	assert.Equal(t, bottle.Color("blue"), top)
}

func TestFromStrings(t *testing.T) {
	cfg, err := bottle.FromStrings([][]string{{"red", "blue"}, {}})
	require.NoError(t, err)
	assert.Equal(t, "[red blue] []", cfg.String())

	_, err = bottle.FromStrings([][]string{{"a", "b", "c", "d", "e"}})
	assert.ErrorIs(t, err, bottle.ErrInvalidConfiguration)
}

//----------------------------------------------------------------------------//
// Hash and Equal
//----------------------------------------------------------------------------//

func TestEqualAndHash(t *testing.T) {
	a := bottle.MustNew(bottle.Bottle{"red", "blue"}, nil)
	b := bottle.MustNew(bottle.Bottle{"red", "blue"}, nil)
	swapped := bottle.MustNew(nil, bottle.Bottle{"red", "blue"})

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())

	// Bottle identity is positional.
	assert.False(t, a.Equal(swapped))
	assert.NotEqual(t, a.Hash(), swapped.Hash())
}

func TestHash_LengthPrefixed(t *testing.T) {
	joined := bottle.MustNew(bottle.Bottle{"ab"})
	split := bottle.MustNew(bottle.Bottle{"a", "b"})
	assert.NotEqual(t, joined.Hash(), split.Hash())
	assert.False(t, joined.Equal(split))
}

//----------------------------------------------------------------------------//
// Pour
//----------------------------------------------------------------------------//

func TestPour(t *testing.T) {
	cases := []struct {
		name     string
		start    bottle.Config
		src, dst int
		moved    int
		want     string
	}{
		{
			name:  "SingleUnitIntoEmpty",
			start: bottle.MustNew(bottle.Bottle{"red", "blue"}, nil),
			src:   0, dst: 1, moved: 1,
			want: "[red] [blue]",
		},
		{
			name:  "WholeRun",
			start: bottle.MustNew(bottle.Bottle{"red", "blue", "blue", "blue"}, bottle.Bottle{"blue"}),
			src:   0, dst: 1, moved: 3,
			want: "[red] [blue blue blue blue]",
		},
		{
			name:  "ClampedByCapacity",
			start: bottle.MustNew(bottle.Bottle{"blue", "blue", "blue"}, bottle.Bottle{"red", "blue"}),
			src:   0, dst: 1, moved: 2,
			want: "[blue] [red blue blue blue]",
		},
		{
			name:  "TopMismatch",
			start: bottle.MustNew(bottle.Bottle{"red"}, bottle.Bottle{"blue"}),
			src:   0, dst: 1, moved: 0,
			want: "[red] [blue]",
		},
		{
			name:  "EmptySource",
			start: bottle.MustNew(nil, bottle.Bottle{"blue"}),
			src:   0, dst: 1, moved: 0,
			want: "[] [blue]",
		},
		{
			name:  "FullDestination",
			start: bottle.MustNew(bottle.Bottle{"red"}, bottle.Bottle{"red", "red", "red", "red"}),
			src:   0, dst: 1, moved: 0,
			want: "[red] [red red red red]",
		},
		{
			name:  "SameBottle",
			start: bottle.MustNew(bottle.Bottle{"red"}, nil),
			src:   0, dst: 0, moved: 0,
			want: "[red] []",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			next, n := tc.start.Pour(tc.src, tc.dst)
			assert.Equal(t, tc.moved, n)
			assert.Equal(t, tc.want, next.String())
			assert.True(t, bottle.SameColors(tc.start, next), "colors not conserved")
		})
	}
}

func TestPour_LeavesReceiverUntouched(t *testing.T) {
	start := bottle.MustNew(bottle.Bottle{"red", "blue", "blue"}, bottle.Bottle{"green"}, nil)
	before := start.String()
	hash := start.Hash()

	next, n := start.Pour(0, 2)
	require.Equal(t, 2, n)
	assert.Equal(t, "[red] [green] [blue blue]", next.String())
	assert.Equal(t, before, start.String())
	assert.Equal(t, hash, start.Hash())
	assert.NotEqual(t, hash, next.Hash())
}

// TestPour_Invariants pours every ordered pair of a mixed configuration and
// checks capacity and color conservation on each result.
func TestPour_Invariants(t *testing.T) {
	start := bottle.MustNew(
		bottle.Bottle{"green", "blue", "red", "orange"},
		bottle.Bottle{"blue", "pink", "orange"},
		bottle.Bottle{"pink", "cyan", "green", "green"},
		bottle.Bottle{"red", "blue", "lilac"},
		bottle.Bottle{"lilac", "lilac", "lilac"},
		nil,
	)
	for src := 0; src < start.Len(); src++ {
		for dst := 0; dst < start.Len(); dst++ {
			next, n := start.Pour(src, dst)
			assert.Equal(t, start.CanPour(src, dst), n > 0, "pour %d→%d", src, dst)
			assert.True(t, bottle.SameColors(start, next), "pour %d→%d lost colors", src, dst)
			for i := 0; i < next.Len(); i++ {
				assert.LessOrEqual(t, next.Level(i), bottle.Capacity)
			}
		}
	}
}

//----------------------------------------------------------------------------//
// Bottle predicates
//----------------------------------------------------------------------------//

func TestBottlePredicates(t *testing.T) {
	cfg := bottle.MustNew(
		bottle.Bottle{"red", "red", "red", "red"},
		bottle.Bottle{"red", "red"},
		bottle.Bottle{"red", "blue"},
		nil,
	)
	assert.True(t, cfg.IsSolved(0))
	assert.True(t, cfg.IsUniform(1))
	assert.False(t, cfg.IsSolved(1))
	assert.False(t, cfg.IsUniform(2))
	assert.False(t, cfg.IsUniform(3))
	assert.True(t, cfg.IsEmpty(3))
	assert.Equal(t, 0, cfg.Free(0))
	assert.Equal(t, bottle.Capacity, cfg.Free(3))
}

func TestSameColors(t *testing.T) {
	a := bottle.MustNew(bottle.Bottle{"red", "blue"}, nil)
	b := bottle.MustNew(nil, bottle.Bottle{"blue", "red"})
	c := bottle.MustNew(bottle.Bottle{"red", "red"}, nil)
	assert.True(t, bottle.SameColors(a, b))
	assert.False(t, bottle.SameColors(a, c))
}
