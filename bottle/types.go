// Package bottle defines the colors, bottles, sentinel errors and validation
// options behind an immutable water-sort configuration.
package bottle

import (
	"errors"
	"fmt"
)

// Capacity is the number of liquid units a single bottle can hold.
const Capacity = 4

// ErrInvalidConfiguration is returned when an input configuration cannot be
// searched: no bottles, a bottle over Capacity, an empty color token, or a
// violated Option constraint. Callers match it with errors.Is; the wrapped
// message names the offending bottle or color.
var ErrInvalidConfiguration = errors.New("bottle: invalid configuration")

// ErrOptionViolation is returned when an invalid Option is supplied to New.
var ErrOptionViolation = errors.New("bottle: invalid option supplied")

// Color is an opaque liquid token. Only equality is meaningful.
type Color string

// Bottle is a stack of colors listed bottom to top.
type Bottle []Color

// Top returns the topmost color and true, or "" and false for an empty bottle.
func (b Bottle) Top() (Color, bool) {
	if len(b) == 0 {
		return "", false
	}

	return b[len(b)-1], true
}

// Uniform reports whether the bottle is non-empty and holds a single color.
func (b Bottle) Uniform() bool {
	if len(b) == 0 {
		return false
	}
	for _, c := range b[1:] {
		if c != b[0] {
			return false
		}
	}

	return true
}

// Solved reports whether the bottle is full and uniform.
func (b Bottle) Solved() bool {
	return len(b) == Capacity && b.Uniform()
}

// Option configures extra validation performed by New.
// Invalid options are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds the validation rules applied by New.
type Options struct {
	// StrictCounts requires every color to occur exactly Capacity times.
	StrictCounts bool

	// BottleCount, if > 0, requires exactly that many bottles.
	BottleCount int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the permissive rule set: capacity and color-token
// checks only, any bottle count, any per-color count.
func DefaultOptions() Options {
	return Options{}
}

// WithStrictCounts requires each color to fill exactly one bottle.
func WithStrictCounts() Option {
	return func(o *Options) {
		o.StrictCounts = true
	}
}

// WithBottleCount requires the configuration to have exactly n bottles.
//
//	n > 0: enforce
//	n == 0: explicit "any count"
//	n < 0: invalid option → ErrOptionViolation
func WithBottleCount(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: bottle count cannot be negative (%d)", ErrOptionViolation, n)

			return
		}
		o.BottleCount = n
	}
}
