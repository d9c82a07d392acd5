// Package bottle models a water-sort configuration: a fixed row of bottles,
// each a stack of up to Capacity colored units listed bottom to top.
//
// What
//
//   - Color: opaque comparable token (only equality matters).
//   - Bottle: []Color, bottom→top, len ≤ Capacity.
//   - Config: immutable ordered sequence of bottles with a precomputed xxh3
//     fingerprint (Hash) and positional equality (Equal).
//   - Pour: the single transition; copy-on-write, conserves every color.
//
// Invariants
//
//   - No bottle ever exceeds Capacity; New rejects such input and Pour clamps
//     the transfer to the destination's free space.
//   - The multiset of colors is identical before and after every Pour.
//   - A Config is never mutated after New returns it.
//
// Validation
//
//	cfg, err := bottle.New(bottles,
//	    bottle.WithStrictCounts(),   // each color exactly Capacity times
//	    bottle.WithBottleCount(9),   // exact bottle count
//	)
//	if errors.Is(err, bottle.ErrInvalidConfiguration) { ... }
//
// Complexity (B = bottles, U = total units)
//
//   - New, Hash, Equal, ColorCounts: O(B + U)
//   - Pour: O(B) to copy the bottle headers, O(Capacity) for the two touched bottles.
package bottle
