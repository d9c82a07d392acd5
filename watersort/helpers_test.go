package watersort_test

import "github.com/katalvlaran/pourpath/bottle"

// cfgOf builds a configuration from string bottles or fails loudly.
func cfgOf(bottles ...[]string) bottle.Config {
	cfg, err := bottle.FromStrings(bottles)
	if err != nil {
		panic(err)
	}

	return cfg
}

// twoMovePuzzle needs exactly two pours: no single pour reaches a goal.
func twoMovePuzzle() [][]string {
	return [][]string{{"red", "blue"}, {"red"}, {}}
}

// deadlockPuzzle has no empty bottle, no matching tops and no solved bottle,
// so not a single move is legal.
func deadlockPuzzle() [][]string {
	return [][]string{
		{"red", "green", "blue"},
		{"green", "blue", "red"},
		{"blue", "red", "green"},
	}
}

// stripesPuzzle interleaves two colors across two full bottles with two spares.
func stripesPuzzle() [][]string {
	return [][]string{
		{"red", "blue", "red", "blue"},
		{"blue", "red", "blue", "red"},
		{},
		{},
	}
}

// sevenColorPuzzle is a full-size instance: seven colors, nine bottles.
func sevenColorPuzzle() [][]string {
	return [][]string{
		{"green", "blue", "red", "orange"},
		{"blue", "pink", "orange"},
		{"pink", "cyan", "green", "green"},
		{"pink", "red", "cyan", "cyan"},
		{"red", "blue", "lilac"},
		{"green", "orange", "cyan", "red"},
		{"blue", "orange", "pink"},
		{"lilac", "lilac", "lilac"},
		{},
	}
}
