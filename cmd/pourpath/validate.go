package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/pourpath/bottle"
	"github.com/katalvlaran/pourpath/puzzlefile"
)

// runValidate loads every file and builds every configuration, printing one
// status line per file. All files are checked even after a failure.
func runValidate(w io.Writer, strict bool, files []string) error {
	var vopts []bottle.Option
	if strict {
		vopts = append(vopts, bottle.WithStrictCounts())
	}

	var errs []error
	for _, path := range files {
		if err := validateFile(path, vopts); err != nil {
			fmt.Fprintln(w, err)
			errs = append(errs, err)

			continue
		}
		fmt.Fprintf(w, "%s: ok\n", path)
	}

	return errors.Join(errs...)
}

func validateFile(path string, vopts []bottle.Option) error {
	pf, err := puzzlefile.Load(path)
	if err != nil {
		return err
	}
	for _, p := range pf.Puzzles {
		if _, err := p.Config(vopts...); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}

	return nil
}
