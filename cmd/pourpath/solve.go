package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"facette.io/natsort"
	"github.com/alitto/pond/v2"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/pourpath/bottle"
	"github.com/katalvlaran/pourpath/metrics"
	"github.com/katalvlaran/pourpath/puzzlefile"
	"github.com/katalvlaran/pourpath/search"
	"github.com/katalvlaran/pourpath/watersort"
)

// job is one puzzle of a batch together with the file it came from.
type job struct {
	file   string
	puzzle puzzlefile.Puzzle
}

// result is what a worker reports back for a job.
type result struct {
	job        job
	mode       search.Mode
	moves      []watersort.Move
	unsolvable bool
	stats      search.Stats
	elapsed    time.Duration
	err        error
}

func runSolve(ctx context.Context, stdout, stderr io.Writer, f solveFlags, files []string) error {
	if f.workers < 1 {
		return fmt.Errorf("--workers must be positive, got %d", f.workers)
	}
	if f.maxExpansions < 0 {
		return fmt.Errorf("--max-expansions cannot be negative, got %d", f.maxExpansions)
	}
	if f.timeout < 0 {
		return fmt.Errorf("--timeout cannot be negative, got %v", f.timeout)
	}

	jobs, err := loadJobs(files)
	if err != nil {
		return err
	}

	logger := newLogger(stderr, f.verbose)
	reg := prometheus.NewRegistry()
	rec := metrics.NewRecorder(reg)

	// 1) Fan the puzzles out; every worker writes only its own slot.
	results := make([]result, len(jobs))
	pool := pond.NewPool(f.workers)
	defer pool.StopAndWait()

	group := pool.NewGroup()
	for i, j := range jobs {
		group.Submit(func() {
			results[i] = solveJob(ctx, logger, rec, f, j)
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	// 2) Report in natural name order.
	failed := printResults(stdout, results, f.stats)

	if f.metricsFile != "" {
		if err := prometheus.WriteToTextfile(f.metricsFile, reg); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d puzzles failed", failed, len(results))
	}

	return nil
}

func loadJobs(files []string) ([]job, error) {
	var jobs []job
	for _, path := range files {
		pf, err := puzzlefile.Load(path)
		if err != nil {
			return nil, err
		}
		for _, p := range pf.Puzzles {
			jobs = append(jobs, job{file: path, puzzle: p})
		}
	}

	return jobs, nil
}

func solveJob(ctx context.Context, logger *slog.Logger, rec *metrics.Recorder, f solveFlags, j job) result {
	mode := watersort.ModeFor(f.hard || j.puzzle.Hard)
	log := logger.With(
		slog.String("run", uuid.NewString()),
		slog.String("file", j.file),
		slog.String("puzzle", j.puzzle.Name),
		slog.String("mode", mode.String()),
	)
	r := result{job: j, mode: mode}

	var vopts []bottle.Option
	if f.strict {
		vopts = append(vopts, bottle.WithStrictCounts())
	}
	cfg, err := j.puzzle.Config(vopts...)
	if err != nil {
		r.err = err
		log.Error("invalid puzzle", slog.Any("err", err))

		return r
	}

	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	sopts := append(rec.SearchOptions(mode),
		search.WithLogger(log),
		search.WithMaxExpansions(f.maxExpansions),
	)

	start := time.Now()
	res, err := watersort.Solve(ctx, cfg, mode, watersort.WithSearchOptions(sopts...))
	r.elapsed = time.Since(start)

	moves := 0
	if res != nil {
		r.stats = res.Stats
		moves = len(res.Steps)
	}
	rec.ObserveSolve(mode, err, r.elapsed, moves)

	switch {
	case err == nil:
		r.moves = res.Actions()
	case errors.Is(err, search.ErrNoSolution):
		r.unsolvable = true
	default:
		r.err = err
		log.Error("solve failed", slog.Any("err", err), slog.Int("expanded", r.stats.Expanded))

		return r
	}
	log.Info("solve finished",
		slog.String("outcome", string(search.OutcomeOf(err))),
		slog.Int("moves", moves),
		slog.Int("expanded", r.stats.Expanded),
		slog.Duration("elapsed", r.elapsed),
	)

	return r
}

// printResults writes one line per result ordered naturally by puzzle name,
// keeping load order among equal names, and returns the number of failures.
func printResults(w io.Writer, results []result, withStats bool) int {
	byName := make(map[string][]int, len(results))
	names := make([]string, 0, len(results))
	for i, r := range results {
		name := r.job.puzzle.Name
		if _, seen := byName[name]; !seen {
			names = append(names, name)
		}
		byName[name] = append(byName[name], i)
	}
	natsort.Sort(names)

	failed := 0
	for _, name := range names {
		for _, i := range byName[name] {
			r := results[i]
			if r.err != nil {
				failed++
			}
			line := name + ": " + describe(r)
			if withStats && r.err == nil {
				line += "  " + statsLine(r)
			}
			fmt.Fprintln(w, line)
		}
	}

	return failed
}

func describe(r result) string {
	switch {
	case r.err != nil:
		return "error: " + r.err.Error()
	case r.unsolvable:
		return "no solution"
	case len(r.moves) == 0:
		return "already solved"
	}

	parts := make([]string, len(r.moves))
	for i, m := range r.moves {
		parts[i] = m.String()
	}

	return strings.Join(parts, " ")
}

func statsLine(r result) string {
	return fmt.Sprintf("[%s, %d moves, %s expanded, %s generated, %v]",
		r.mode,
		len(r.moves),
		humanize.Comma(int64(r.stats.Expanded)),
		humanize.Comma(int64(r.stats.Generated)),
		r.elapsed.Round(time.Microsecond),
	)
}
