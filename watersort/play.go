package watersort

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/pourpath/bottle"
	"github.com/katalvlaran/pourpath/search"
)

const tracerName = "github.com/katalvlaran/pourpath/watersort"

// ErrIllegalMove is returned by Replay for an out-of-range or illegal move.
var ErrIllegalMove = errors.New("watersort: illegal move")

// PlayOption configures Play and Solve.
type PlayOption func(*playOptions)

type playOptions struct {
	search     []search.Option
	validation []bottle.Option
	tracer     trace.Tracer
}

// WithSearchOptions forwards options to search.Solve. The mode is always
// decided by the hard flag (Play) or the mode argument (Solve).
func WithSearchOptions(opts ...search.Option) PlayOption {
	return func(o *playOptions) {
		o.search = append(o.search, opts...)
	}
}

// WithValidation adds bottle validation rules applied by Play.
func WithValidation(opts ...bottle.Option) PlayOption {
	return func(o *playOptions) {
		o.validation = append(o.validation, opts...)
	}
}

// WithTracerProvider overrides the global OpenTelemetry tracer provider.
func WithTracerProvider(tp trace.TracerProvider) PlayOption {
	return func(o *playOptions) {
		if tp != nil {
			o.tracer = tp.Tracer(tracerName)
		}
	}
}

func buildPlayOptions(opts []PlayOption) playOptions {
	o := playOptions{tracer: otel.Tracer(tracerName)}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// ModeFor maps the difficulty flag to a search mode: greedy for hard puzzles,
// A* otherwise.
func ModeFor(hard bool) search.Mode {
	if hard {
		return search.Greedy
	}

	return search.AStar
}

// Play solves the puzzle described by bottles (each listed bottom to top) and
// returns the 1-based moves in the order they must be applied.
//
// Outcomes:
//
//   - solved:        moves, nil (empty, non-nil when already solved).
//   - no solution:   empty non-nil slice, nil.
//   - invalid input: nil, error wrapping bottle.ErrInvalidConfiguration.
//   - limit hit:     nil, error wrapping search.ErrTimeout.
func Play(ctx context.Context, bottles [][]string, hard bool, opts ...PlayOption) ([]Move, error) {
	o := buildPlayOptions(opts)
	cfg, err := bottle.FromStrings(bottles, o.validation...)
	if err != nil {
		return nil, err
	}

	res, err := solve(ctx, cfg, ModeFor(hard), o)
	switch {
	case errors.Is(err, search.ErrNoSolution):
		return []Move{}, nil
	case err != nil:
		return nil, err
	}

	return res.Actions(), nil
}

// Solve runs the search for cfg in the given mode and returns the full
// search.Result, including the intermediate configurations and Stats.
// Errors are those of search.Solve.
func Solve(ctx context.Context, cfg bottle.Config, mode search.Mode, opts ...PlayOption) (*search.Result[bottle.Config, Move], error) {
	return solve(ctx, cfg, mode, buildPlayOptions(opts))
}

func solve(ctx context.Context, cfg bottle.Config, mode search.Mode, o playOptions) (*search.Result[bottle.Config, Move], error) {
	ctx, span := o.tracer.Start(ctx, "watersort.Solve", trace.WithAttributes(
		attribute.String("pourpath.mode", mode.String()),
		attribute.Int("pourpath.bottles", cfg.Len()),
	))
	defer span.End()

	sopts := make([]search.Option, 0, len(o.search)+2)
	sopts = append(sopts, search.WithContext(ctx))
	sopts = append(sopts, o.search...)
	sopts = append(sopts, search.WithMode(mode))

	res, err := search.Solve[bottle.Config, Move](NewProblem(cfg), sopts...)

	outcome := search.OutcomeOf(err)
	span.SetAttributes(attribute.String("pourpath.outcome", string(outcome)))
	if res != nil {
		span.SetAttributes(
			attribute.Int("pourpath.expanded", res.Stats.Expanded),
			attribute.Int("pourpath.generated", res.Stats.Generated),
			attribute.Int("pourpath.moves", len(res.Steps)),
		)
	}
	if outcome == search.OutcomeError {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	return res, err
}

// Replay applies moves to cfg in order and returns the final configuration.
// Every move must be one that Problem.Actions would offer.
func Replay(cfg bottle.Config, moves []Move) (bottle.Config, error) {
	cur := cfg
	for k, m := range moves {
		if m.From < 1 || m.From > cur.Len() || m.To < 1 || m.To > cur.Len() {
			return cur, fmt.Errorf("%w: move %d %v out of range 1..%d", ErrIllegalMove, k+1, m, cur.Len())
		}
		if cur.IsSolved(m.From-1) || !cur.CanPour(m.From-1, m.To-1) {
			return cur, fmt.Errorf("%w: move %d %v on %v", ErrIllegalMove, k+1, m, cur)
		}
		cur, _ = cur.Pour(m.From-1, m.To-1)
	}

	return cur, nil
}
