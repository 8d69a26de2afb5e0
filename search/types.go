// Package search provides options, results and error definitions
// for the grid search strategies.
package search

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for search execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("search: grid is nil")

	// ErrNoStart is returned when the start cell is nil.
	ErrNoStart = errors.New("search: start cell not set")

	// ErrNoEnd is returned when the end cell is nil.
	ErrNoEnd = errors.New("search: end cell not set")

	// ErrForeignCell is returned when start or end does not belong to the grid,
	// for example after the grid was Reset.
	ErrForeignCell = errors.New("search: cell does not belong to grid")

	// ErrStaleAdjacency is returned when barriers changed after the last
	// Grid.UpdateNeighbors.
	ErrStaleAdjacency = errors.New("search: adjacency is stale, call UpdateNeighbors first")

	// ErrCancelled is returned when the context is done or the cancel check
	// reports true. The partial result is reported as not found.
	ErrCancelled = errors.New("search: cancelled")

	// ErrUnknownAlgorithm is returned by ParseAlgorithm and Run.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")
)

// Option configures a search via functional arguments.
type Option func(*Options)

// Options holds the step/cancel port and logging of a search call.
type Options struct {
	// Ctx allows cancellation and deadlines. Checked once per expansion.
	Ctx context.Context

	// OnStep is invoked after each popped cell and after each cell marked
	// Path during reconstruction. It is the only yield point of a search.
	OnStep func()

	// Cancel is polled at the same cadence as Ctx; returning true stops the
	// search at the next boundary.
	Cancel func() bool

	// Logger receives debug records for run start and finish.
	Logger *log.Logger
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - a no-op OnStep
//   - a Cancel that never fires
//   - a logger that discards everything
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		OnStep: func() {},
		Cancel: func() bool { return false },
		Logger: log.New(io.Discard),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnStep registers the per-step callback.
func WithOnStep(fn func()) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// WithCancel registers a polled cancellation flag.
func WithCancel(fn func() bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.Cancel = fn
		}
	}
}

// WithLogger sets the logger used for debug records.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Result holds the outcome of a search:
//   - Found: whether end was reached.
//   - Path: coordinates from start to end inclusive; nil when not found.
//   - Order: cells in the order they were taken off the frontier.
//   - Expanded: len(Order).
//   - Steps: number of OnStep invocations.
type Result struct {
	Algorithm Algorithm
	Found     bool
	Path      []grid.Coord
	Order     []grid.Coord
	Expanded  int
	Steps     int
}

// Hops returns the number of moves on the path, or -1 when not found.
func (r *Result) Hops() int {
	if !r.Found {
		return -1
	}
	return len(r.Path) - 1
}
