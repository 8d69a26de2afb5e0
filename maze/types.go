package maze

import (
	"context"
	"errors"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
)

// Sentinel errors for maze generation.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("maze: grid is nil")

	// ErrNoSeed is returned when the seed cell is nil.
	ErrNoSeed = errors.New("maze: seed cell not set")

	// ErrForeignCell is returned when the seed does not belong to the grid.
	ErrForeignCell = errors.New("maze: cell does not belong to grid")

	// ErrSeedNotBarrier is returned when the seed cell is not marked Barrier.
	ErrSeedNotBarrier = errors.New("maze: seed cell must be a barrier")

	// ErrStaleAdjacency is returned when barriers changed after the last
	// Grid.UpdateNeighbors, including the edit that marked the seed.
	ErrStaleAdjacency = errors.New("maze: adjacency is stale, call UpdateNeighbors first")

	// ErrInvalidProbability indicates a coin probability outside [0,1].
	ErrInvalidProbability = errors.New("maze: probability out of range")

	// ErrCancelled is returned when the context is done or the cancel check
	// reports true. Barriers placed so far stay on the grid.
	ErrCancelled = errors.New("maze: cancelled")
)

const (
	// DefaultNear is the chance of walling a neighbor of a Barrier cell.
	DefaultNear = 0.6

	// DefaultFar is the chance of walling a neighbor of any other cell.
	DefaultFar = 0.2

	minProbability = 0.0
	maxProbability = 1.0
)

// Option configures Generate.
type Option func(*Options)

// Options controls the coin, the random source and the step/cancel port.
type Options struct {
	// Near and Far are the barrier probabilities used when the current cell
	// is, respectively is not, a Barrier.
	Near, Far float64

	// Seed feeds a fresh source when Rand is nil. Zero selects a fixed default.
	Seed int64

	// Rand, when set, is used as is and takes precedence over Seed.
	Rand *rand.Rand

	Ctx    context.Context
	OnStep func()
	Cancel func() bool
	Logger *log.Logger
}

// DefaultOptions returns Near=0.6, Far=0.2, the default seed, a background
// context, no-op hooks and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Near:   DefaultNear,
		Far:    DefaultFar,
		Ctx:    context.Background(),
		OnStep: func() {},
		Cancel: func() bool { return false },
		Logger: log.New(io.Discard),
	}
}

// WithSeed makes the generated layout reproducible.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithRand supplies the random source. Ignored when nil.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithProbabilities overrides the coin. Values are validated by Generate.
func WithProbabilities(near, far float64) Option {
	return func(o *Options) {
		o.Near = near
		o.Far = far
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

// WithOnStep registers the per-pop callback.
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

// Result summarizes one generation pass.
type Result struct {
	// Visited is the number of cells discovered, seed included.
	Visited int
	// Barriers is the number of cells turned into Barrier, seed excluded.
	Barriers int
	// Steps is the number of OnStep invocations, one per pop.
	Steps int
}
