package maze

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/gridpath/grid"
)

// generator holds the state of one Generate call.
type generator struct {
	g    *grid.Grid
	opts Options
	rng  *rand.Rand
	n    int
	res  *Result
}

// Generate walls off parts of g by a randomized spanning traversal from seed,
// which must already be a Barrier.
//
// The traversal pops cells from a stack and discovers their cached
// neighbors. Each newly discovered cell is marked visited, pushed, and then
// turned into a Barrier with probability Near when the popped cell is a
// Barrier, Far otherwise. Start and End cells are discovered like any other
// cell but never converted. The pass ends when the stack is empty or every
// cell of the grid has been visited; OnStep runs once per pop and
// cancellation is polled before each pop.
//
// Adjacency is read as it was at the last UpdateNeighbors, so the visited
// count equals the number of cells reachable from seed at call time. The
// barriers placed here make adjacency stale again.
//
// Returns ErrGridNil, ErrNoSeed, ErrForeignCell, ErrSeedNotBarrier,
// ErrStaleAdjacency, ErrInvalidProbability for invalid input; ErrCancelled
// with the partial Result on cancellation.
//
// Complexity: O(N²) time and memory.
func Generate(g *grid.Grid, seed *grid.Cell, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	if seed == nil {
		return nil, ErrNoSeed
	}
	if !g.Owns(seed) {
		return nil, fmt.Errorf("%w: seed %s", ErrForeignCell, seed.Pos())
	}
	if !seed.IsBarrier() {
		return nil, fmt.Errorf("%w: %s is %s", ErrSeedNotBarrier, seed.Pos(), seed.State())
	}
	if g.AdjacencyStale() {
		return nil, ErrStaleAdjacency
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := validateProbability("near", o.Near); err != nil {
		return nil, err
	}
	if err := validateProbability("far", o.Far); err != nil {
		return nil, err
	}

	gen := &generator{g: g, opts: o, rng: resolveRNG(o), n: g.Rows(), res: &Result{}}
	began := time.Now()
	o.Logger.Debug("maze started", "seed", seed.Pos(), "near", o.Near, "far", o.Far)

	if err := gen.run(seed); err != nil {
		o.Logger.Debug("maze stopped", "err", err, "visited", gen.res.Visited, "barriers", gen.res.Barriers)
		return gen.res, err
	}
	o.Logger.Debug("maze finished",
		"visited", gen.res.Visited,
		"barriers", gen.res.Barriers,
		"steps", gen.res.Steps,
		"elapsed", time.Since(began).Round(time.Microsecond),
	)
	return gen.res, nil
}

func (gen *generator) run(seed *grid.Cell) error {
	total := gen.g.Len()
	visited := make([]bool, total)
	stack := make([]*grid.Cell, 0, total)

	visited[gen.index(seed)] = true
	gen.res.Visited = 1
	stack = append(stack, seed)

	for len(stack) > 0 && gen.res.Visited < total {
		if err := gen.cancelled(); err != nil {
			return err
		}

		top := len(stack) - 1
		cur := stack[top]
		stack = stack[:top]

		for _, nb := range cur.Neighbors() {
			ni := gen.index(nb)
			if visited[ni] {
				continue
			}
			visited[ni] = true
			gen.res.Visited++
			stack = append(stack, nb)

			if gen.flip(cur) && !nb.IsStart() && !nb.IsEnd() && !nb.IsBarrier() {
				nb.MakeBarrier()
				gen.res.Barriers++
			}
		}

		gen.res.Steps++
		gen.opts.OnStep()
	}

	return nil
}

// flip tosses the biased coin for a neighbor of cur. The coin is always
// tossed, so the random stream does not depend on where Start and End are.
func (gen *generator) flip(cur *grid.Cell) bool {
	p := gen.opts.Far
	if cur.IsBarrier() {
		p = gen.opts.Near
	}
	return gen.rng.Float64() < p
}

func (gen *generator) index(c *grid.Cell) int {
	return c.Row()*gen.n + c.Col()
}

func (gen *generator) cancelled() error {
	if err := gen.opts.Ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrCancelled, err)
	}
	if gen.opts.Cancel() {
		return ErrCancelled
	}
	return nil
}
