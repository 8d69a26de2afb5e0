package search

import (
	"fmt"
	"time"

	"github.com/katalvlaran/gridpath/grid"
)

// walker encapsulates the state shared by all strategies for one call.
// It lives only for the duration of that call.
type walker struct {
	algo       Algorithm
	g          *grid.Grid
	start, end *grid.Cell
	opts       Options
	n          int          // side length, for index()
	prev       []*grid.Cell // predecessor, indexed by cell
	res        *Result
	began      time.Time
}

// newWalker validates the call preconditions and applies options.
// Returns ErrGridNil, ErrNoStart, ErrNoEnd, ErrForeignCell or ErrStaleAdjacency.
func newWalker(algo Algorithm, g *grid.Grid, start, end *grid.Cell, opts []Option) (*walker, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	if start == nil {
		return nil, ErrNoStart
	}
	if end == nil {
		return nil, ErrNoEnd
	}
	if !g.Owns(start) {
		return nil, fmt.Errorf("%w: start %s", ErrForeignCell, start.Pos())
	}
	if !g.Owns(end) {
		return nil, fmt.Errorf("%w: end %s", ErrForeignCell, end.Pos())
	}
	if g.AdjacencyStale() {
		return nil, ErrStaleAdjacency
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	w := &walker{
		algo:  algo,
		g:     g,
		start: start,
		end:   end,
		opts:  o,
		n:     g.Rows(),
		prev:  make([]*grid.Cell, g.Len()),
		res:   &Result{Algorithm: algo},
		began: time.Now(),
	}
	o.Logger.Debug("search started", "algorithm", algo, "start", start.Pos(), "end", end.Pos(), "rows", g.Rows())

	return w, nil
}

// index maps a cell to its slot in per-call slices.
func (w *walker) index(c *grid.Cell) int {
	return c.Row()*w.n + c.Col()
}

// cancelled reports ErrCancelled if the context is done or the cancel
// check fires.
func (w *walker) cancelled() error {
	if err := w.opts.Ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrCancelled, err)
	}
	if w.opts.Cancel() {
		return ErrCancelled
	}
	return nil
}

// expand records c as taken off the frontier.
func (w *walker) expand(c *grid.Cell) {
	w.res.Order = append(w.res.Order, c.Pos())
	w.res.Expanded++
}

// step yields to the caller.
func (w *walker) step() {
	w.res.Steps++
	w.opts.OnStep()
}

// mark changes the state of c unless c is the start or end cell, which keep
// their tags for the whole search.
func (w *walker) mark(c *grid.Cell, s grid.State) {
	if c == w.start || c == w.end {
		return
	}
	c.Set(s)
}

// reconstruct walks predecessors from end back to start, marks every
// intermediate cell as Path with one step per mark, and records the path.
func (w *walker) reconstruct() error {
	path := []grid.Coord{w.end.Pos()}
	for cur := w.end; cur != w.start; {
		p := w.prev[w.index(cur)]
		if p == nil {
			return fmt.Errorf("search: broken predecessor chain at %s", cur.Pos())
		}
		cur = p
		path = append(path, cur.Pos())
		if cur == w.start {
			break
		}
		if err := w.cancelled(); err != nil {
			return err
		}
		w.mark(cur, grid.Path)
		w.step()
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	w.res.Found = true
	w.res.Path = path
	return nil
}

// finish logs the outcome and shapes the return values. On error the result
// is still returned, reported as not found.
func (w *walker) finish(err error) (*Result, error) {
	if err != nil {
		w.res.Found = false
		w.res.Path = nil
		w.opts.Logger.Debug("search stopped", "algorithm", w.algo, "err", err, "expanded", w.res.Expanded, "steps", w.res.Steps)
		return w.res, err
	}
	w.opts.Logger.Debug("search finished",
		"algorithm", w.algo,
		"found", w.res.Found,
		"hops", w.res.Hops(),
		"expanded", w.res.Expanded,
		"steps", w.res.Steps,
		"elapsed", time.Since(w.began).Round(time.Microsecond),
	)
	return w.res, nil
}
