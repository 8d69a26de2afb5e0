package search

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/gridpath/grid"
)

// AStar runs best-first search from start to end ordered by f = g + h, where
// g counts moves from start and h is Manhattan. Equal f values leave the
// frontier in insertion order.
//
// Behavior per popped cell:
//  1. If it is end, reconstruct the path and return found.
//  2. For each neighbor with a better tentative g, record the predecessor,
//     update g and f, and push it (marked Open) unless it is already queued.
//     A queued cell keeps the key it was pushed with; only its g, f and
//     predecessor change.
//  3. Invoke OnStep, then mark the popped cell Closed.
//
// Start and end keep their tags. On an exhausted frontier the result is not
// found and the explored cells stay Open/Closed.
//
// Returns ErrGridNil, ErrNoStart, ErrNoEnd, ErrForeignCell, ErrStaleAdjacency
// for invalid input, ErrCancelled on cancellation.
//
// Complexity: O(N² log N) time, O(N²) memory.
func AStar(g *grid.Grid, start, end *grid.Cell, opts ...Option) (*Result, error) {
	w, err := newWalker(AlgorithmAStar, g, start, end, opts)
	if err != nil {
		return nil, err
	}
	return w.finish(w.astar())
}

func (w *walker) astar() error {
	size := w.g.Len()
	gScore := make([]int, size)
	fScore := make([]int, size)
	for i := range gScore {
		gScore[i] = math.MaxInt
		fScore[i] = math.MaxInt
	}
	queued := make([]bool, size)
	goal := w.end.Pos()

	si := w.index(w.start)
	gScore[si] = 0
	fScore[si] = Manhattan(w.start.Pos(), goal)

	count := 0
	pq := make(frontier, 0, size)
	queued[si] = true
	heap.Push(&pq, &pqItem{cell: w.start, f: fScore[si], order: count})

	for pq.Len() > 0 {
		if err := w.cancelled(); err != nil {
			return err
		}

		cur := heap.Pop(&pq).(*pqItem).cell
		ci := w.index(cur)
		queued[ci] = false
		w.expand(cur)

		if cur == w.end {
			return w.reconstruct()
		}

		for _, nb := range cur.Neighbors() {
			tentative := gScore[ci] + 1
			ni := w.index(nb)
			if tentative >= gScore[ni] {
				continue
			}
			w.prev[ni] = cur
			gScore[ni] = tentative
			fScore[ni] = tentative + Manhattan(nb.Pos(), goal)
			if queued[ni] {
				continue
			}
			count++
			queued[ni] = true
			heap.Push(&pq, &pqItem{cell: nb, f: fScore[ni], order: count})
			w.mark(nb, grid.Open)
		}

		w.step()
		w.mark(cur, grid.Closed)
	}

	return nil
}
