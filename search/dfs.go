package search

import "github.com/katalvlaran/gridpath/grid"

// DFS runs depth-first search from start to end using an explicit stack.
// A cell is marked visited when pushed. The path it returns is not
// necessarily shortest, but on a finite grid an existing path is always found.
//
// Marking follows BFS: Open on pop, Closed after its step.
// Errors are the same as AStar.
// Complexity: O(N²) time and memory.
func DFS(g *grid.Grid, start, end *grid.Cell, opts ...Option) (*Result, error) {
	w, err := newWalker(AlgorithmDFS, g, start, end, opts)
	if err != nil {
		return nil, err
	}
	return w.finish(w.dfs())
}

func (w *walker) dfs() error {
	visited := make([]bool, w.g.Len())
	stack := make([]*grid.Cell, 0, w.g.Len())

	visited[w.index(w.start)] = true
	stack = append(stack, w.start)

	for len(stack) > 0 {
		if err := w.cancelled(); err != nil {
			return err
		}

		top := len(stack) - 1
		cur := stack[top]
		stack = stack[:top]
		w.expand(cur)
		w.mark(cur, grid.Open)

		// end is never expanded: the match returns first.
		if cur == w.end {
			return w.reconstruct()
		}

		for _, nb := range cur.Neighbors() {
			ni := w.index(nb)
			if visited[ni] {
				continue
			}
			w.prev[ni] = cur
			visited[ni] = true
			stack = append(stack, nb)
			w.mark(nb, grid.Open)
		}

		w.step()
		w.mark(cur, grid.Closed)
	}

	return nil
}
