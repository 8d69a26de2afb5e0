package search

import "github.com/katalvlaran/gridpath/grid"

// BFS runs breadth-first search from start to end. A cell is marked visited
// when it is enqueued, never twice, so the first path found has the minimum
// number of moves; ties follow the neighbor order down, up, right, left.
//
// Behavior per dequeued cell:
//  1. Mark it Open; if it is end, reconstruct the path and return found.
//  2. Enqueue every unvisited neighbor with current as predecessor, marking
//     it visited and Open.
//  3. Invoke OnStep, then mark the dequeued cell Closed.
//
// Errors are the same as AStar.
// Complexity: O(N²) time and memory.
func BFS(g *grid.Grid, start, end *grid.Cell, opts ...Option) (*Result, error) {
	w, err := newWalker(AlgorithmBFS, g, start, end, opts)
	if err != nil {
		return nil, err
	}
	return w.finish(w.bfs())
}

func (w *walker) bfs() error {
	visited := make([]bool, w.g.Len())
	queue := make([]*grid.Cell, 0, w.g.Len())

	visited[w.index(w.start)] = true
	queue = append(queue, w.start)

	for head := 0; head < len(queue); head++ {
		if err := w.cancelled(); err != nil {
			return err
		}

		cur := queue[head]
		w.expand(cur)
		w.mark(cur, grid.Open)

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
			queue = append(queue, nb)
			w.mark(nb, grid.Open)
		}

		w.step()
		w.mark(cur, grid.Closed)
	}

	return nil
}
