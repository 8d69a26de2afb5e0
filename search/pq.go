package search

import "github.com/katalvlaran/gridpath/grid"

// pqItem is a frontier entry. order is the insertion counter that breaks
// ties in FIFO order.
type pqItem struct {
	cell  *grid.Cell
	f     int
	order int
}

// frontier is a min-heap of *pqItem ordered by (f, order) ascending.
// A cell is pushed at most once while it is in the frontier and its key is
// never changed after the push.
type frontier []*pqItem

func (pq frontier) Len() int { return len(pq) }

func (pq frontier) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].order < pq[j].order
}

func (pq frontier) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
}

// Push is called by heap.Push; x must be a *pqItem.
func (pq *frontier) Push(x any) {
	*pq = append(*pq, x.(*pqItem))
}

// Pop is called by heap.Pop.
func (pq *frontier) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
