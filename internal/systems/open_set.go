package systems

import "container/heap"

// pathNode is per-search A* scratch, one per grid cell.
type pathNode struct {
	g, h, f   int
	visited   bool
	closed    bool
	parent    int // cell index, -1 for the start
	heapIndex int // position in the open set, -1 when not queued
}

// openSet реализует heap.Interface над индексами клеток арены.
// Позиция каждой клетки в куче хранится в pathNode.heapIndex, что даёт decrease-key через heap.Fix.
type openSet struct {
	items []int
	nodes []pathNode
}

func newOpenSet(nodes []pathNode) *openSet {
	return &openSet{nodes: nodes}
}

func (o *openSet) Len() int { return len(o.items) }

func (o *openSet) Less(i, j int) bool {
	a, b := &o.nodes[o.items[i]], &o.nodes[o.items[j]]
	if a.f != b.f {
		return a.f < b.f
	}
	// При равном f раньше раскрываем узел ближе к цели.
	return a.h < b.h
}

func (o *openSet) Swap(i, j int) {
	o.items[i], o.items[j] = o.items[j], o.items[i]
	o.nodes[o.items[i]].heapIndex = i
	o.nodes[o.items[j]].heapIndex = j
}

func (o *openSet) Push(x interface{}) {
	id := x.(int)
	o.nodes[id].heapIndex = len(o.items)
	o.items = append(o.items, id)
}

func (o *openSet) Pop() interface{} {
	n := len(o.items)
	id := o.items[n-1]
	o.items = o.items[:n-1]
	o.nodes[id].heapIndex = -1
	return id
}

// push queues a cell whose scores are already set.
func (o *openSet) push(id int) {
	heap.Push(o, id)
}

// popMin removes the cell with the lowest f.
func (o *openSet) popMin() int {
	return heap.Pop(o).(int)
}

// rescore restores heap order after a queued cell's f decreased.
func (o *openSet) rescore(id int) {
	heap.Fix(o, o.nodes[id].heapIndex)
}

// contains reports whether the cell is currently queued.
func (o *openSet) contains(id int) bool {
	return o.nodes[id].heapIndex >= 0
}
