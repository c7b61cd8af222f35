// Package minheap implements a minimum-priority queue backed by a binary
// heap stored in a slice.
//
// The root of the heap lives at index 0.  The parent of index i is at
// (i-1)/2, and its children are at 2i+1 and 2i+2.
//
// When several entries share the minimum priority, the one returned by
// ExtractMin is determined by heap position, not insertion order.  Callers
// must not depend on any particular tie-break.
package minheap

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"golang.org/x/exp/constraints"
)

// ErrEmptyContainer is returned when an entry is requested from an empty
// Queue.
var ErrEmptyContainer = errors.New("minheap: queue is empty")

// Queue is a minimum-priority queue of (priority, value) entries.
//
// The zero value is an empty Queue ready for use.  A Queue must not be
// mutated from more than one goroutine at a time.
type Queue[P constraints.Ordered, V any] struct {
	list []entry[P, V]
}

type entry[P constraints.Ordered, V any] struct {
	priority P
	value    V
}

// New returns an empty Queue with room for capacity entries before the
// backing store must grow.
func New[P constraints.Ordered, V any](capacity int) *Queue[P, V] {
	if capacity < 0 {
		capacity = 0
	}
	return &Queue[P, V]{list: make([]entry[P, V], 0, capacity)}
}

// Len returns the number of entries currently held.
func (q *Queue[P, V]) Len() int {
	return len(q.list)
}

// Insert adds a new entry.  Any priority is accepted, including negative and
// duplicate ones.
func (q *Queue[P, V]) Insert(priority P, value V) {
	q.list = append(q.list, entry[P, V]{priority, value})
	q.siftUp(len(q.list) - 1)
}

// ExtractMin removes and returns an entry with the minimum priority.
func (q *Queue[P, V]) ExtractMin() (P, V, error) {
	n := len(q.list)
	if n == 0 {
		var p P
		var v V
		return p, v, ErrEmptyContainer
	}

	last := q.list[n-1]
	q.list[n-1] = entry[P, V]{}
	q.list = q.list[:n-1]
	if n == 1 {
		return last.priority, last.value, nil
	}

	root := q.list[0]
	q.list[0] = last
	q.siftDown(0)
	return root.priority, root.value, nil
}

// Peek returns an entry with the minimum priority without removing it.
func (q *Queue[P, V]) Peek() (P, V, error) {
	if len(q.list) == 0 {
		var p P
		var v V
		return p, v, ErrEmptyContainer
	}
	root := q.list[0]
	return root.priority, root.value, nil
}

// Dump writes a programmer-readable debugging dump of the Queue's backing
// array, in heap order, to the given writer.
func (q *Queue[P, V]) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Queue{\n")
	fmt.Fprintf(&buf, "\tLen() = %d\n", len(q.list))
	for index, e := range q.list {
		fmt.Fprintf(&buf, "\t[%d] = {%v, %v}\n", index, e.priority, e.value)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func (q *Queue[P, V]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !(q.list[i].priority < q.list[parent].priority) {
			return
		}
		q.swap(i, parent)
		i = parent
	}
}

func (q *Queue[P, V]) siftDown(i int) {
	n := len(q.list)
	for {
		left := 2*i + 1
		if left >= n {
			return
		}

		// Pick the smaller child.  A missing right child is never
		// selected; on a tie the right child wins.
		child := left
		if right := left + 1; right < n && !(q.list[left].priority < q.list[right].priority) {
			child = right
		}

		if !(q.list[child].priority < q.list[i].priority) {
			return
		}
		q.swap(i, child)
		i = child
	}
}

func (q *Queue[P, V]) swap(i, j int) {
	q.list[i], q.list[j] = q.list[j], q.list[i]
}
