// File: internal/gitrepo/order.go
package gitrepo

import (
	"bytes"
	"container/heap"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// sortOldestFirst produces a topological order over the induced subgraph:
// parents always precede children, and among commits whose parents have
// all been emitted the one with the earliest commit time goes first (hash
// order breaks exact-time ties, so the output is fully deterministic).
func sortOldestFirst(included map[plumbing.Hash]*object.Commit) []*object.Commit {
	// pending counts each commit's parents inside the subgraph; children
	// is the reverse adjacency needed to release them.
	pending := make(map[plumbing.Hash]int, len(included))
	children := make(map[plumbing.Hash][]*object.Commit, len(included))
	for _, c := range included {
		n := 0
		for _, p := range c.ParentHashes {
			if _, ok := included[p]; ok {
				n++
				children[p] = append(children[p], c)
			}
		}
		pending[c.Hash] = n
	}

	ready := &commitHeap{}
	heap.Init(ready)
	for _, c := range included {
		if pending[c.Hash] == 0 {
			heap.Push(ready, c)
		}
	}

	ordered := make([]*object.Commit, 0, len(included))
	for ready.Len() > 0 {
		c := heap.Pop(ready).(*object.Commit)
		ordered = append(ordered, c)
		for _, child := range children[c.Hash] {
			pending[child.Hash]--
			if pending[child.Hash] == 0 {
				heap.Push(ready, child)
			}
		}
	}
	return ordered
}

// commitHeap is a min-heap by commit time, then hash.
type commitHeap []*object.Commit

func (h commitHeap) Len() int { return len(h) }

func (h commitHeap) Less(i, j int) bool {
	ti, tj := h[i].Committer.When, h[j].Committer.When
	if !ti.Equal(tj) {
		return ti.Before(tj)
	}
	return bytes.Compare(h[i].Hash[:], h[j].Hash[:]) < 0
}

func (h commitHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *commitHeap) Push(x any) { *h = append(*h, x.(*object.Commit)) }

func (h *commitHeap) Pop() any {
	old := *h
	n := len(old)
	c := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return c
}
