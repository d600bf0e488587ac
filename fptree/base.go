package fptree

import (
	"fmt"
)

// PrefixBases extracts the conditional pattern base for h: one weighted
// ancestor path per node on h's node-link chain, plus the aggregate
// per-ancestor counts used to decide which items stay frequent in the
// conditional tree. Nodes sitting directly under the root contribute no
// path; their frequency is already in h.Freq.
func (t *Tree) PrefixBases(h *Header) (paths []Path, counts map[Item]int) {
	counts = make(map[Item]int)
	for n := h.head; n != noNode; n = t.nodes[n].link {
		if t.nodes[n].item != h.Item {
			panic(fmt.Sprintf("node-link chain for item %v reached a node for item %v", h.Item, t.nodes[n].item))
		}
		freq := t.nodes[n].freq
		items := t.ancestors(n)
		for _, item := range items {
			counts[item] += freq
		}
		if len(items) > 0 {
			paths = append(paths, Path{Items: items, Weight: freq})
		}
	}
	return paths, counts
}

// SingleNode reports whether h's node-link chain has exactly one node,
// which means every occurrence of the item lies on one linear path.
func (t *Tree) SingleNode(h *Header) bool {
	return h.head != noNode && t.nodes[h.head].link == noNode
}

// Ancestors returns the ancestor chain of the single node on h's
// node-link chain, nearest ancestor first, root sentinel excluded.
func (t *Tree) Ancestors(h *Header) []Item {
	return t.ancestors(h.head)
}

func (t *Tree) ancestors(n int32) []Item {
	var items []Item
	for p := t.nodes[n].parent; t.nodes[p].item != NoItem; p = t.nodes[p].parent {
		items = append(items, t.nodes[p].item)
	}
	return items
}
