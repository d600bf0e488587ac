package fptree

import (
	"sort"
)

// Item is an item identifier. The tree only cares about equality and
// ordering; ids carry no other meaning here.
type Item int32

// NoItem marks the root sentinel node.
const NoItem Item = -1

const noNode int32 = -1

// Path is an ordered sequence of items with an occurrence weight. A raw
// transaction is a Path with Weight 1; a conditional pattern base entry
// carries the originating node's frequency as its Weight.
type Path struct {
	Items  []Item
	Weight int
}

type node struct {
	item     Item
	freq     int
	parent   int32
	link     int32
	children map[Item]int32
}

// Tree is an FP-tree. Nodes live in an arena indexed by int32 handles;
// parent and node-link references are handles into the arena, so dropping
// a tree is just dropping the arena. nodes[0] is the root sentinel.
type Tree struct {
	nodes   []node
	headers map[Item]*Header
}

func NewTree(headers []*Header) *Tree {
	t := &Tree{
		nodes:   make([]node, 1, 16),
		headers: make(map[Item]*Header, len(headers)),
	}
	t.nodes[0] = node{item: NoItem, parent: noNode, link: noNode}
	for _, h := range headers {
		h.head = noNode
		h.tail = noNode
		t.headers[h.Item] = h
	}
	return t
}

// Build constructs a tree from weighted paths. Each path is filtered to
// the items the headers know about and sorted most frequent first (ties
// ascending id) so shared prefixes merge near the root. It serves both
// the initial tree (weight 1 per transaction) and conditional trees
// (weight carried over from the pattern base).
func Build(paths []Path, headers []*Header) *Tree {
	t := NewTree(headers)
	for _, p := range paths {
		t.Insert(t.order(p.Items), p.Weight)
	}
	return t
}

// Insert merges path into the tree, incrementing every node on the way by
// weight. The path must already be filtered and in insertion order. New
// nodes are appended to the tail of their item's node-link chain, so each
// chain runs in creation order. An empty path is a no-op.
func (t *Tree) Insert(path []Item, weight int) {
	curr := int32(0)
	for _, item := range path {
		if kid, has := t.nodes[curr].children[item]; has {
			t.nodes[kid].freq += weight
			curr = kid
			continue
		}
		kid := int32(len(t.nodes))
		t.nodes = append(t.nodes, node{
			item:   item,
			freq:   weight,
			parent: curr,
			link:   noNode,
		})
		if t.nodes[curr].children == nil {
			t.nodes[curr].children = make(map[Item]int32)
		}
		t.nodes[curr].children[item] = kid
		h := t.headers[item]
		if h.head == noNode {
			h.head = kid
		} else {
			t.nodes[h.tail].link = kid
		}
		h.tail = kid
		curr = kid
	}
}

func (t *Tree) order(items []Item) []Item {
	path := make([]Item, 0, len(items))
	for _, item := range items {
		if _, has := t.headers[item]; has {
			path = append(path, item)
		}
	}
	sort.Slice(path, func(i, j int) bool {
		a, b := t.headers[path[i]], t.headers[path[j]]
		if a.Freq == b.Freq {
			return a.Item < b.Item
		}
		return a.Freq > b.Freq
	})
	return path
}

// Size is the number of nodes in the tree, root sentinel excluded.
func (t *Tree) Size() int {
	return len(t.nodes) - 1
}
