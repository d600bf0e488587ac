package fptree

import "testing"
import "github.com/stretchr/testify/assert"

func heads(freqs map[Item]int) []*Header {
	headers := make([]*Header, 0, len(freqs))
	for item, freq := range freqs {
		headers = append(headers, NewHeader(item, freq))
	}
	SortHeaders(headers)
	return headers
}

func chain(t *Tree, h *Header) (items []Item, freqs []int) {
	for n := h.head; n != noNode; n = t.nodes[n].link {
		items = append(items, t.nodes[n].item)
		freqs = append(freqs, t.nodes[n].freq)
	}
	return items, freqs
}

func TestInsertMergesPrefixes(x *testing.T) {
	t := assert.New(x)
	tr := NewTree(heads(map[Item]int{1: 2, 2: 2, 3: 1}))
	tr.Insert([]Item{1, 2, 3}, 1)
	tr.Insert([]Item{1, 2}, 1)
	t.Equal(3, tr.Size())
	t.Equal(2, tr.nodes[1].freq)
	t.Equal(2, tr.nodes[2].freq)
	t.Equal(1, tr.nodes[3].freq)
	t.Equal(Item(1), tr.nodes[1].item)
	t.Equal(int32(0), tr.nodes[1].parent)
	t.Equal(int32(1), tr.nodes[2].parent)
}

func TestInsertEmptyPathIsNoop(x *testing.T) {
	t := assert.New(x)
	tr := NewTree(heads(map[Item]int{1: 1}))
	tr.Insert(nil, 1)
	t.Equal(0, tr.Size())
}

func TestInsertWeights(x *testing.T) {
	t := assert.New(x)
	tr := NewTree(heads(map[Item]int{1: 7, 2: 4}))
	tr.Insert([]Item{1, 2}, 3)
	tr.Insert([]Item{1}, 4)
	t.Equal(7, tr.nodes[1].freq)
	t.Equal(3, tr.nodes[2].freq)
}

func TestBuildOrdersAndFilters(x *testing.T) {
	t := assert.New(x)
	// 9 is not in the catalog and must be dropped; 2 is the most
	// frequent so it must sit directly under the root
	headers := heads(map[Item]int{1: 2, 2: 3})
	tr := Build([]Path{
		{Items: []Item{1, 9, 2}, Weight: 1},
		{Items: []Item{2, 9}, Weight: 1},
		{Items: []Item{9}, Weight: 1},
	}, headers)
	t.Equal(2, tr.Size())
	t.Equal(Item(2), tr.nodes[1].item)
	t.Equal(2, tr.nodes[1].freq)
	t.Equal(Item(1), tr.nodes[2].item)
	t.Equal(int32(1), tr.nodes[2].parent)
}

func TestOrderBreaksTiesAscending(x *testing.T) {
	t := assert.New(x)
	tr := NewTree(heads(map[Item]int{5: 2, 3: 2, 8: 2}))
	t.Equal([]Item{3, 5, 8}, tr.order([]Item{8, 3, 5}))
}

func specExampleTree() (*Tree, []*Header) {
	// transactions {1,2,3},{1,2},{1,3},{2,3},{1,2,3}; all three items
	// occur 4 times
	headers := heads(map[Item]int{1: 4, 2: 4, 3: 4})
	tr := Build([]Path{
		{Items: []Item{1, 2, 3}, Weight: 1},
		{Items: []Item{1, 2}, Weight: 1},
		{Items: []Item{1, 3}, Weight: 1},
		{Items: []Item{2, 3}, Weight: 1},
		{Items: []Item{1, 2, 3}, Weight: 1},
	}, headers)
	return tr, headers
}

func header(headers []*Header, item Item) *Header {
	for _, h := range headers {
		if h.Item == item {
			return h
		}
	}
	return nil
}

func TestNodeLinkChainOrder(x *testing.T) {
	t := assert.New(x)
	tr, headers := specExampleTree()
	t.Equal(6, tr.Size())
	items, freqs := chain(tr, header(headers, 3))
	t.Equal([]Item{3, 3, 3}, items)
	t.Equal([]int{2, 1, 1}, freqs)
	items, freqs = chain(tr, header(headers, 1))
	t.Equal([]Item{1}, items)
	t.Equal([]int{4}, freqs)
}

func TestPrefixBases(x *testing.T) {
	t := assert.New(x)
	tr, headers := specExampleTree()
	paths, counts := tr.PrefixBases(header(headers, 3))
	t.Equal(map[Item]int{1: 3, 2: 3}, counts)
	t.Equal(3, len(paths))
	t.Equal([]Item{2, 1}, paths[0].Items)
	t.Equal(2, paths[0].Weight)
	t.Equal([]Item{1}, paths[1].Items)
	t.Equal(1, paths[1].Weight)
	t.Equal([]Item{2}, paths[2].Items)
	t.Equal(1, paths[2].Weight)
}

func TestPrefixBasesRootChildren(x *testing.T) {
	t := assert.New(x)
	// every occurrence of 1 sits directly under the root: no base paths
	headers := heads(map[Item]int{1: 3})
	tr := Build([]Path{
		{Items: []Item{1}, Weight: 1},
		{Items: []Item{1}, Weight: 2},
	}, headers)
	paths, counts := tr.PrefixBases(header(headers, 1))
	t.Equal(0, len(paths))
	t.Equal(0, len(counts))
}

func TestSingleNode(x *testing.T) {
	t := assert.New(x)
	tr, headers := specExampleTree()
	t.True(tr.SingleNode(header(headers, 1)))
	t.False(tr.SingleNode(header(headers, 3)))
}

func TestAncestors(x *testing.T) {
	t := assert.New(x)
	headers := heads(map[Item]int{1: 3, 2: 2, 3: 1})
	tr := Build([]Path{
		{Items: []Item{1, 2, 3}, Weight: 1},
		{Items: []Item{1, 2}, Weight: 1},
		{Items: []Item{1}, Weight: 1},
	}, headers)
	t.Equal([]Item{2, 1}, tr.Ancestors(header(headers, 3)))
	t.Equal([]Item(nil), tr.Ancestors(header(headers, 1)))
}

func TestSupported(x *testing.T) {
	t := assert.New(x)
	headers := Supported(map[Item]int{4: 3, 2: 3, 7: 5, 9: 1}, 3)
	t.Equal(3, len(headers))
	t.Equal(Item(2), headers[0].Item)
	t.Equal(Item(4), headers[1].Item)
	t.Equal(Item(7), headers[2].Item)
	t.Equal(5, headers[2].Freq)
}

func TestSortHeadersTies(x *testing.T) {
	t := assert.New(x)
	headers := []*Header{NewHeader(9, 2), NewHeader(1, 2), NewHeader(5, 1)}
	SortHeaders(headers)
	t.Equal(Item(5), headers[0].Item)
	t.Equal(Item(1), headers[1].Item)
	t.Equal(Item(9), headers[2].Item)
}
