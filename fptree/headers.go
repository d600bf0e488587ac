package fptree

import (
	"fmt"
	"sort"
)

// Header summarizes one item within one tree: its total frequency and the
// head/tail of its node-link chain. Headers are never shared between
// trees; Build resets the chain handles on every tree it makes.
type Header struct {
	Item Item
	Freq int
	head int32
	tail int32
}

func NewHeader(item Item, freq int) *Header {
	return &Header{Item: item, Freq: freq, head: noNode, tail: noNode}
}

func (h *Header) String() string {
	return fmt.Sprintf("<Header %v %v>", h.Item, h.Freq)
}

// SortHeaders puts headers into mining order: ascending frequency, ties
// broken by ascending item id. The least frequent item is mined first.
func SortHeaders(headers []*Header) {
	sort.Slice(headers, func(i, j int) bool {
		if headers[i].Freq == headers[j].Freq {
			return headers[i].Item < headers[j].Item
		}
		return headers[i].Freq < headers[j].Freq
	})
}

// Supported turns aggregate counts into a sorted header list, keeping only
// items whose count meets the minimum support.
func Supported(counts map[Item]int, support int) []*Header {
	headers := make([]*Header, 0, len(counts))
	for item, count := range counts {
		if count >= support {
			headers = append(headers, NewHeader(item, count))
		}
	}
	SortHeaders(headers)
	return headers
}
