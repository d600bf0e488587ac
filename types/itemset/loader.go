package itemset

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"
)

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/Aka2210/Hamm-Algorithm/config"
	"github.com/Aka2210/Hamm-Algorithm/fptree"
	"github.com/Aka2210/Hamm-Algorithm/lattice"
	"github.com/Aka2210/Hamm-Algorithm/stores/intint"
)

type MakeLoader func(*ItemSets) lattice.Loader

// ItemSets is the item catalog: global item counts kept in an inverted
// index (item -> transaction), the frequent items as a sorted header
// list, and the transactions filtered down to catalog items.
type ItemSets struct {
	InvertedIndex intint.MultiMap
	headers       []*fptree.Header
	transactions  []fptree.Path
	txs           int
	support       int
	makeLoader    MakeLoader
	config        *config.Config
}

func NewItemSets(config *config.Config, makeLoader MakeLoader) (i *ItemSets, err error) {
	index, err := config.IntIntMultiMap("itemsets-inverted")
	if err != nil {
		return nil, err
	}
	i = &ItemSets{
		InvertedIndex: index,
		makeLoader:    makeLoader,
		config:        config,
	}
	return i, nil
}

func (i *ItemSets) Loader() lattice.Loader {
	return i.makeLoader(i)
}

func (i *ItemSets) Support() int {
	return i.support
}

func (i *ItemSets) Txs() int {
	return i.txs
}

// Headers is the root header list in mining order: ascending frequency,
// ties broken by ascending item id.
func (i *ItemSets) Headers() []*fptree.Header {
	return i.headers
}

func (i *ItemSets) Transactions() []fptree.Path {
	return i.transactions
}

func (i *ItemSets) Close() error {
	return i.InvertedIndex.Delete()
}

// FromTransactions runs catalog construction on an in-memory dataset.
func (i *ItemSets) FromTransactions(txs [][]fptree.Item) (lattice.DataType, error) {
	err := i.catalog(txs)
	if err != nil {
		return nil, err
	}
	return i, nil
}

func (i *ItemSets) catalog(raw [][]fptree.Item) error {
	for tx, items := range raw {
		for _, item := range items {
			err := i.InvertedIndex.Add(int32(item), int32(tx))
			if err != nil {
				return err
			}
		}
	}
	i.txs = len(raw)
	i.support = i.config.Support
	if i.support <= 0 {
		i.support = int(math.Ceil(i.config.SupportRate * float64(i.txs)))
	}
	if i.support < 1 {
		i.support = 1
	}
	headers := make([]*fptree.Header, 0, 10)
	citem := int32(-1)
	count := 0
	err := intint.Do(i.InvertedIndex.Iterate, func(item, tx int32) error {
		if count > 0 && item != citem {
			if count >= i.support {
				headers = append(headers, fptree.NewHeader(fptree.Item(citem), count))
			}
			count = 0
		}
		citem = item
		count++
		return nil
	})
	if err != nil {
		return err
	}
	if count > 0 && count >= i.support {
		headers = append(headers, fptree.NewHeader(fptree.Item(citem), count))
	}
	fptree.SortHeaders(headers)
	i.headers = headers

	frequent := make(map[fptree.Item]bool, len(headers))
	for _, h := range headers {
		frequent[h.Item] = true
	}
	paths := make([]fptree.Path, 0, len(raw))
	for _, items := range raw {
		filtered := make([]fptree.Item, 0, len(items))
		for _, item := range items {
			if frequent[item] {
				filtered = append(filtered, item)
			}
		}
		if len(filtered) > 0 {
			paths = append(paths, fptree.Path{Items: filtered, Weight: 1})
		}
	}
	i.transactions = paths
	return nil
}

// IntLoader reads transactions as lines of space separated integer item
// ids. Non-integer and negative columns are skipped with a warning; the
// line still counts as a transaction.
type IntLoader struct {
	sets *ItemSets
}

func NewIntLoader(sets *ItemSets) lattice.Loader {
	return &IntLoader{
		sets: sets,
	}
}

func (l *IntLoader) Load(input lattice.Input) (lattice.DataType, error) {
	reader, closer := input()
	defer closer()
	raw, err := l.parse(reader)
	if err != nil {
		return nil, err
	}
	return l.sets.FromTransactions(raw)
}

func (l *IntLoader) parse(input io.Reader) ([][]fptree.Item, error) {
	scanner := bufio.NewScanner(input)
	raw := make([][]fptree.Item, 0, 10)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		items := make([]fptree.Item, 0, 10)
		for _, col := range strings.Split(line, " ") {
			if col == "" {
				continue
			}
			id, err := strconv.Atoi(col)
			if err != nil {
				errors.Logf("WARN", "input line %d contained non int '%s'", len(raw), col)
				continue
			}
			if id < 0 {
				errors.Logf("WARN", "input line %d contained negative item %d", len(raw), id)
				continue
			}
			items = append(items, fptree.Item(id))
		}
		raw = append(raw, items)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return raw, nil
}
