package growth

import (
	"sort"
)

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/Aka2210/Hamm-Algorithm/config"
	"github.com/Aka2210/Hamm-Algorithm/fptree"
	"github.com/Aka2210/Hamm-Algorithm/lattice"
	"github.com/Aka2210/Hamm-Algorithm/miners"
	"github.com/Aka2210/Hamm-Algorithm/miners/reporters"
	"github.com/Aka2210/Hamm-Algorithm/types/itemset"
)

// Miner runs the fp-growth algorithm: build the root tree, then for each
// frequent item extract its conditional pattern base and recurse into a
// conditional tree, short-circuiting single linear chains with direct
// subset enumeration.
type Miner struct {
	Config *config.Config
	Dt     lattice.DataType
	Rptr   miners.Reporter
	// NoSinglePath forces full conditional-tree recursion where the
	// single-path shortcut would normally apply. Both produce the same
	// pattern set; the toggle exists for differential testing.
	NoSinglePath bool
	support      int
}

func NewMiner(conf *config.Config) *Miner {
	return &Miner{
		Config: conf,
	}
}

func (m *Miner) Init(dt lattice.DataType, rptr miners.Reporter) (err error) {
	m.Dt = dt
	m.Rptr = rptr
	m.support = dt.Support()
	return nil
}

func (m *Miner) Close() error {
	errs := make(chan error)
	go func() {
		errs <- m.Dt.Close()
	}()
	go func() {
		errs <- m.Rptr.Close()
	}()
	for i := 0; i < 2; i++ {
		err := <-errs
		if err != nil {
			return err
		}
	}
	return nil
}

func (m *Miner) Mine(dt lattice.DataType, rptr miners.Reporter) error {
	err := m.Init(dt, rptr)
	if err != nil {
		return err
	}
	errors.Logf("INFO", "building initial tree over %v transactions, min support %v", dt.Txs(), m.support)
	headers := dt.Headers()
	tree := fptree.Build(dt.Transactions(), headers)
	errors.Logf("INFO", "initial tree has %v nodes over %v frequent items, starting growth", tree.Size(), len(headers))
	err = m.mine(tree, headers, nil, 1)
	if err != nil {
		return err
	}
	errors.Logf("INFO", "exiting Mine")
	return nil
}

// mine processes one tree. Headers arrive in ascending frequency order
// and every header's frequency already passed the support filter, so
// prefix+item is reported unconditionally before the item's conditional
// base is examined.
func (m *Miner) mine(t *fptree.Tree, headers []*fptree.Header, prefix []fptree.Item, depth int) error {
	if m.Config.MaxDepth > 0 && depth > m.Config.MaxDepth {
		return errors.Errorf("mining recursion reached depth %v, over the configured cap %v", depth, m.Config.MaxDepth)
	}
	for _, h := range headers {
		pattern := make([]fptree.Item, 0, len(prefix)+1)
		pattern = append(pattern, prefix...)
		pattern = append(pattern, h.Item)
		err := m.report(pattern, h.Freq)
		if err != nil {
			return err
		}
		if !m.NoSinglePath && t.SingleNode(h) {
			err := m.enumerate(t.Ancestors(h), h.Freq, pattern, len(pattern))
			if err != nil {
				return err
			}
			continue
		}
		paths, counts := t.PrefixBases(h)
		condHeaders := fptree.Supported(counts, m.support)
		if len(condHeaders) == 0 {
			continue
		}
		cond := fptree.Build(paths, condHeaders)
		err = m.mine(cond, condHeaders, pattern, depth+1)
		if err != nil {
			return err
		}
	}
	return nil
}

// enumerate reports pattern extended by every subset of chain. The items
// on a single linear chain co-occur with the header item in exactly the
// same transactions, so every extension shares the one support value and
// the support test cannot fail today; it only guards a future base with
// non-uniform branch supports. The subset that picks no ancestors is
// skipped, mine already reported it.
func (m *Miner) enumerate(chain []fptree.Item, support int, pattern []fptree.Item, mandatory int) error {
	if support < m.support {
		return nil
	}
	if len(chain) == 0 {
		if len(pattern) == mandatory {
			return nil
		}
		return m.report(pattern, support)
	}
	err := m.enumerate(chain[1:], support, pattern, mandatory)
	if err != nil {
		return err
	}
	return m.enumerate(chain[1:], support, append(pattern, chain[0]), mandatory)
}

func (m *Miner) report(items []fptree.Item, support int) error {
	sorted := make([]fptree.Item, len(items))
	copy(sorted, items)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return m.Rptr.Report(&lattice.Pattern{Items: sorted, Support: support})
}

// Mine discovers every itemset in txs whose support meets minSupport and
// returns them materialized. It is the library entry point; the command
// line path goes through Miner with a reporter sink instead.
func Mine(txs [][]fptree.Item, minSupport int) ([]*lattice.Pattern, error) {
	conf := &config.Config{Support: minSupport}
	sets, err := itemset.NewItemSets(conf, itemset.NewIntLoader)
	if err != nil {
		return nil, err
	}
	dt, err := sets.FromTransactions(txs)
	if err != nil {
		sets.Close()
		return nil, err
	}
	collector := &reporters.Collector{}
	m := NewMiner(conf)
	mineErr := m.Mine(dt, collector)
	err = m.Close()
	if mineErr != nil {
		return nil, mineErr
	}
	if err != nil {
		return nil, err
	}
	return collector.Patterns, nil
}
