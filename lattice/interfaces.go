package lattice

import (
	"fmt"
	"io"
)

import (
	"github.com/Aka2210/Hamm-Algorithm/fptree"
)

type Input func() (reader io.Reader, closer func())

type Loader interface {
	Load(input Input) (DataType, error)
}

// DataType is a loaded transactional dataset: the catalog of frequent
// items and the transactions filtered down to them.
type DataType interface {
	Support() int
	Txs() int
	Headers() []*fptree.Header
	Transactions() []fptree.Path
	Close() error
}

// Pattern is a discovered frequent itemset. Items are in ascending order
// and the pattern is never mutated after it is reported.
type Pattern struct {
	Items   []fptree.Item
	Support int
}

func (p *Pattern) String() string {
	return fmt.Sprintf("<Pattern %v %v>", p.Items, p.Support)
}

type Formatter interface {
	FileExt() string
	FormatPattern(w io.Writer, p *Pattern) error
}
