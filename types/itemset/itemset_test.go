package itemset

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

import "github.com/stretchr/testify/assert"

import (
	"github.com/Aka2210/Hamm-Algorithm/config"
	"github.com/Aka2210/Hamm-Algorithm/fptree"
	"github.com/Aka2210/Hamm-Algorithm/lattice"
)

func load(t *assert.Assertions, conf *config.Config, text string) lattice.DataType {
	sets, err := NewItemSets(conf, NewIntLoader)
	t.Nil(err)
	input := func() (io.Reader, func()) {
		return strings.NewReader(text), func() {}
	}
	dt, err := sets.Loader().Load(input)
	t.Nil(err)
	return dt
}

func TestLoad(x *testing.T) {
	t := assert.New(x)
	dt := load(t, &config.Config{SupportRate: 0.5}, "1 2 3\n1 2\n1 4\n2\n")
	defer dt.Close()
	t.Equal(4, dt.Txs())
	// ceil(0.5 * 4) == 2
	t.Equal(2, dt.Support())
	headers := dt.Headers()
	t.Equal(2, len(headers))
	t.Equal(fptree.Item(1), headers[0].Item)
	t.Equal(3, headers[0].Freq)
	t.Equal(fptree.Item(2), headers[1].Item)
	t.Equal(3, headers[1].Freq)
	txs := dt.Transactions()
	t.Equal(4, len(txs))
	t.Equal([]fptree.Item{1, 2}, txs[0].Items)
	t.Equal(1, txs[0].Weight)
	t.Equal([]fptree.Item{2}, txs[3].Items)
}

func TestLoadSkipsJunkColumns(x *testing.T) {
	t := assert.New(x)
	dt := load(t, &config.Config{Support: 1}, "1 x 2\n\n-3 1\n")
	defer dt.Close()
	// the blank line is not a transaction, the junk columns are dropped
	t.Equal(2, dt.Txs())
	headers := dt.Headers()
	t.Equal(2, len(headers))
	t.Equal(fptree.Item(2), headers[0].Item)
	t.Equal(1, headers[0].Freq)
	t.Equal(fptree.Item(1), headers[1].Item)
	t.Equal(2, headers[1].Freq)
}

func TestHeaderOrderTies(x *testing.T) {
	t := assert.New(x)
	dt := load(t, &config.Config{Support: 1}, "5 3\n3 5\n7\n")
	defer dt.Close()
	headers := dt.Headers()
	t.Equal(3, len(headers))
	t.Equal(fptree.Item(7), headers[0].Item)
	t.Equal(fptree.Item(3), headers[1].Item)
	t.Equal(fptree.Item(5), headers[2].Item)
}

func TestSupportRateCeiling(x *testing.T) {
	t := assert.New(x)
	dt := load(t, &config.Config{SupportRate: 0.4}, "1\n1\n1\n1\n1\n")
	defer dt.Close()
	// ceil(0.4 * 5) == 2
	t.Equal(2, dt.Support())
}

func TestInfrequentDropped(x *testing.T) {
	t := assert.New(x)
	dt := load(t, &config.Config{Support: 2}, "1 9\n1\n")
	defer dt.Close()
	t.Equal(1, len(dt.Headers()))
	txs := dt.Transactions()
	t.Equal(2, len(txs))
	t.Equal([]fptree.Item{1}, txs[0].Items)
}

func TestFormatterCounts(x *testing.T) {
	t := assert.New(x)
	f := &Formatter{Ratios: false, Txs: 4}
	var buf bytes.Buffer
	err := f.FormatPattern(&buf, &lattice.Pattern{Items: []fptree.Item{1, 2}, Support: 3})
	t.Nil(err)
	t.Equal("1 2 #SUP: 3\n", buf.String())
}

func TestFormatterRatios(x *testing.T) {
	t := assert.New(x)
	f := &Formatter{Ratios: true, Txs: 4}
	var buf bytes.Buffer
	err := f.FormatPattern(&buf, &lattice.Pattern{Items: []fptree.Item{1, 2}, Support: 3})
	t.Nil(err)
	t.Equal("1,2 #SUP: 0.7500\n", buf.String())
}

func TestFileExt(x *testing.T) {
	t := assert.New(x)
	f := &Formatter{}
	t.Equal(".items", f.FileExt())
}
