package itemset

import (
	"fmt"
	"io"
	"strings"
)

import (
	"github.com/Aka2210/Hamm-Algorithm/lattice"
)

// Formatter writes one line per pattern. The default mode joins items
// with spaces and prints the raw support count; ratio mode joins items
// with commas and prints support as a fraction of the transaction count
// rounded to four decimals.
type Formatter struct {
	Ratios bool
	Txs    int
}

func NewFormatter(dt lattice.DataType, ratios bool) *Formatter {
	return &Formatter{Ratios: ratios, Txs: dt.Txs()}
}

func (f *Formatter) FileExt() string {
	return ".items"
}

func (f *Formatter) FormatPattern(w io.Writer, p *lattice.Pattern) error {
	if f.Ratios {
		ratio := float64(p.Support) / float64(f.Txs)
		_, err := fmt.Fprintf(w, "%s #SUP: %.4f\n", f.items(p, ","), ratio)
		return err
	}
	_, err := fmt.Fprintf(w, "%s #SUP: %d\n", f.items(p, " "), p.Support)
	return err
}

func (f *Formatter) items(p *lattice.Pattern, sep string) string {
	cols := make([]string, 0, len(p.Items))
	for _, item := range p.Items {
		cols = append(cols, fmt.Sprintf("%d", item))
	}
	return strings.Join(cols, sep)
}
