package reporters

import (
	"github.com/Aka2210/Hamm-Algorithm/lattice"
)

type Collector struct {
	Patterns []*lattice.Pattern
}

func (c *Collector) Report(p *lattice.Pattern) error {
	c.Patterns = append(c.Patterns, p)
	return nil
}

func (c *Collector) Close() error {
	return nil
}
