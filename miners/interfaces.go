package miners

import (
	"github.com/Aka2210/Hamm-Algorithm/lattice"
)

// Note: the miner's Close function should close both reporter and the datatype that were passed into it.
type Miner interface {
	Mine(lattice.DataType, Reporter) error
	Close() error
}

type Reporter interface {
	Report(*lattice.Pattern) error
	Close() error
}
