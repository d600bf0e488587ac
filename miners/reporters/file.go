package reporters

import (
	"io"
	"os"
)

import (
	"github.com/Aka2210/Hamm-Algorithm/config"
	"github.com/Aka2210/Hamm-Algorithm/lattice"
)

type File struct {
	config   *config.Config
	fmtr     lattice.Formatter
	patterns io.WriteCloser
}

func NewFile(c *config.Config, fmtr lattice.Formatter, patternsFilename string) (*File, error) {
	patterns, err := os.Create(c.OutputFile(patternsFilename + fmtr.FileExt()))
	if err != nil {
		return nil, err
	}
	r := &File{
		config:   c,
		fmtr:     fmtr,
		patterns: patterns,
	}
	return r, nil
}

func (r *File) Report(p *lattice.Pattern) error {
	return r.fmtr.FormatPattern(r.patterns, p)
}

func (r *File) Close() error {
	return r.patterns.Close()
}
