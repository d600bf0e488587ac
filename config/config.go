package config

import (
	"math/rand"
	"path/filepath"
)

import (
	"github.com/Aka2210/Hamm-Algorithm/stores/intint"
)

type Config struct {
	Cache       string
	Output      string
	Support     int     // minimum support as an absolute count
	SupportRate float64 // minimum support as a fraction of the transaction count
	MaxDepth    int     // recursion depth cap for mining, 0 = unbounded
}

func (c *Config) Copy() *Config {
	return &Config{
		Cache:       c.Cache,
		Output:      c.Output,
		Support:     c.Support,
		SupportRate: c.SupportRate,
		MaxDepth:    c.MaxDepth,
	}
}

func (c *Config) Randstr() string {
	runes := make([]rune, 0, 10)
	for i := 0; i < 10; i++ {
		runes = append(runes, rune(97+rand.Intn(26)))
	}
	return string(runes)
}

func (c *Config) CacheFile(name string) string {
	return filepath.Join(c.Cache, name)
}

func (c *Config) OutputFile(name string) string {
	return filepath.Join(c.Output, name)
}

func (c *Config) IntIntMultiMap(name string) (intint.MultiMap, error) {
	if c.Cache == "" {
		return intint.AnonBpTree()
	} else {
		return intint.NewBpTree(c.CacheFile(name + "-" + c.Randstr() + ".bptree"))
	}
}
