// Package gen fills lists with random values.
package gen

import (
	"time"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/rand"

	"github.com/alanpx/listsort/algorithm"
)

type Generator struct {
	rnd *rand.Rand
	min int64
	max int64
}

// New returns a generator of values in [min, max]. A zero seed is replaced by
// the current time.
func New(seed uint64, min, max int64) (*Generator, error) {
	if min > max {
		return nil, errors.Newf("min %d greater than max %d", min, max)
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Generator{rand.New(rand.NewSource(seed)), min, max}, nil
}

func (g *Generator) Value() int64 {
	span := uint64(g.max - g.min)
	if span == ^uint64(0) {
		return int64(g.rnd.Uint64())
	}
	return g.min + int64(g.rnd.Uint64n(span+1))
}

// Fill releases l and prepends n fresh values.
func (g *Generator) Fill(l *algorithm.List, n int) error {
	if n <= 0 {
		return errors.Newf("need a positive count, got %d", n)
	}
	l.Release()
	for i := 0; i < n; i++ {
		l.Prepend(g.Value())
	}
	algorithm.DPrintf("gen: %d values in [%d, %d]", n, g.min, g.max)
	return nil
}

func (g *Generator) List(n int) (*algorithm.List, error) {
	l := &algorithm.List{}
	if err := g.Fill(l, n); err != nil {
		return nil, err
	}
	return l, nil
}
