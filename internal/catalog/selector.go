package catalog

import (
	"fmt"
	"math/rand/v2"
)

type ISelector interface {
	Select(tag string) (string, error)
}

type Selector struct {
	catalog *Catalog
	intn    func(n int) int
}

type SelectorOption func(*Selector)

// WithRandom replaces the random source; intn must return a value in [0, n).
func WithRandom(intn func(n int) int) SelectorOption {
	return func(s *Selector) {
		s.intn = intn
	}
}

func NewSelector(c *Catalog, opts ...SelectorOption) *Selector {
	s := &Selector{
		catalog: c,
		intn:    rand.IntN,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Select picks one of the tag's responses uniformly at random.
func (s *Selector) Select(tag string) (string, error) {
	intent, ok := s.catalog.Lookup(tag)
	if !ok || len(intent.Responses) == 0 {
		return "", fmt.Errorf("%w: %q", ErrIntentNotFound, tag)
	}

	return intent.Responses[s.intn(len(intent.Responses))], nil
}
