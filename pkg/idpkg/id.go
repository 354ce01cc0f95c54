// Package idpkg provides identifier generators for ledger entities.
package idpkg

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// Strategies accepted by New.
const (
	StrategyUUID     = "uuid"
	StrategySequence = "sequence"
)

// Generator produces identifiers that are unique within one process.
type Generator interface {
	NewID() string
}

// UUID generates random version 4 UUIDs.
type UUID struct{}

// NewID returns a new UUID string.
func (UUID) NewID() string {
	return uuid.NewString()
}

// Sequence generates monotonically increasing identifiers such as "id-000001".
type Sequence struct {
	prefix string
	next   uint64
}

// NewSequence returns a sequence starting at 1.
func NewSequence(prefix string) *Sequence {
	return &Sequence{prefix: prefix}
}

// NewID returns the next identifier of the sequence.
func (s *Sequence) NewID() string {
	n := atomic.AddUint64(&s.next, 1)
	return fmt.Sprintf("%s-%06d", s.prefix, n)
}

// New returns the generator for the given strategy.
func New(strategy string) (Generator, error) {
	switch strategy {
	case "", StrategyUUID:
		return UUID{}, nil
	case StrategySequence:
		return NewSequence("id"), nil
	default:
		return nil, fmt.Errorf("unknown id strategy %q", strategy)
	}
}
