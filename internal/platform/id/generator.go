package id

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator creates opaque IDs for new records.
type Generator interface {
	NewID() (string, error)
}

type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) NewID() (string, error) {
	v, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate uuid: %w", err)
	}
	return v.String(), nil
}

// SequenceGenerator hands out prefixed, increasing IDs. Unique within one
// process only; intended for fixtures and tests.
type SequenceGenerator struct {
	prefix string
	next   atomic.Int64
}

func NewSequenceGenerator(prefix string) *SequenceGenerator {
	return &SequenceGenerator{prefix: prefix}
}

func (g *SequenceGenerator) NewID() (string, error) {
	return fmt.Sprintf("%s-%04d", g.prefix, g.next.Add(1)), nil
}
