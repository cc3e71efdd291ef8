package testfixtures

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// IDGenerator produces meeting identifiers for tests. Sequential generators
// yield "<prefix>-<n>"; UUID generators yield random UUID strings.
type IDGenerator struct {
	mu      sync.Mutex
	prefix  string
	counter uint64
	random  bool
}

// NewIDGenerator returns a sequential generator. An empty prefix becomes "meeting".
func NewIDGenerator(prefix string) *IDGenerator {
	if prefix == "" {
		prefix = "meeting"
	}
	return &IDGenerator{prefix: prefix}
}

// NewUUIDGenerator returns a generator producing version 4 UUIDs.
func NewUUIDGenerator() *IDGenerator {
	return &IDGenerator{random: true}
}

// Next returns the next identifier.
func (g *IDGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.counter++
	if g.random {
		return uuid.NewString()
	}
	return fmt.Sprintf("%s-%d", g.prefix, g.counter)
}

// NextFunc exposes Next for injection into services.
func (g *IDGenerator) NextFunc() func() string {
	if g == nil {
		return func() string { return "" }
	}
	return g.Next
}

// Issued reports how many identifiers have been generated.
func (g *IDGenerator) Issued() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.counter
}
