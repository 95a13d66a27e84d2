package testfixtures

import (
	"fmt"
	"sync"
)

// TokenGenerator produces deterministic session tokens for tests.
type TokenGenerator struct {
	mu      sync.Mutex
	prefix  string
	counter uint64
}

// NewTokenGenerator constructs a generator that yields tokens with the given
// prefix. When prefix is empty, "token" is used.
func NewTokenGenerator(prefix string) *TokenGenerator {
	if prefix == "" {
		prefix = "token"
	}
	return &TokenGenerator{prefix: prefix}
}

// Next returns the next token in the sequence.
func (g *TokenGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.counter++
	return fmt.Sprintf("%s-%d", g.prefix, g.counter)
}

// NextFunc exposes Next as a function suitable for dependency injection.
func (g *TokenGenerator) NextFunc() func() string {
	if g == nil {
		return func() string { return "" }
	}
	return g.Next
}

// SetCounter overrides the internal counter, enabling deterministic resets.
func (g *TokenGenerator) SetCounter(counter uint64) {
	g.mu.Lock()
	g.counter = counter
	g.mu.Unlock()
}
