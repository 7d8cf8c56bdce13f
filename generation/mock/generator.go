package mock

import (
	"context"
	"strings"

	"github.com/poiesic/answerit/generation"
)

// MockGenerator is a test double for generation.Generator.
// It allows custom behavior injection via the GenerateFunc field.
type MockGenerator struct {
	// GenerateFunc is called by Generate if set.
	// If nil, uses default deterministic behavior.
	GenerateFunc func(ctx context.Context, query string, contexts []string) (string, error)

	callCount int
}

var _ generation.Generator = (*MockGenerator)(nil)

// NewMockGenerator creates a mock generator with default deterministic
// behavior. Returns the concrete type to allow test assertions.
func NewMockGenerator() *MockGenerator {
	return &MockGenerator{}
}

// Generate returns a deterministic assembly of query and contexts, or
// delegates to GenerateFunc when set.
func (m *MockGenerator) Generate(ctx context.Context, query string, contexts []string) (string, error) {
	m.callCount++

	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, query, contexts)
	}

	if len(contexts) == 0 {
		return "mock: no contexts for " + query, nil
	}
	return "mock: " + query + " | " + strings.Join(contexts, " | "), nil
}

// CallCount returns the number of times Generate was called.
func (m *MockGenerator) CallCount() int {
	return m.callCount
}

// Reset clears the call count and injected behavior.
func (m *MockGenerator) Reset() {
	m.callCount = 0
	m.GenerateFunc = nil
}
