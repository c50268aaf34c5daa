package testutil

import (
	"context"
	"sync"
)

// MockTranslator translates from a fixed table and records every request
// as "text/lang". Unknown texts come back unchanged.
type MockTranslator struct {
	Table map[string]string

	mu       sync.Mutex
	requests []string
}

// NewMockTranslator creates a translator answering from table
func NewMockTranslator(table map[string]string) *MockTranslator {
	return &MockTranslator{Table: table}
}

func (m *MockTranslator) Translate(ctx context.Context, text, lang string) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.requests = append(m.requests, text+"/"+lang)
	if v, ok := m.Table[text]; ok {
		return v
	}
	return text
}

// Requests returns the recorded requests
func (m *MockTranslator) Requests() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.requests...)
}
