package llm

import (
	"context"
	"sync"
)

// CompleteCall records the arguments of one Complete invocation.
type CompleteCall struct {
	SystemPrompt string
	Messages     []Message
}

// MockCompleter is a deterministic Completer implementation for testing.
type MockCompleter struct {
	// Responses are consumed in order, one per Complete call.
	// When exhausted, Response is returned instead.
	Responses []string

	// Response is the fallback text returned by Complete.
	Response string

	// Err, if set, is returned by Complete instead of a response.
	Err error

	mu    sync.Mutex
	calls []CompleteCall
	next  int
}

// NewMockCompleter creates a mock completer with the given fixed response.
func NewMockCompleter(response string) *MockCompleter {
	return &MockCompleter{Response: response}
}

// NewMockCompleterWithError creates a mock completer that always fails.
func NewMockCompleterWithError(err error) *MockCompleter {
	return &MockCompleter{Err: err}
}

// Complete records the call and returns the next configured response.
func (m *MockCompleter) Complete(ctx context.Context, systemPrompt string, messages []Message) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	msgs := make([]Message, len(messages))
	copy(msgs, messages)
	m.calls = append(m.calls, CompleteCall{SystemPrompt: systemPrompt, Messages: msgs})

	if m.Err != nil {
		return "", m.Err
	}
	if m.next < len(m.Responses) {
		resp := m.Responses[m.next]
		m.next++
		return resp, nil
	}
	return m.Response, nil
}

// Calls returns a copy of all recorded invocations.
func (m *MockCompleter) Calls() []CompleteCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	calls := make([]CompleteCall, len(m.calls))
	copy(calls, m.calls)
	return calls
}

// CallCount returns the number of Complete invocations.
func (m *MockCompleter) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}
