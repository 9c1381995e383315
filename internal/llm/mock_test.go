package llm

import (
	"context"
	"errors"
	"testing"
)

func TestMockCompleterFixedResponse(t *testing.T) {
	mock := NewMockCompleter("hello")

	got, err := mock.Complete(context.Background(), "system", []Message{{Role: RoleUser, Content: "hi"}})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got != "hello" {
		t.Errorf("Expected %q, got %q", "hello", got)
	}
	if mock.CallCount() != 1 {
		t.Errorf("Expected 1 recorded call, got %d", mock.CallCount())
	}
}

func TestMockCompleterResponseQueue(t *testing.T) {
	mock := &MockCompleter{
		Responses: []string{"first", "second"},
		Response:  "fallback",
	}

	msgs := []Message{{Role: RoleUser, Content: "hi"}}
	for i, want := range []string{"first", "second", "fallback", "fallback"} {
		got, err := mock.Complete(context.Background(), "system", msgs)
		if err != nil {
			t.Fatalf("Call %d failed: %v", i+1, err)
		}
		if got != want {
			t.Errorf("Call %d: expected %q, got %q", i+1, want, got)
		}
	}
}

func TestMockCompleterError(t *testing.T) {
	boom := errors.New("boom")
	mock := NewMockCompleterWithError(boom)

	_, err := mock.Complete(context.Background(), "system", []Message{{Role: RoleUser, Content: "hi"}})
	if !errors.Is(err, boom) {
		t.Errorf("Expected configured error, got %v", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("Expected call recorded even on error, got %d", mock.CallCount())
	}
}

func TestMockCompleterRecordsArguments(t *testing.T) {
	mock := NewMockCompleter("ok")

	_, _ = mock.Complete(context.Background(), "the system prompt", []Message{
		{Role: RoleUser, Content: "first"},
		{Role: RoleUser, Content: "second"},
	})

	calls := mock.Calls()
	if len(calls) != 1 {
		t.Fatalf("Expected 1 call, got %d", len(calls))
	}
	if calls[0].SystemPrompt != "the system prompt" {
		t.Errorf("Expected system prompt recorded, got %q", calls[0].SystemPrompt)
	}
	if len(calls[0].Messages) != 2 || calls[0].Messages[1].Content != "second" {
		t.Errorf("Expected messages recorded in order, got %+v", calls[0].Messages)
	}
}
