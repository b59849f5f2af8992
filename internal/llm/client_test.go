package llm

import (
	"context"
	"errors"
	"testing"
)

func TestNewRequiresAPIKey(t *testing.T) {
	if _, err := New(Config{}); !errors.Is(err, ErrNoCredential) {
		t.Fatalf("err = %v, want ErrNoCredential", err)
	}
	if _, err := New(Config{APIKey: "   "}); !errors.Is(err, ErrNoCredential) {
		t.Fatalf("whitespace key: err = %v, want ErrNoCredential", err)
	}
}

func TestLazyWithoutCredential(t *testing.T) {
	lazy := NewLazy(Config{})
	_, err := lazy.Complete(context.Background(), "system", "user")
	if !errors.Is(err, ErrNoCredential) {
		t.Fatalf("err = %v, want ErrNoCredential", err)
	}
}

func TestClientRejectsEmptyPrompts(t *testing.T) {
	client, err := New(Config{APIKey: "test-key"})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if _, err := client.Complete(context.Background(), "", "user"); err == nil {
		t.Error("expected error for empty system prompt")
	}
	if _, err := client.Complete(context.Background(), "system", ""); err == nil {
		t.Error("expected error for empty user prompt")
	}
}

func TestProviderErrorMessage(t *testing.T) {
	err := &ProviderError{Status: 500, Message: "boom"}
	if err.Error() == "" {
		t.Error("empty error message")
	}
}
