package llm

import (
	"context"
	"strings"
	"sync"
)

// Lazy defers client construction until the first call, so a process with no
// credential configured still starts; the failure surfaces per request.
// Construction happens at most once and is safe under concurrent first use.
type Lazy struct {
	cfg    Config
	once   sync.Once
	client *Client
	err    error
}

// NewLazy wraps a config without touching the network or validating the key.
func NewLazy(cfg Config) *Lazy {
	return &Lazy{cfg: cfg}
}

// Complete builds the client on first use and forwards the call.
func (l *Lazy) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if l == nil || strings.TrimSpace(l.cfg.APIKey) == "" {
		return "", ErrNoCredential
	}
	l.once.Do(func() {
		l.client, l.err = New(l.cfg)
	})
	if l.err != nil {
		return "", l.err
	}
	return l.client.Complete(ctx, systemPrompt, userPrompt)
}
