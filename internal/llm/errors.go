package llm

import (
	"errors"
	"fmt"
)

// ErrNoCredential means no API key is configured. The capability is simply
// unconfigured: fatal to the request, not to the process.
var ErrNoCredential = errors.New("llm: no API key configured")

// ErrTimeout means the provider did not answer within the bounded wait.
var ErrTimeout = errors.New("llm: provider timeout")

// ProviderError is a non-success answer from the provider side.
type ProviderError struct {
	Status  int
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("llm: provider error (status %d): %s", e.Status, e.Message)
}
