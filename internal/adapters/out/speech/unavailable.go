package speech

import (
	"context"
	"errors"

	"logistics/internal/core/ports"
)

var ErrNotConfigured = errors.New("speech API is not configured")

// Unavailable stands in for Client when no API key is configured. Every call
// fails with ErrNotConfigured, so the rest of the API keeps working.
type Unavailable struct{}

func (Unavailable) Transcribe(context.Context, []byte, string) (string, error) {
	return "", ErrNotConfigured
}

func (Unavailable) Classify(context.Context, string) (ports.Intent, error) {
	return ports.Intent{}, ErrNotConfigured
}

func (Unavailable) Synthesize(context.Context, string, string) ([]byte, error) {
	return nil, ErrNotConfigured
}
