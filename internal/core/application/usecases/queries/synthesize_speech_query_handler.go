package queries

import (
	"context"
	"fmt"

	"logistics/internal/core/ports"
)

type SynthesizeSpeechQueryHandler struct {
	synthesizer ports.SpeechSynthesizer
}

func NewSynthesizeSpeechQueryHandler(synthesizer ports.SpeechSynthesizer) SynthesizeSpeechQueryHandler {
	return SynthesizeSpeechQueryHandler{synthesizer: synthesizer}
}

// Handle returns MPEG audio. Backend failures are returned wrapped.
func (h SynthesizeSpeechQueryHandler) Handle(ctx context.Context, query SynthesizeSpeechQuery) ([]byte, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	audio, err := h.synthesizer.Synthesize(ctx, query.Text(), query.Voice())
	if err != nil {
		return nil, fmt.Errorf("synthesize: %w", err)
	}
	return audio, nil
}
