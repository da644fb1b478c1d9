package speech

import (
	"context"
	"fmt"
)

type speechRequest struct {
	Model string `json:"model"`
	Input string `json:"input"`
	Voice string `json:"voice"`
}

// Synthesize returns MPEG audio. Voice validation happens in the query layer.
func (c *Client) Synthesize(ctx context.Context, text, voice string) ([]byte, error) {
	audio, err := c.postJSON(ctx, "/audio/speech", speechRequest{
		Model: synthesisModel,
		Input: text,
		Voice: voice,
	})
	if err != nil {
		return nil, fmt.Errorf("synthesize: %w", err)
	}
	return audio, nil
}
