package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"strings"

	"logistics/internal/pkg/errs"
)

type transcriptionResponse struct {
	Text string `json:"text"`
}

func (c *Client) Transcribe(ctx context.Context, audio []byte, filename string) (string, error) {
	if len(audio) == 0 {
		return "", errs.NewValueIsRequiredError("audio")
	}
	if filename == "" {
		filename = "audio.webm"
	}

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	part, err := form.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err = part.Write(audio); err != nil {
		return "", err
	}
	if err = form.WriteField("model", transcriptionModel); err != nil {
		return "", err
	}
	if err = form.WriteField("language", transcriptionLang); err != nil {
		return "", err
	}
	if err = form.Close(); err != nil {
		return "", err
	}

	raw, err := c.do(ctx, "/audio/transcriptions", form.FormDataContentType(), &body)
	if err != nil {
		return "", fmt.Errorf("transcribe: %w", err)
	}

	var resp transcriptionResponse
	if err = json.Unmarshal(raw, &resp); err != nil {
		return "", fmt.Errorf("transcribe: decode response: %w", err)
	}
	return strings.TrimSpace(resp.Text), nil
}
