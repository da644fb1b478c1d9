package speech

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"logistics/internal/core/ports"
)

const classificationPrompt = `You are a voice assistant for delivery drivers in a logistics app.
Extract the intent and entities from the driver's speech.

Possible intents:
- confirm_pickup: driver confirms picking up a shipment
- confirm_delivery: driver confirms delivering a shipment
- update_status: driver wants to change the shipment status
- report_delay: driver reports a delay
- update_cod: driver reports collecting cash on delivery
- unknown: anything else

Possible entities:
- shipment_id: shipment number such as SHP123
- status: one of PICKED_UP, IN_TRANSIT, OUT_FOR_DELIVERY, DELIVERED
- reason: reason for a delay (traffic, weather, vehicle_issue, customer_unavailable, address_issue, other)
- amount: amount of cash collected

Reply with JSON only: {"intent": "...", "entities": {...}, "confidence": 0.0}`

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type classification struct {
	Intent     string         `json:"intent"`
	Entities   map[string]any `json:"entities"`
	Confidence float64        `json:"confidence"`
}

func (c *Client) Classify(ctx context.Context, text string) (ports.Intent, error) {
	raw, err := c.postJSON(ctx, "/chat/completions", chatRequest{
		Model: classificationModel,
		Messages: []chatMessage{
			{Role: "system", Content: classificationPrompt},
			{Role: "user", Content: text},
		},
		Temperature: classificationTemp,
	})
	if err != nil {
		return ports.Intent{}, fmt.Errorf("classify: %w", err)
	}

	var resp chatResponse
	if err = json.Unmarshal(raw, &resp); err != nil {
		return ports.Intent{}, fmt.Errorf("classify: decode response: %w", err)
	}
	if len(resp.Choices) == 0 {
		return ports.Intent{}, fmt.Errorf("classify: empty response")
	}

	var parsed classification
	content := stripCodeFence(resp.Choices[0].Message.Content)
	if err = json.Unmarshal([]byte(content), &parsed); err != nil {
		return ports.Intent{}, fmt.Errorf("classify: decode intent: %w", err)
	}

	return ports.Intent{
		Name:       strings.ToLower(strings.TrimSpace(parsed.Intent)),
		Entities:   entityStrings(parsed.Entities),
		Confidence: parsed.Confidence,
	}, nil
}

// stripCodeFence removes a markdown ```json fence some models wrap replies in.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func entityStrings(entities map[string]any) map[string]string {
	out := make(map[string]string, len(entities))
	for k, v := range entities {
		switch val := v.(type) {
		case nil:
		case string:
			out[k] = val
		case float64:
			out[k] = strconv.FormatFloat(val, 'f', -1, 64)
		case bool:
			out[k] = strconv.FormatBool(val)
		default:
			out[k] = fmt.Sprint(val)
		}
	}
	return out
}
