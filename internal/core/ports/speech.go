package ports

import (
	"context"
)

// Intent is the classifier's reading of a driver's utterance.
type Intent struct {
	Name       string
	Entities   map[string]string
	Confidence float64
}

// SpeechRecognizer turns recorded audio into text.
type SpeechRecognizer interface {
	Transcribe(ctx context.Context, audio []byte, filename string) (string, error)
}

// IntentClassifier extracts the driver's intent and its entities
// (shipment number, status, reason, amount) from a transcription.
type IntentClassifier interface {
	Classify(ctx context.Context, text string) (Intent, error)
}

// SpeechSynthesizer renders a spoken reply. The returned audio is MPEG.
type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, text, voice string) ([]byte, error)
}
