package queries

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

const (
	DefaultVoice        = "nova"
	maxSpeechTextLength = 4096
)

var ErrSynthesizeSpeechQueryIsNotConstructed = errors.New(
	"SynthesizeSpeechQuery must be created via NewSynthesizeSpeechQuery constructor",
)

// Voices lists the voices the speech backend offers.
func Voices() []string {
	return []string{"alloy", "echo", "fable", "onyx", "nova", "shimmer"}
}

// SynthesizeSpeechQuery renders a reply for the driver as audio.
type SynthesizeSpeechQuery struct {
	text  string
	voice string

	guard guard.ConstructorGuard
}

// NewSynthesizeSpeechQuery uses DefaultVoice when voice is empty.
func NewSynthesizeSpeechQuery(text, voice string) (SynthesizeSpeechQuery, error) {
	q := SynthesizeSpeechQuery{
		text:  strings.TrimSpace(text),
		voice: strings.ToLower(strings.TrimSpace(voice)),
		guard: guard.NewConstructorGuard(),
	}
	if q.voice == "" {
		q.voice = DefaultVoice
	}

	var problems []error
	switch n := utf8.RuneCountInString(q.text); {
	case n == 0:
		problems = append(problems, errs.NewValueIsRequiredError("text"))
	case n > maxSpeechTextLength:
		problems = append(problems, errs.NewValueIsOutOfRangeError("text length", n, 1, maxSpeechTextLength))
	}
	if !isVoice(q.voice) {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("voice",
			fmt.Errorf("%q is not valid, must be one of: %s", voice, strings.Join(Voices(), ", "))))
	}

	if err := errors.Join(problems...); err != nil {
		return SynthesizeSpeechQuery{}, err
	}
	return q, nil
}

func (q SynthesizeSpeechQuery) Validate() error {
	return q.guard.Validate(ErrSynthesizeSpeechQueryIsNotConstructed)
}

func (q SynthesizeSpeechQuery) Text() string {
	return q.text
}

func (q SynthesizeSpeechQuery) Voice() string {
	return q.voice
}

func isVoice(v string) bool {
	for _, known := range Voices() {
		if v == known {
			return true
		}
	}
	return false
}
