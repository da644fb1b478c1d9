package commands

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrProcessVoiceCommandIsNotConstructed = errors.New(
	"ProcessVoiceCommand must be created via NewProcessVoiceCommand constructor",
)

// ProcessVoiceCommand carries a driver's recorded instruction.
type ProcessVoiceCommand struct {
	actor    *account.Account
	audio    []byte
	filename string

	guard guard.ConstructorGuard
}

func NewProcessVoiceCommand(actor *account.Account, audio []byte, filename string) (ProcessVoiceCommand, error) {
	var audioErr error
	if len(audio) == 0 {
		audioErr = errs.NewValueIsRequiredError("audio")
	}

	if err := errors.Join(validateActor(actor), audioErr); err != nil {
		return ProcessVoiceCommand{}, err
	}

	filename = strings.TrimSpace(filename)
	if filename == "" {
		filename = "audio.wav"
	}

	return ProcessVoiceCommand{
		actor:    actor,
		audio:    audio,
		filename: filename,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c ProcessVoiceCommand) Validate() error {
	return c.guard.Validate(ErrProcessVoiceCommandIsNotConstructed)
}

func (c ProcessVoiceCommand) Actor() *account.Account {
	return c.actor
}

func (c ProcessVoiceCommand) Audio() []byte {
	return c.audio
}

func (c ProcessVoiceCommand) Filename() string {
	return c.filename
}
