package http

import (
	"errors"
	"io"
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const audioFormField = "audio_file"

// voiceCommand accepts the recording as multipart field audio_file.
func (s *Server) voiceCommand(c echo.Context) error {
	header, err := c.FormFile(audioFormField)
	if err != nil {
		return errs.NewValueIsRequiredErrorWithCause(audioFormField, err)
	}
	if header.Size > s.maxAudioBytes {
		return errs.NewValueIsOutOfRangeError(audioFormField, header.Size, 1, s.maxAudioBytes)
	}

	file, err := header.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	audio, err := io.ReadAll(io.LimitReader(file, s.maxAudioBytes+1))
	if err != nil {
		return err
	}
	if int64(len(audio)) > s.maxAudioBytes {
		return errs.NewValueIsOutOfRangeError(audioFormField, int64(len(audio)), 1, s.maxAudioBytes)
	}

	cmd, err := commands.NewProcessVoiceCommand(actorFrom(c), audio, header.Filename)
	if err != nil {
		return err
	}

	result, err := s.h.ProcessVoice.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toVoiceCommandResponse(result))
}

// synthesizeSpeech answers with MPEG audio.
func (s *Server) synthesizeSpeech(c echo.Context) error {
	var req SpeechRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	query, err := queries.NewSynthesizeSpeechQuery(req.Text, req.Voice)
	if err != nil {
		return err
	}

	audio, err := s.h.SynthesizeSpeech.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	if len(audio) == 0 {
		return errors.New("speech synthesis returned no audio")
	}
	return c.Blob(http.StatusOK, "audio/mpeg", audio)
}

func (s *Server) voiceCommands(c echo.Context) error {
	commandsHelp := s.h.ListVoiceCommands.Handle()

	resp := make([]VoiceCommandHelpResponse, len(commandsHelp))
	for i, vc := range commandsHelp {
		resp[i] = VoiceCommandHelpResponse{Intent: vc.Intent, Examples: vc.Examples}
	}
	return c.JSON(http.StatusOK, resp)
}
