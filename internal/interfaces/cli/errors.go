package cli

import (
	"errors"

	"github.com/riskibarqy/team-editor/internal/domain/apperr"
	"github.com/riskibarqy/team-editor/internal/usecase"
)

// Exit codes reported by Execute.
const (
	ExitOK         = 0
	ExitFailure    = 1
	ExitInvalid    = 2
	ExitNotFound   = 3
	ExitConnection = 4
	ExitAsset      = 5
	ExitStorage    = 6
)

type mappedError struct {
	ExitCode int
	Reason   string
	Message  string
}

func mapError(err error) mappedError {
	msg := err.Error()

	switch {
	case errors.Is(err, apperr.ErrValidation), errors.Is(err, usecase.ErrInvalidInput):
		var fieldErr *apperr.FieldError
		if errors.As(err, &fieldErr) {
			msg = fieldErr.Error()
		}
		return mappedError{ExitCode: ExitInvalid, Reason: "invalidValue", Message: msg}
	case errors.Is(err, apperr.ErrNotFound):
		return mappedError{ExitCode: ExitNotFound, Reason: "notFound", Message: msg}
	case errors.Is(err, usecase.ErrNoSelection):
		return mappedError{ExitCode: ExitInvalid, Reason: "noSelection", Message: "select a team first"}
	case errors.Is(err, usecase.ErrNoDatabase):
		return mappedError{
			ExitCode: ExitConnection,
			Reason:   "noDatabase",
			Message:  "no database is open: pass --db, set TEAM_EDITOR_DB_PATH or use 'open <path>'",
		}
	case errors.Is(err, apperr.ErrConnection):
		return mappedError{ExitCode: ExitConnection, Reason: "connection", Message: msg}
	case errors.Is(err, apperr.ErrAsset):
		return mappedError{ExitCode: ExitAsset, Reason: "asset", Message: msg}
	case errors.Is(err, apperr.ErrStorage), errors.Is(err, apperr.ErrRead):
		return mappedError{ExitCode: ExitStorage, Reason: "storage", Message: msg}
	default:
		return mappedError{ExitCode: ExitFailure, Reason: "internal", Message: msg}
	}
}
