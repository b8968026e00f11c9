package cli

import (
	"errors"

	"github.com/makery/addressapp/internal/app"
	"github.com/makery/addressapp/internal/dates"
	"github.com/makery/addressapp/internal/editor"
	"github.com/makery/addressapp/internal/slugs"
	"github.com/makery/addressapp/internal/storage"
)

// Error codes for structured error responses.
// These codes are stable and can be relied upon by scripts.
const (
	// Configuration errors
	ErrConfigInvalid = "CONFIG_INVALID"
	ErrPrefsError    = "PREFS_ERROR"

	// File errors
	ErrFileReadError  = "FILE_READ_ERROR"
	ErrFileWriteError = "FILE_WRITE_ERROR"
	ErrNoCurrentFile  = "NO_CURRENT_FILE"
	ErrMalformedDate  = "MALFORMED_DATE"
	ErrNotRestored    = "CURRENT_FILE_NOT_LOADED"

	// Person errors
	ErrPersonNotFound  = "PERSON_NOT_FOUND"
	ErrPersonAmbiguous = "PERSON_AMBIGUOUS"

	// Validation errors
	ErrValidationFailed = "VALIDATION_FAILED"
	ErrUnknownField     = "UNKNOWN_FIELD"

	// Input errors
	ErrInvalidInput    = "INVALID_INPUT"
	ErrMissingArgument = "MISSING_ARGUMENT"
	ErrEditorFailed    = "EDITOR_FAILED"

	// General errors
	ErrInternal             = "INTERNAL_ERROR"
	ErrConfirmationRequired = "CONFIRMATION_REQUIRED"
)

// Warning codes for non-fatal issues.
const (
	WarnNotSaved     = "NOT_SAVED"
	WarnRestoreError = "RESTORE_FAILED"
)

// errorCode maps an error from the address book packages to its stable code.
func errorCode(err error) string {
	var (
		loadErr   *storage.LoadError
		saveErr   *storage.SaveError
		notFound  *slugs.NotFoundError
		ambiguous *slugs.AmbiguousError
	)
	switch {
	case errors.As(err, &loadErr):
		if errors.Is(err, dates.ErrMalformedDate) {
			return ErrMalformedDate
		}
		return ErrFileReadError
	case errors.As(err, &saveErr):
		return ErrFileWriteError
	case errors.Is(err, app.ErrNoCurrentFile):
		return ErrNoCurrentFile
	case errors.Is(err, app.ErrNotRestored):
		return ErrNotRestored
	case errors.As(err, &notFound), errors.Is(err, app.ErrIndexOutOfRange), errors.Is(err, app.ErrNotInList):
		return ErrPersonNotFound
	case errors.As(err, &ambiguous):
		return ErrPersonAmbiguous
	case editor.IsValidationError(err):
		return ErrValidationFailed
	case errors.Is(err, editor.ErrNoEditor):
		return ErrEditorFailed
	default:
		return ErrInternal
	}
}
