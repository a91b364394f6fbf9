package halo

import (
	stderrors "errors"

	"github.com/rileyhilliard/halo/internal/errors"
)

func writeError(err error) error {
	return errors.WrapWithCode(err, errors.ErrWrite,
		"Couldn't draw the spinner",
		"Check that the output stream is still open.")
}

func joinErrors(errs ...error) error {
	return stderrors.Join(errs...)
}

// IsConfigurationError reports whether err came from an invalid spinner
// setup: an unknown spinner name, empty frames or a bad option value.
func IsConfigurationError(err error) bool {
	return errors.IsCode(err, errors.ErrConfig)
}

// IsValidationError reports whether err came from a value that isn't text.
func IsValidationError(err error) bool {
	return errors.IsCode(err, errors.ErrValidation)
}

// IsWriteError reports whether err came from the output stream.
func IsWriteError(err error) bool {
	return errors.IsCode(err, errors.ErrWrite)
}
