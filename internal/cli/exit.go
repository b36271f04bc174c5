package cli

import (
	"errors"

	"github.com/Pankaj72885/create-waskit/internal/platform"
	"github.com/Pankaj72885/create-waskit/internal/registry"
	"github.com/Pankaj72885/create-waskit/internal/scaffold"
)

// Exit codes.
const (
	// ExitSuccess covers a finished scaffold and a declined overwrite.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitUsageError indicates bad user input: unknown template, invalid
	// project name, or a missing required choice.
	ExitUsageError = 2

	// ExitIOError indicates the template could not be copied.
	ExitIOError = 3

	// ExitCatalogError indicates the template catalog shipped broken.
	ExitCatalogError = 4
)

// ErrUsage marks errors caused by how the command was invoked.
var ErrUsage = errors.New("usage error")

// ExitError wraps an error with an exit code.
type ExitError struct {
	Err  error
	Code int
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, registry.ErrTemplateNotFound),
		errors.Is(err, scaffold.ErrInvalidName),
		errors.Is(err, ErrUsage):
		return ExitUsageError
	case errors.Is(err, platform.ErrIOFailure):
		return ExitIOError
	case errors.Is(err, registry.ErrCatalog):
		return ExitCatalogError
	default:
		return ExitGeneralError
	}
}

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitUsageError:
		return "Usage Error"
	case ExitIOError:
		return "I/O Error"
	case ExitCatalogError:
		return "Catalog Error"
	default:
		return "Unknown"
	}
}
