package commands

import (
	"errors"

	"github.com/moneyovertime/mot/internal/movements"
)

const (
	msgNotFound     = "File not found!"
	msgBadFileArgs  = "Error reading the file, check if arguments are correct, use --help for more."
	msgBadFilesArgs = "Error reading the files, check if arguments are correct, use --help for more."
)

// failureError is what a user sees when an operation aborts. The cause is
// only printed in verbose mode but stays reachable with errors.Is.
type failureError struct {
	msg     string
	cause   error
	verbose bool
}

func (e *failureError) Error() string {
	if e.verbose {
		return e.msg + " " + e.cause.Error()
	}
	return e.msg
}

func (e *failureError) Unwrap() error { return e.cause }

// failure maps pipeline errors to user messages. formatMsg differs between
// the single-file and the two-file commands. Errors of any other kind are
// returned unchanged.
func failure(err error, formatMsg string, verbose bool) error {
	switch {
	case errors.Is(err, movements.ErrNotFound):
		return &failureError{msg: msgNotFound, cause: err, verbose: verbose}
	case errors.Is(err, movements.ErrFormat):
		return &failureError{msg: formatMsg, cause: err, verbose: verbose}
	}
	return err
}
