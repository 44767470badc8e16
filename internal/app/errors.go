package app

import (
	"errors"
	"fmt"
)

const (
	ExitSuccess      = 0
	ExitUserError    = 1
	ExitStoreFailure = 3
	ExitIOFailure    = 4
)

var (
	ErrUnknownProfile    = errors.New("unknown profile")
	ErrNoPreviousContext = errors.New("no previous context")
	ErrNameCollision     = errors.New("name collision")
)

// NameCollisionError reports a rename whose target name is already taken.
type NameCollisionError struct {
	Old string
	New string
}

func (e *NameCollisionError) Error() string {
	return fmt.Sprintf("cannot rename %q to %q: profile %q already exists (use --force to overwrite)", e.Old, e.New, e.New)
}

func (e *NameCollisionError) Is(target error) bool {
	return target == ErrNameCollision
}

type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func WrapExit(code int, err error) error {
	if err == nil {
		return nil
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return err
	}
	return &ExitError{Code: code, Err: err}
}

func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitUserError
}

// classifyExit picks the exit code for an engine failure.
func classifyExit(err error) int {
	switch {
	case errors.Is(err, ErrUnknownProfile),
		errors.Is(err, ErrNoPreviousContext),
		errors.Is(err, ErrNameCollision),
		errors.Is(err, errInvalidName):
		return ExitUserError
	case errors.Is(err, errStoreCommand):
		return ExitStoreFailure
	default:
		return ExitIOFailure
	}
}
