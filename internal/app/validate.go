package app

import (
	"errors"
	"fmt"
	"regexp"
)

// CurrentSentinel stands for the active profile in rename and delete.
const CurrentSentinel = "."

var profileNamePattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

var errInvalidName = errors.New("invalid profile name")

func validateProfileName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: profile name is required", errInvalidName)
	}
	if name == "." || name == ".." || !profileNamePattern.MatchString(name) {
		return fmt.Errorf("%w %q (allowed: letters, numbers, ., _, -)", errInvalidName, name)
	}
	return nil
}
