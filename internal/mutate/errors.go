package mutate

import (
	"errors"
	"fmt"
)

// ErrNothingToConvert is returned when a deal has no Ready, configured services.
var ErrNothingToConvert = errors.New("no services ready to convert")

// ErrAlreadyConverted is returned when a deal has already been turned into projects.
var ErrAlreadyConverted = errors.New("deal already converted")

type NotFoundError struct {
	Kind string
	ID   string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}
