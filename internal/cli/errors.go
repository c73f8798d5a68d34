package cli

import (
	"fmt"
	"strings"
)

type invalidChoiceError struct {
	what    string
	got     string
	choices []string
}

func (e invalidChoiceError) Error() string {
	return fmt.Sprintf("unknown %s %q (expected one of: %s)", e.what, e.got, strings.Join(e.choices, ", "))
}

// loginError carries the message shown to the user and keeps the session error for errors.Is.
type loginError struct {
	msg string
	err error
}

func (e loginError) Error() string { return e.msg }

func (e loginError) Unwrap() error { return e.err }
