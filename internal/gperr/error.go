package gperr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/applinkd/go-applink/internal/utils/strutils/ansi"
)

type Error interface {
	error

	// Subject prepends the given subject to the error message.
	Subject(subject string) Error
	Subjectf(format string, args ...any) Error

	// With appends an extra error to the error.
	With(extra error) Error
	Withf(format string, args ...any) Error

	Is(other error) bool
}

type errStr string

func (err errStr) Error() string {
	return string(err)
}

type baseError struct {
	Err error `json:"err"`
}

func (err *baseError) Unwrap() error {
	return err.Err
}

func (err *baseError) Error() string {
	return err.Err.Error()
}

func (err *baseError) Is(other error) bool {
	if errors.Is(err.Err, other) {
		return true
	}
	//nolint:errorlint
	if o, ok := other.(*baseError); ok {
		return errors.Is(err.Err, o.Err)
	}
	return false
}

func (err baseError) Subject(subject string) Error {
	err.Err = PrependSubject(subject, err.Err)
	return &err
}

func (err *baseError) Subjectf(format string, args ...any) Error {
	if len(args) > 0 {
		return err.Subject(fmt.Sprintf(format, args...))
	}
	return err.Subject(format)
}

func (err *baseError) With(extra error) Error {
	return &nestedError{Err: err.Err, Extras: []error{extra}}
}

func (err *baseError) Withf(format string, args ...any) Error {
	return err.With(fmt.Errorf(format, args...))
}

type withSubject struct {
	Subjects []string `json:"subjects"`
	Err      error    `json:"err"`
}

// PrependSubject attaches subject in front of the error message.
// Subjects accumulate: the most recently prepended one renders first.
func PrependSubject(subject string, err error) error {
	if err == nil {
		return nil
	}
	//nolint:errorlint
	switch err := err.(type) {
	case *withSubject:
		return err.Prepend(subject)
	case Error:
		return err.Subject(subject)
	}
	return &withSubject{[]string{subject}, err}
}

func (err withSubject) Prepend(subject string) *withSubject {
	err.Subjects = append(err.Subjects, subject)
	return &err
}

func (err *withSubject) Unwrap() error {
	return err.Err
}

func (err *withSubject) Is(other error) bool {
	if errors.Is(err.Err, other) {
		return true
	}
	//nolint:errorlint
	if o, ok := other.(*baseError); ok {
		return errors.Is(err.Err, o.Err)
	}
	return false
}

// Error renders as "subjectN > ... > subject1: message",
// subjects highlighted when the terminal supports it.
func (err *withSubject) Error() string {
	n := len(err.Subjects)
	subjects := make([]string, n)
	for i, s := range err.Subjects {
		subjects[n-i-1] = ansi.HighlightCyan + s + ansi.Reset
	}
	return strings.Join(subjects, " > ") + ": " + err.Err.Error()
}
