package gperr

import (
	"errors"
	"strings"
	"testing"

	. "github.com/applinkd/go-applink/internal/utils/testing"
)

func TestBaseString(t *testing.T) {
	ExpectEqual(t, New("error").Error(), "error")
}

func TestBaseWithSubject(t *testing.T) {
	err := New("error")
	withSubject := err.Subject("foo")
	withSubjectf := err.Subjectf("%s %s", "foo", "bar")

	ExpectError(t, err, withSubject)
	ExpectEqual(t, withSubject.Error(), "foo: error")
	ExpectTrue(t, withSubject.Is(err))

	ExpectError(t, err, withSubjectf)
	ExpectEqual(t, withSubjectf.Error(), "foo bar: error")
	ExpectTrue(t, withSubjectf.Is(err))
}

func TestNestedSubject(t *testing.T) {
	err := New("error").Subject("foo").Subject("bar")
	ExpectEqual(t, err.Error(), "bar > foo: error")
}

func TestBaseWithExtra(t *testing.T) {
	err := New("error")
	extra := New("bar").Subject("baz")
	withExtra := err.With(extra)

	ExpectTrue(t, withExtra.Is(extra))
	ExpectTrue(t, withExtra.Is(err))

	ExpectTrue(t, errors.Is(withExtra, extra))
	ExpectTrue(t, errors.Is(withExtra, err))

	ExpectTrue(t, strings.Contains(fmtError(withExtra), err.Error()))
	ExpectTrue(t, strings.Contains(fmtError(withExtra), "bar"))
	ExpectTrue(t, strings.Contains(fmtError(withExtra), "baz"))
}

func TestBaseUnwrap(t *testing.T) {
	err := errors.New("err")
	wrapped := Wrap(err)

	ExpectError(t, err, errors.Unwrap(wrapped))
}

func TestNestedUnwrap(t *testing.T) {
	err := errors.New("err")
	err2 := New("err2")
	wrapped := Wrap(err).Subject("foo").With(err2.Subject("bar"))

	unwrapper, ok := wrapped.(interface{ Unwrap() []error })
	ExpectTrue(t, ok)

	ExpectError(t, err, wrapped)
	ExpectError(t, err2, wrapped)
	ExpectEqual(t, len(unwrapper.Unwrap()), 2)
}

func TestErrorIs(t *testing.T) {
	from := errors.New("error")
	err := Wrap(from)
	ExpectError(t, from, err)
	ExpectTrue(t, err.Is(from))
}

func TestJoin(t *testing.T) {
	ExpectTrue(t, Join(nil, nil) == nil)

	err := Join(New("a"), nil, New("b"))
	ExpectHasError(t, err)
	ExpectTrue(t, strings.Contains(fmtError(err), "a"))
	ExpectTrue(t, strings.Contains(fmtError(err), "b"))
}

func TestBuilder(t *testing.T) {
	b := NewBuilder("heading")
	ExpectTrue(t, b.Error() == nil)
	ExpectFalse(t, b.HasError())

	b.Add(New("first"))
	b.Addf("%s", "second")
	ExpectTrue(t, b.HasError())

	msg := fmtError(b.Error())
	ExpectTrue(t, strings.Contains(msg, "heading"))
	ExpectTrue(t, strings.Contains(msg, "first"))
	ExpectTrue(t, strings.Contains(msg, "second"))
}

func fmtError(err error) string {
	return err.Error()
}
