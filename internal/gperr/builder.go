package gperr

import "sync"

// Builder accumulates errors and builds a nested error with an optional
// subject heading. Safe for concurrent use.
type Builder struct {
	about string
	errs  []error
	mu    sync.Mutex
}

func NewBuilder(about ...string) *Builder {
	if len(about) == 0 {
		return &Builder{}
	}
	return &Builder{about: about[0]}
}

func (b *Builder) About() string {
	return b.about
}

func (b *Builder) HasError() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.errs) > 0
}

// Error returns the collected errors as a single error,
// or nil if nothing was added.
func (b *Builder) Error() Error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.errs) == 0 {
		return nil
	}
	if b.about == "" {
		return &nestedError{Extras: b.errs}
	}
	return &nestedError{Err: newError(b.about), Extras: b.errs}
}

func (b *Builder) Add(err error) {
	if err == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.errs = append(b.errs, err)
}

func (b *Builder) Adds(message string) {
	b.Add(newError(message))
}

func (b *Builder) Addf(format string, args ...any) {
	b.Add(Errorf(format, args...))
}

func (b *Builder) AddRange(errs ...error) {
	for _, err := range errs {
		b.Add(err)
	}
}
