package errors

import (
	"fmt"
)

var ErrValidation = fmt.Errorf("validation failed")
var ErrPrecondition = fmt.Errorf("precondition not met")
var ErrEdit = fmt.Errorf("edit failed")
var ErrSearch = fmt.Errorf("search failed")
var ErrNotFound = fmt.Errorf("not found")

type wbError struct {
	msg    string
	target error
}

func (w wbError) Error() string        { return w.msg }
func (w wbError) Is(target error) bool { return target == w.target }

// NewValidationError reports input that was rejected locally, before
// any call to the remote store was made.
func NewValidationError(msg string) error {
	return &wbError{
		msg:    msg,
		target: ErrValidation,
	}
}

// NewPreconditionError reports an operation that was invoked without
// the prior state it requires (such as get() on an entity without an id).
func NewPreconditionError(msg string) error {
	return &wbError{
		msg:    msg,
		target: ErrPrecondition,
	}
}

func NewEditError(msg string) error {
	return &wbError{
		msg:    msg,
		target: ErrEdit,
	}
}

func NewSearchError(msg string) error {
	return &wbError{
		msg:    msg,
		target: ErrSearch,
	}
}

// NewNotFoundError reports that the remote store explicitly marked a
// requested id as missing. This is a well formed negative answer and
// not a protocol fault, which is why it is kept apart from ErrSearch.
func NewNotFoundError(msg string) error {
	return &wbError{
		msg:    msg,
		target: ErrNotFound,
	}
}
