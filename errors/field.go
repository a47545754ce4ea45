package errors

import (
	"fmt"

	"github.com/pkg/errors"
)

// Field attaches a field name to err. Nil is returned for a nil err, so
// the result can be collected with Append without checks.
//
// Field names follow Go naming. Nested fields use dot notation, for
// example Holder.Bump.
func Field(fieldName string, err error, description string, args ...interface{}) error {
	if isNilErr(err) {
		return nil
	}
	if len(args) > 0 {
		description = fmt.Sprintf(description, args...)
	}
	return &fieldError{
		parent: withStack(err),
		field:  fieldName,
		desc:   description,
	}
}

// AppendField is Append(errs, Field(fieldName, fieldErr, "")).
func AppendField(errs error, fieldName string, fieldErr error) error {
	return Append(errs, Field(fieldName, fieldErr, ""))
}

type fieldError struct {
	parent error
	field  string
	desc   string
}

func (e *fieldError) Error() string {
	msg := fmt.Sprintf("field %q: ", e.field)
	if e.desc != "" {
		msg += e.desc + ": "
	}
	return msg + e.parent.Error()
}

func (e *fieldError) Cause() error {
	return e.parent
}

func (e *fieldError) Field() string {
	return e.field
}

// FieldErrors collects every error created by Field for fieldName. Errors
// grouped with Append are searched as well.
func FieldErrors(err error, fieldName string) []error {
	var found []error
	walk(err, func(e error) bool {
		if f, ok := e.(*fieldError); ok && f.field == fieldName {
			found = append(found, e)
			return false
		}
		return true
	})
	return found
}

// withStack attaches a stack trace unless one of the wrapped errors
// already carries it.
func withStack(err error) error {
	if stackTrace(err) != nil {
		return err
	}
	return errors.WithStack(err)
}
