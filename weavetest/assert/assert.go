// Package assert provides the test assertions used across paperwallet
// packages. Every assertion stops the test on failure.
package assert

import (
	"testing"

	"github.com/iov-one/paperwallet/errors"
	"github.com/stretchr/testify/assert"
)

// Tester is the subset of testing.TB the assertions need.
type Tester interface {
	Helper()
	Fatal(...interface{})
	Fatalf(string, ...interface{})
}

// Nil fails the test unless value is nil or a nil pointer, map, slice,
// channel or function. Errors are printed with their stack trace.
func Nil(t Tester, value interface{}) {
	t.Helper()
	if !assert.Nil(quiet{}, value) {
		t.Fatalf("want a nil value, got %+v", value)
	}
}

// Equal fails the test if the values are not equal. Byte slices are
// compared by content.
func Equal(t Tester, want, got interface{}) {
	t.Helper()
	if !assert.ObjectsAreEqual(want, got) {
		t.Fatalf("values not equal\nwant %T %v\n got %T %v", want, want, got, got)
	}
}

// Panics fails the test unless fn panics.
func Panics(t Tester, fn func()) {
	t.Helper()
	if !assert.Panics(quiet{}, fn) {
		t.Fatal("panic expected")
	}
}

// IsErr fails the test unless got is want, or want is a registered error
// that got wraps.
func IsErr(t testing.TB, want, got error) {
	t.Helper()
	if want == got {
		return
	}
	if root, ok := want.(*errors.Error); ok && root.Is(got) {
		return
	}
	t.Fatalf("want %q, got %+v", want, got)
}

// FieldError checks the errors reported for a single field. With a nil
// want the field must have no error. Otherwise there must be exactly one
// error for the field, matching want.
func FieldError(t testing.TB, err error, fieldName string, want *errors.Error) {
	t.Helper()

	errs := errors.FieldErrors(err, fieldName)
	switch {
	case want == nil && len(errs) == 0:
		return
	case want == nil:
		t.Fatalf("want no %q error, got %q", fieldName, errs)
	case len(errs) == 0:
		t.Fatalf("want %q error %q, got none", fieldName, want)
	case len(errs) > 1:
		t.Fatalf("want one %q error, got %d: %q", fieldName, len(errs), errs)
	case !want.Is(errs[0]):
		t.Fatalf("want %q error %q, got %q", fieldName, want, errs[0])
	}
}

// quiet discards testify reports. Failures are reported by the caller.
type quiet struct{}

func (quiet) Errorf(string, ...interface{}) {}
