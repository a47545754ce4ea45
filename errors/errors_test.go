package errors

import (
	stdlib "errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestWrap(t *testing.T) {
	std := stdlib.New("disk full")

	cases := map[string]struct {
		err      error
		wantRoot error
		wantMsg  string
	}{
		"root error": {
			err:      ErrNotFound,
			wantRoot: ErrNotFound,
			wantMsg:  "not found",
		},
		"wrapped root": {
			err:      Wrapf(ErrNotFound, "holder %s", "ABC123"),
			wantRoot: ErrNotFound,
			wantMsg:  "holder ABC123: not found",
		},
		"wrapped stdlib error": {
			err:      Wrap(Wrap(std, "write cache"), "commit"),
			wantRoot: std,
			wantMsg:  "commit: write cache: disk full",
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if got := errors.Cause(tc.err); got != tc.wantRoot {
				t.Fatalf("want %v root, got %v", tc.wantRoot, got)
			}
			if got := tc.err.Error(); got != tc.wantMsg {
				t.Fatalf("want %q, got %q", tc.wantMsg, got)
			}
		})
	}
}

func TestWrapStackTrace(t *testing.T) {
	err := Wrap(Wrap(ErrState, "inner"), "outer")
	if stackTrace(err) == nil {
		t.Fatal("wrapped error has no stack trace")
	}
	if got := fmt.Sprintf("%+v", err); !strings.Contains(got, "TestWrapStackTrace") {
		t.Fatalf("stack trace not printed: %s", got)
	}
	if got := fmt.Sprintf("%v", err); got != "outer: inner: invalid state" {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestErrorIs(t *testing.T) {
	cases := map[string]struct {
		a      *Error
		b      error
		wantIs bool
	}{
		"instance of the same error": {
			a:      ErrNotFound,
			b:      ErrNotFound,
			wantIs: true,
		},
		"two different coded errors": {
			a:      ErrNotFound,
			b:      ErrModel,
			wantIs: false,
		},
		"successful comparison to a wrapped error": {
			a:      ErrNotFound,
			b:      errors.Wrap(ErrNotFound, "gone"),
			wantIs: true,
		},
		"unsuccessful comparison to a wrapped error": {
			a:      ErrNotFound,
			b:      errors.Wrap(ErrOverflow, "too big"),
			wantIs: false,
		},
		"not equal to stdlib error": {
			a:      ErrNotFound,
			b:      fmt.Errorf("stdlib error"),
			wantIs: false,
		},
		"not equal to a wrapped stdlib error": {
			a:      ErrNotFound,
			b:      errors.Wrap(fmt.Errorf("stdlib error"), "wrapped"),
			wantIs: false,
		},
		"nil is nil": {
			a:      nil,
			b:      nil,
			wantIs: true,
		},
		"nil is any error nil": {
			a:      nil,
			b:      (*customError)(nil),
			wantIs: true,
		},
		"nil is not not-nil": {
			a:      nil,
			b:      ErrNotFound,
			wantIs: false,
		},
		"multi error containing the error": {
			a:      ErrAccountInUse,
			b:      Append(ErrState, Wrap(ErrAccountInUse, "taken")),
			wantIs: true,
		},
		"multi error not containing the error": {
			a:      ErrAccountInUse,
			b:      Append(ErrState, ErrEmpty),
			wantIs: false,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if got := tc.a.Is(tc.b); got != tc.wantIs {
				t.Fatalf("unexpected result - got:%v want: %v", got, tc.wantIs)
			}
		})
	}
}

type customError struct{}

func (customError) Error() string {
	return "custom error"
}

func TestRegisterPanicsOnDuplicatedCode(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic")
		}
	}()
	Register(ErrNotFound.code, "another not found")
}

func TestWrapEmpty(t *testing.T) {
	if err := Wrap(nil, "wrapping <nil>"); err != nil {
		t.Fatal(err)
	}
}

func TestRecover(t *testing.T) {
	fn := func() (err error) {
		defer Recover(&err)
		panic("boom")
	}
	err := fn()
	if !ErrPanic.Is(err) {
		t.Fatalf("want panic error, got %+v", err)
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Fatalf("panic message lost: %q", err)
	}
}

func TestAppend(t *testing.T) {
	if err := Append(nil, nil); err != nil {
		t.Fatalf("want nil, got %v", err)
	}
	if err := Append(nil, io.EOF); err != io.EOF {
		t.Fatalf("single error must be returned as it is, got %v", err)
	}

	err := Append(ErrEmpty, Append(ErrState, ErrInput))
	m, ok := err.(multiErr)
	if !ok {
		t.Fatalf("want multi error, got %T", err)
	}
	if len(m) != 3 {
		t.Fatalf("want a flat list of 3 errors, got %d", len(m))
	}
	if code := abciCode(err); code != ErrEmpty.code {
		t.Fatalf("want the first error code, got %d", code)
	}
}

func TestFieldErrors(t *testing.T) {
	err := Append(
		Field("Code", ErrEmpty, "required"),
		Field("Amount", ErrAmount, "must be positive"),
		ErrState,
	)

	if errs := FieldErrors(err, "Code"); len(errs) != 1 || !ErrEmpty.Is(errs[0]) {
		t.Fatalf("unexpected Code errors: %v", errs)
	}
	if errs := FieldErrors(err, "Amount"); len(errs) != 1 || !ErrAmount.Is(errs[0]) {
		t.Fatalf("unexpected Amount errors: %v", errs)
	}
	if errs := FieldErrors(err, "Secret"); len(errs) != 0 {
		t.Fatalf("unexpected Secret errors: %v", errs)
	}
	if err := Field("Code", nil, "nothing"); err != nil {
		t.Fatalf("nil field error must be nil, got %v", err)
	}
}
