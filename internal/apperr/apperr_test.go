package apperr

import (
	"errors"
	"io/fs"
	"testing"
)

var errTest = &Error{
	Message: "project %q not found",
}

func TestFmtKeepsIdentity(t *testing.T) {
	err := errTest.Fmt("writing")

	if got, want := err.Error(), `project "writing" not found`; got != want {
		t.Fatalf("expected %s, but got: %s", want, got)
	}

	if !errors.Is(err, errTest) {
		t.Fatal("formatted error should match its template")
	}
}

func TestWrap(t *testing.T) {
	err := errTest.Fmt("x").Wrap(fs.ErrPermission)

	if !errors.Is(err, fs.ErrPermission) {
		t.Fatal("expected wrapped cause to be reachable")
	}

	if !errors.Is(err, errTest) {
		t.Fatal("wrapped error should match its template")
	}

	other := &Error{Message: "something else"}
	if errors.Is(err, other) {
		t.Fatal("unrelated templates must not match")
	}
}
