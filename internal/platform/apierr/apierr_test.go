package apierr

import (
	"errors"
	"net/http"
	"testing"
)

func TestErrorMessage(t *testing.T) {
	var nilErr *Error
	if nilErr.Error() != "" {
		t.Fatalf("nil error should render empty")
	}
	if got := New(http.StatusTeapot, "", nil).Error(); got != "request error (418)" {
		t.Fatalf("unexpected message: %q", got)
	}
	if got := BadRequest("validation", nil).Error(); got != "validation" {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestInvalidParam(t *testing.T) {
	e := InvalidParam("id", "abc")
	if e.Status != http.StatusBadRequest || e.Code != "validation" {
		t.Fatalf("unexpected error: %+v", e)
	}
	if e.Error() != `invalid id "abc"` {
		t.Fatalf("unexpected message: %q", e.Error())
	}
}

func TestInvalidBodyUnwraps(t *testing.T) {
	cause := errors.New("unexpected EOF")
	if !errors.Is(InvalidBody(cause), cause) {
		t.Fatalf("expected cause to be preserved")
	}
}
