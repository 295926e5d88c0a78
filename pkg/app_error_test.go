package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("dynamo down")
	e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	if !errors.Is(e, cause) {
		t.Fatalf("expected wrapped cause")
	}
	if e.Error() != "INTERNAL_ERROR: An internal error occurred: dynamo down" {
		t.Fatalf("unexpected message: %s", e.Error())
	}

	simple := NewDomainErrorSimple("NOT_FOUND", "Not found", http.StatusNotFound)
	body := simple.WithDetails(map[string]string{"id": "x"}).ToHTTPError()
	if body.Code != "NOT_FOUND" || body.Details == nil {
		t.Fatalf("unexpected body: %+v", body)
	}
	if simple.Details != nil {
		t.Fatalf("WithDetails must not mutate the receiver")
	}
}
