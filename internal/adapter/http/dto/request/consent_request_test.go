package request

import (
	"errors"
	"testing"
)

func TestSignConsentRequest_DecodeImage(t *testing.T) {
	t.Run("plain base64 defaults to png", func(t *testing.T) {
		img, ct, err := SignConsentRequest{Signature: "iVBORw=="}.DecodeImage()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ct != "image/png" || len(img) != 4 {
			t.Fatalf("unexpected result: %s %d", ct, len(img))
		}
	})

	t.Run("data url", func(t *testing.T) {
		_, ct, err := SignConsentRequest{Signature: "data:image/jpeg;base64,/9j/4A=="}.DecodeImage()
		if err != nil || ct != "image/jpeg" {
			t.Fatalf("unexpected result: %s %v", ct, err)
		}
	})

	t.Run("not an image", func(t *testing.T) {
		_, _, err := SignConsentRequest{Signature: "data:text/plain;base64,aG9sYQ=="}.DecodeImage()
		if !errors.Is(err, ErrInvalidSignatureImage) {
			t.Fatalf("expected ErrInvalidSignatureImage, got %v", err)
		}
	})

	t.Run("bad base64", func(t *testing.T) {
		_, _, err := SignConsentRequest{Signature: "%%%"}.DecodeImage()
		if !errors.Is(err, ErrInvalidSignatureImage) {
			t.Fatalf("expected ErrInvalidSignatureImage, got %v", err)
		}
	})
}

func TestStatusChangeRequest_Resolve(t *testing.T) {
	r := StatusChangeRequest{Estado: " Enviada ", Nota: "ok"}
	if r.ResolveStatus() != "Enviada" || r.ResolveNote() != "ok" {
		t.Fatalf("unexpected resolution: %q %q", r.ResolveStatus(), r.ResolveNote())
	}
	r = StatusChangeRequest{Status: "Recibida", Estado: "Enviada"}
	if r.ResolveStatus() != "Recibida" {
		t.Fatalf("status should win over estado, got %q", r.ResolveStatus())
	}
}
