package request

import (
	"encoding/base64"
	"errors"
	"strings"
)

var ErrInvalidSignatureImage = errors.New("invalid signature image")

type ConsentTemplateRequest struct {
	Name      string `json:"name" binding:"required"`
	Procedure string `json:"procedure"`
	Body      string `json:"body" binding:"required"`
}

type GenerateConsentRequest struct {
	TemplateID   string            `json:"template_id" binding:"required"`
	Patient      ReferenceRequest  `json:"patient"`
	Professional ReferenceRequest  `json:"professional"`
	Values       map[string]string `json:"values"`
}

// SignConsentRequest carries the signature as base64, optionally as a data URL
// (data:image/png;base64,...).
type SignConsentRequest struct {
	SignerName string `json:"signer_name" binding:"required"`
	Signature  string `json:"signature" binding:"required"`
}

// DecodeImage returns the image bytes and their content type.
func (r SignConsentRequest) DecodeImage() ([]byte, string, error) {
	raw := strings.TrimSpace(r.Signature)
	contentType := "image/png"
	if strings.HasPrefix(raw, "data:") {
		meta, data, ok := strings.Cut(raw, ",")
		if !ok || !strings.HasSuffix(meta, ";base64") {
			return nil, "", ErrInvalidSignatureImage
		}
		contentType = strings.TrimSuffix(strings.TrimPrefix(meta, "data:"), ";base64")
		raw = data
	}
	if !strings.HasPrefix(contentType, "image/") {
		return nil, "", ErrInvalidSignatureImage
	}
	img, err := base64.StdEncoding.DecodeString(raw)
	if err != nil || len(img) == 0 {
		return nil, "", ErrInvalidSignatureImage
	}
	return img, contentType, nil
}
