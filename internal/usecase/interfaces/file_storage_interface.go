package interfaces

import (
	"context"
	"io"
)

// IFileStorage abstracts the object store holding attachments and signatures.
// Upload returns the URL the file can be referenced by.
type IFileStorage interface {
	Upload(ctx context.Context, key, contentType string, size int64, body io.Reader) (string, error)
	Delete(ctx context.Context, key string) error
}
