package workflow

import (
	"fmt"
	"io"
	"strings"

	"odonto_docs/internal/domain/entities"
)

// DefaultMaxAttachmentBytes is used when no limit is configured.
const DefaultMaxAttachmentBytes int64 = 50 << 20

// FileUpload is an incoming file before it reaches object storage.
type FileUpload struct {
	Name        string
	ContentType string
	Size        int64
	Open        func() (io.ReadCloser, error)
}

// AttachmentRejection explains why one file of a batch was not stored.
type AttachmentRejection struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// Partition splits a batch by size. Each file is judged on its own; a part with
// no file name or no content is rejected like an oversized one.
func Partition(files []FileUpload, maxBytes int64) (accepted []FileUpload, rejected []AttachmentRejection) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxAttachmentBytes
	}
	for _, f := range files {
		switch {
		case strings.TrimSpace(f.Name) == "":
			rejected = append(rejected, AttachmentRejection{Name: f.Name, Reason: "missing file name"})
		case f.Size <= 0:
			rejected = append(rejected, AttachmentRejection{Name: f.Name, Reason: "empty file"})
		case f.Size > maxBytes:
			rejected = append(rejected, AttachmentRejection{
				Name:   f.Name,
				Reason: fmt.Sprintf("file exceeds maximum size of %d bytes", maxBytes),
			})
		default:
			accepted = append(accepted, f)
		}
	}
	return accepted, rejected
}

// Attach appends stored attachments to the order.
func Attach[S ~string](order *entities.WorkOrder[S], attachments ...entities.Attachment) {
	order.Attachments = append(order.Attachments, attachments...)
}

// Remove drops an attachment by id. A missing id is not an error.
func Remove[S ~string](order *entities.WorkOrder[S], attachmentID string) (entities.Attachment, bool) {
	i := order.FindAttachment(attachmentID)
	if i < 0 {
		return entities.Attachment{}, false
	}
	removed := order.Attachments[i]
	order.Attachments = append(order.Attachments[:i:i], order.Attachments[i+1:]...)
	return removed, true
}
