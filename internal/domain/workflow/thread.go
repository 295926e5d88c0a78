package workflow

import (
	"errors"
	"strings"
	"time"

	"odonto_docs/internal/domain/entities"
)

var (
	ErrEmptyMessage      = errors.New("empty message")
	ErrInvalidSenderKind = errors.New("invalid sender kind")
)

// PostMessage appends a message to the prosthesis thread. Messages are never edited
// or removed; OccurredAt never goes backwards.
func PostMessage(p *entities.Prosthesis, id, content string, kind entities.SenderKind, authorID string, now time.Time) (entities.CommunicationMessage, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return entities.CommunicationMessage{}, ErrEmptyMessage
	}
	if !kind.Valid() {
		return entities.CommunicationMessage{}, ErrInvalidSenderKind
	}
	if strings.TrimSpace(authorID) == "" {
		return entities.CommunicationMessage{}, ErrMissingActor
	}

	now = now.UTC()
	if n := len(p.NotasComunicacion); n > 0 && now.Before(p.NotasComunicacion[n-1].OccurredAt) {
		now = p.NotasComunicacion[n-1].OccurredAt
	}

	msg := entities.CommunicationMessage{
		ID:         id,
		Content:    content,
		AuthorID:   strings.TrimSpace(authorID),
		SenderKind: kind,
		OccurredAt: now,
	}
	p.NotasComunicacion = append(p.NotasComunicacion, msg)
	p.UpdatedAt = now
	return msg, nil
}
