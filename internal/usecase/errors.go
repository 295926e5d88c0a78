package usecase

import (
	"errors"

	"odonto_docs/internal/domain/workflow"
	"odonto_docs/internal/usecase/interfaces"
)

var (
	ErrInvalidOrderID      = errors.New("invalid order id")
	ErrWorkOrderNotFound   = errors.New("work order not found")
	ErrInvalidOrderPayload = errors.New("invalid work order payload")
	ErrInvalidStatus       = errors.New("invalid status")
	ErrNoFiles             = errors.New("no files provided")

	ErrMissingActor     = workflow.ErrMissingActor
	ErrConcurrentUpdate = interfaces.ErrVersionConflict
	ErrStorageNotReady  = errors.New("file storage not configured")
	ErrInvalidMessage   = errors.New("invalid communication message")
)
