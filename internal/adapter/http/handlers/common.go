package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"odonto_docs/internal/domain/entities"
	"odonto_docs/internal/domain/workflow"
	"odonto_docs/internal/usecase"
	"odonto_docs/pkg"

	"github.com/gin-gonic/gin"
)

const (
	defaultPage  = 1
	defaultLimit = 20
	maxLimit     = 100
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errInvalidPaging  = pkg.NewDomainErrorSimple("INVALID_PAGINATION", "page and limit must be positive integers", http.StatusBadRequest)
	errNoFiles        = pkg.NewDomainErrorSimple("NO_FILES", "No files provided", http.StatusBadRequest)
)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapCommonError covers the errors every resource shares. ok is false when err
// needs a resource specific mapping.
func mapCommonError(err error) (*pkg.AppError, bool) {
	var fe *workflow.ForbiddenTransitionError
	switch {
	case errors.Is(err, usecase.ErrMissingActor):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing acting user", http.StatusUnauthorized), true
	case errors.As(err, &fe):
		return pkg.NewDomainErrorSimple("FORBIDDEN_TRANSITION", fe.Error(), http.StatusConflict).
			WithDetails(map[string]string{"from": fe.From, "to": fe.To}), true
	case errors.Is(err, usecase.ErrConcurrentUpdate):
		return pkg.NewDomainErrorSimple("CONCURRENT_UPDATE", "The resource was modified by another request", http.StatusConflict), true
	case errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainError("INVALID_STATUS", "Unknown status", err, http.StatusBadRequest), true
	}
	return nil, false
}

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}

func mapWorkOrderError(err error) *pkg.AppError {
	if appErr, ok := mapCommonError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidOrderPayload):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidMessage):
		return pkg.NewDomainErrorSimple("INVALID_MESSAGE", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNoFiles):
		return errNoFiles
	case errors.Is(err, usecase.ErrWorkOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStorageNotReady):
		return pkg.NewDomainError("STORAGE_UNAVAILABLE", "File storage not configured", err, http.StatusServiceUnavailable)
	default:
		return internalError(err)
	}
}

func parsePaging(c *gin.Context) (int, int, error) {
	page, limit := defaultPage, defaultLimit
	if raw := strings.TrimSpace(c.Query("page")); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			return 0, 0, errors.New("invalid page")
		}
		page = v
	}
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			return 0, 0, errors.New("invalid limit")
		}
		limit = v
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit, nil
}

// firstQuery returns the first non-empty query value among keys.
func firstQuery(c *gin.Context, keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(c.Query(k)); v != "" {
			return v
		}
	}
	return ""
}

func parseWorkOrderFilter(c *gin.Context) (entities.WorkOrderFilter, error) {
	page, limit, err := parsePaging(c)
	if err != nil {
		return entities.WorkOrderFilter{}, err
	}
	return entities.WorkOrderFilter{
		PatientID: firstQuery(c, "paciente_id", "patient_id"),
		LabID:     firstQuery(c, "laboratorio_id", "lab_id"),
		Status:    firstQuery(c, "estado", "status"),
		Page:      page,
		Limit:     limit,
	}, nil
}

// readUploads collects the multipart files sent under "files" (or "file").
func readUploads(c *gin.Context) ([]workflow.FileUpload, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, err
	}
	headers := form.File["files"]
	if len(headers) == 0 {
		headers = form.File["file"]
	}

	out := make([]workflow.FileUpload, 0, len(headers))
	for _, fh := range headers {
		fh := fh
		out = append(out, workflow.FileUpload{
			Name:        fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
			Open: func() (io.ReadCloser, error) {
				f, err := fh.Open()
				if err != nil {
					return nil, err
				}
				return f, nil
			},
		})
	}
	return out, nil
}
