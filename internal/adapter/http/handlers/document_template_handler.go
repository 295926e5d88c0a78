package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "odonto_docs/internal/adapter/http/dto/request"
	response "odonto_docs/internal/adapter/http/dto/response"
	"odonto_docs/internal/adapter/http/middleware"
	"odonto_docs/internal/domain/entities"
	"odonto_docs/internal/usecase"
	"odonto_docs/pkg"

	"github.com/gin-gonic/gin"
)

// DocumentTemplateHandler serves /documentacion.
type DocumentTemplateHandler struct {
	usecase usecase.IDocumentTemplateUseCase
}

func NewDocumentTemplateHandler(uc usecase.IDocumentTemplateUseCase) *DocumentTemplateHandler {
	return &DocumentTemplateHandler{usecase: uc}
}

func mapDocumentTemplateError(err error) *pkg.AppError {
	if appErr, ok := mapCommonError(err); ok {
		return appErr
	}
	var unknown *usecase.UnknownPlaceholdersError
	switch {
	case errors.As(err, &unknown):
		return pkg.NewDomainErrorSimple("UNKNOWN_PLACEHOLDERS", "Unknown placeholders", http.StatusBadRequest).WithDetails(unknown.Keys)
	case errors.Is(err, usecase.ErrInvalidTemplateID), errors.Is(err, usecase.ErrInvalidTemplatePayload):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrDocumentTemplateNotFound):
		return pkg.NewDomainErrorSimple("TEMPLATE_NOT_FOUND", "Document template not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}

func toDocumentTemplateCommand(payload request.DocumentTemplateRequest) usecase.DocumentTemplateCommand {
	return usecase.DocumentTemplateCommand{
		Name:     payload.Name,
		Category: entities.DocumentCategory(strings.ToLower(strings.TrimSpace(payload.Category))),
		Content:  payload.Content,
		Active:   payload.Active,
	}
}

func (h *DocumentTemplateHandler) Create(c *gin.Context) {
	var payload request.DocumentTemplateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest.WithDetails(err.Error()))
		return
	}

	t, err := h.usecase.Create(c.Request.Context(), middleware.ActorID(c), toDocumentTemplateCommand(payload))
	if err != nil {
		writeError(c, mapDocumentTemplateError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromDocumentTemplate(t))
}

func (h *DocumentTemplateHandler) GetByID(c *gin.Context) {
	t, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapDocumentTemplateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDocumentTemplate(t))
}

func (h *DocumentTemplateHandler) List(c *gin.Context) {
	ts, err := h.usecase.List(c.Request.Context(), firstQuery(c, "categoria", "category"))
	if err != nil {
		writeError(c, mapDocumentTemplateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDocumentTemplates(ts))
}

func (h *DocumentTemplateHandler) Update(c *gin.Context) {
	var payload request.DocumentTemplateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest.WithDetails(err.Error()))
		return
	}

	t, err := h.usecase.Update(c.Request.Context(), c.Param("id"), middleware.ActorID(c), toDocumentTemplateCommand(payload))
	if err != nil {
		writeError(c, mapDocumentTemplateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDocumentTemplate(t))
}

func (h *DocumentTemplateHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id"), middleware.ActorID(c)); err != nil {
		writeError(c, mapDocumentTemplateError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *DocumentTemplateHandler) Placeholders(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.Placeholders())
}
