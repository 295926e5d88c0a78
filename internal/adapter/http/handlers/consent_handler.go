package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	request "odonto_docs/internal/adapter/http/dto/request"
	response "odonto_docs/internal/adapter/http/dto/response"
	"odonto_docs/internal/adapter/http/middleware"
	"odonto_docs/internal/usecase"
	"odonto_docs/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ConsentHandler serves /consentimientos.
type ConsentHandler struct {
	usecase usecase.IConsentUseCase
}

func NewConsentHandler(uc usecase.IConsentUseCase) *ConsentHandler {
	return &ConsentHandler{usecase: uc}
}

func mapConsentError(err error) *pkg.AppError {
	if appErr, ok := mapCommonError(err); ok {
		return appErr
	}
	var missing *usecase.MissingPlaceholdersError
	var unknown *usecase.UnknownPlaceholdersError
	switch {
	case errors.As(err, &missing):
		return pkg.NewDomainErrorSimple("MISSING_PLACEHOLDERS", "Missing placeholder values", http.StatusBadRequest).WithDetails(missing.Keys)
	case errors.As(err, &unknown):
		return pkg.NewDomainErrorSimple("UNKNOWN_PLACEHOLDERS", "Unknown placeholders", http.StatusBadRequest).WithDetails(unknown.Keys)
	case errors.Is(err, usecase.ErrInvalidConsentID), errors.Is(err, usecase.ErrInvalidConsentPayload):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrInvalidSignature):
		return pkg.NewDomainErrorSimple("INVALID_SIGNATURE", "Invalid signature", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTemplateInactive):
		return pkg.NewDomainErrorSimple("TEMPLATE_INACTIVE", "Consent template is inactive", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrConsentNotFound):
		return pkg.NewDomainErrorSimple("CONSENT_NOT_FOUND", "Consent not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrConsentTemplateNotFound):
		return pkg.NewDomainErrorSimple("TEMPLATE_NOT_FOUND", "Consent template not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrConsentAlreadySigned):
		return pkg.NewDomainErrorSimple("CONSENT_ALREADY_SIGNED", "Consent already signed", http.StatusConflict)
	case errors.Is(err, usecase.ErrConsentRevoked):
		return pkg.NewDomainErrorSimple("CONSENT_REVOKED", "Consent revoked", http.StatusConflict)
	case errors.Is(err, usecase.ErrStorageNotReady):
		return pkg.NewDomainError("STORAGE_UNAVAILABLE", "File storage not configured", err, http.StatusServiceUnavailable)
	default:
		return internalError(err)
	}
}

// ListTemplates returns active templates unless ?todas=true.
func (h *ConsentHandler) ListTemplates(c *gin.Context) {
	all, _ := strconv.ParseBool(firstQuery(c, "todas", "all"))
	templates, err := h.usecase.ListTemplates(c.Request.Context(), !all)
	if err != nil {
		writeError(c, mapConsentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromConsentTemplates(templates))
}

func (h *ConsentHandler) CreateTemplate(c *gin.Context) {
	var payload request.ConsentTemplateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest.WithDetails(err.Error()))
		return
	}

	t, err := h.usecase.CreateTemplate(c.Request.Context(), middleware.ActorID(c), usecase.ConsentTemplateCommand{
		Name:      payload.Name,
		Procedure: payload.Procedure,
		Body:      payload.Body,
	})
	if err != nil {
		writeError(c, mapConsentError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromConsentTemplate(t))
}

func (h *ConsentHandler) Generate(c *gin.Context) {
	var payload request.GenerateConsentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest.WithDetails(err.Error()))
		return
	}

	doc, err := h.usecase.Generate(c.Request.Context(), middleware.ActorID(c), usecase.GenerateConsentCommand{
		TemplateID:   payload.TemplateID,
		Patient:      payload.Patient.ToEntity(),
		Professional: payload.Professional.ToEntity(),
		Values:       payload.Values,
	})
	if err != nil {
		writeError(c, mapConsentError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromConsent(doc))
}

func (h *ConsentHandler) GetByID(c *gin.Context) {
	doc, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapConsentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromConsent(doc))
}

func (h *ConsentHandler) ListByPatient(c *gin.Context) {
	patientID := firstQuery(c, "paciente_id", "patient_id")
	if patientID == "" {
		writeError(c, errInvalidRequest.WithDetails("paciente_id is required"))
		return
	}
	docs, err := h.usecase.ListByPatient(c.Request.Context(), patientID)
	if err != nil {
		writeError(c, mapConsentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromConsents(docs))
}

func (h *ConsentHandler) Sign(c *gin.Context) {
	var payload request.SignConsentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest.WithDetails(err.Error()))
		return
	}
	img, contentType, err := payload.DecodeImage()
	if err != nil {
		writeError(c, pkg.NewDomainErrorSimple("INVALID_SIGNATURE", "Invalid signature image", http.StatusBadRequest))
		return
	}

	doc, err := h.usecase.Sign(c.Request.Context(), c.Param("id"), middleware.ActorID(c), usecase.SignConsentCommand{
		SignerName:  strings.TrimSpace(payload.SignerName),
		Image:       img,
		ContentType: contentType,
	})
	if err != nil {
		zap.S().Infof("[consentimiento][handler] sign failed id=%s err=%v", c.Param("id"), err)
		writeError(c, mapConsentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromConsent(doc))
}

func (h *ConsentHandler) Revoke(c *gin.Context) {
	doc, err := h.usecase.Revoke(c.Request.Context(), c.Param("id"), middleware.ActorID(c))
	if err != nil {
		writeError(c, mapConsentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromConsent(doc))
}
