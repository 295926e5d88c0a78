package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	request "odonto_docs/internal/adapter/http/dto/request"
	response "odonto_docs/internal/adapter/http/dto/response"
	"odonto_docs/internal/adapter/http/middleware"
	"odonto_docs/internal/domain/entities"
	"odonto_docs/internal/usecase"
	"odonto_docs/internal/usecase/interfaces"
	"odonto_docs/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LabInvoiceHandler serves /lab-invoices.
type LabInvoiceHandler struct {
	usecase usecase.ILabInvoiceUseCase
}

func NewLabInvoiceHandler(uc usecase.ILabInvoiceUseCase) *LabInvoiceHandler {
	return &LabInvoiceHandler{usecase: uc}
}

func mapLabInvoiceError(err error) *pkg.AppError {
	if appErr, ok := mapCommonError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidLabInvoiceID), errors.Is(err, usecase.ErrInvalidLabInvoicePayload):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPaymentPayload):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_PAYLOAD", "Invalid payment payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLabInvoiceNotFound):
		return pkg.NewDomainErrorSimple("LAB_INVOICE_NOT_FOUND", "Lab invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLabInvoicePaid):
		return pkg.NewDomainErrorSimple("LAB_INVOICE_PAID", "Lab invoice already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrLabInvoiceNotPending):
		return pkg.NewDomainErrorSimple("LAB_INVOICE_NOT_PENDING", "Lab invoice is not pending", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentInProgress):
		return pkg.NewDomainErrorSimple("PAYMENT_IN_PROGRESS", "A payment for this invoice is already in progress", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentNotApproved):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_APPROVED", err.Error(), http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrPaymentGatewayNotReady):
		return pkg.NewDomainError("PAYMENT_GATEWAY_UNAVAILABLE", "Payment gateway not configured", err, http.StatusServiceUnavailable)
	default:
		return internalError(err)
	}
}

func toLabInvoiceCommand(payload request.LabInvoiceRequest) usecase.LabInvoiceCommand {
	return usecase.LabInvoiceCommand{
		Number:   payload.Number,
		Lab:      payload.Lab.ToEntity(),
		IssuedAt: payload.IssuedAt,
		DueAt:    payload.DueAt,
		Items:    payload.ItemsToEntity(),
	}
}

func (h *LabInvoiceHandler) Create(c *gin.Context) {
	var payload request.LabInvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest.WithDetails(err.Error()))
		return
	}

	inv, err := h.usecase.Create(c.Request.Context(), middleware.ActorID(c), toLabInvoiceCommand(payload))
	if err != nil {
		writeError(c, mapLabInvoiceError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromLabInvoice(inv))
}

func (h *LabInvoiceHandler) GetByID(c *gin.Context) {
	inv, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapLabInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLabInvoice(inv))
}

func (h *LabInvoiceHandler) List(c *gin.Context) {
	page, limit, err := parsePaging(c)
	if err != nil {
		writeError(c, errInvalidPaging)
		return
	}
	filter := interfaces.LabInvoiceFilter{
		LabID:  firstQuery(c, "laboratorio_id", "lab_id"),
		Status: entities.LabInvoiceStatus(firstQuery(c, "estado", "status")),
		Page:   page,
		Limit:  limit,
	}
	items, total, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		writeError(c, mapLabInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.NewListResponse(items, total, page, limit, response.FromLabInvoice))
}

func (h *LabInvoiceHandler) Update(c *gin.Context) {
	var payload request.LabInvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest.WithDetails(err.Error()))
		return
	}

	inv, err := h.usecase.Update(c.Request.Context(), c.Param("id"), middleware.ActorID(c), toLabInvoiceCommand(payload))
	if err != nil {
		writeError(c, mapLabInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLabInvoice(inv))
}

func (h *LabInvoiceHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id"), middleware.ActorID(c)); err != nil {
		writeError(c, mapLabInvoiceError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// Pay forwards the raw body as the provider payload. An empty body is allowed.
func (h *LabInvoiceHandler) Pay(c *gin.Context) {
	payload, err := readPaymentPayload(c)
	if err != nil {
		writeError(c, pkg.NewDomainErrorSimple("INVALID_PAYMENT_PAYLOAD", "Invalid payment payload", http.StatusBadRequest))
		return
	}

	inv, err := h.usecase.Pay(c.Request.Context(), c.Param("id"), middleware.ActorID(c), payload)
	if err != nil {
		zap.S().Infof("[lab-invoice][handler] pay failed id=%s err=%v", c.Param("id"), err)
		writeError(c, mapLabInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLabInvoice(inv))
}

func (h *LabInvoiceHandler) Cancel(c *gin.Context) {
	inv, err := h.usecase.Cancel(c.Request.Context(), c.Param("id"), middleware.ActorID(c))
	if err != nil {
		writeError(c, mapLabInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLabInvoice(inv))
}

// readPaymentPayload accepts either the provider payload itself or an envelope
// {"mp_payload": {...}}.
func readPaymentPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(string(raw)) == "" {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("payload is not valid json")
	}

	var envelope struct {
		MPPayload json.RawMessage `json:"mp_payload"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && len(envelope.MPPayload) > 0 {
		return envelope.MPPayload, nil
	}
	return raw, nil
}
