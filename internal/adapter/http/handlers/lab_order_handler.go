package handlers

import (
	"net/http"
	"strings"

	request "odonto_docs/internal/adapter/http/dto/request"
	response "odonto_docs/internal/adapter/http/dto/response"
	"odonto_docs/internal/adapter/http/middleware"
	"odonto_docs/internal/domain/entities"
	"odonto_docs/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LabOrderHandler serves /ordenes-laboratorio.
type LabOrderHandler struct {
	usecase usecase.ILabOrderUseCase
}

func NewLabOrderHandler(uc usecase.ILabOrderUseCase) *LabOrderHandler {
	return &LabOrderHandler{usecase: uc}
}

func toLabOrderCommand(payload request.LabOrderRequest) usecase.LabOrderCommand {
	return usecase.LabOrderCommand{
		Subject:              payload.Subject.ToEntity(),
		WorkType:             payload.WorkType,
		Teeth:                payload.Teeth,
		Shade:                payload.Shade,
		Instructions:         payload.Instructions,
		Priority:             entities.LabOrderPriority(strings.ToLower(strings.TrimSpace(payload.Priority))),
		ExpectedCompletionAt: payload.ExpectedCompletionAt,
		InitialStatus:        payload.Status,
		Note:                 payload.Note,
	}
}

func (h *LabOrderHandler) Create(c *gin.Context) {
	var payload request.LabOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest.WithDetails(err.Error()))
		return
	}

	order, err := h.usecase.Create(c.Request.Context(), middleware.ActorID(c), toLabOrderCommand(payload))
	if err != nil {
		writeError(c, mapWorkOrderError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromLabOrder(order))
}

func (h *LabOrderHandler) GetByID(c *gin.Context) {
	order, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapWorkOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLabOrder(order))
}

func (h *LabOrderHandler) List(c *gin.Context) {
	filter, err := parseWorkOrderFilter(c)
	if err != nil {
		writeError(c, errInvalidPaging)
		return
	}
	orders, total, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		writeError(c, mapWorkOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.NewListResponse(orders, total, filter.Page, filter.Limit, response.FromLabOrder))
}

func (h *LabOrderHandler) Update(c *gin.Context) {
	var payload request.LabOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest.WithDetails(err.Error()))
		return
	}

	order, err := h.usecase.Update(c.Request.Context(), c.Param("id"), middleware.ActorID(c), toLabOrderCommand(payload))
	if err != nil {
		writeError(c, mapWorkOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLabOrder(order))
}

func (h *LabOrderHandler) ChangeStatus(c *gin.Context) {
	var payload request.StatusChangeRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.ResolveStatus() == "" {
		writeError(c, errInvalidRequest)
		return
	}

	order, err := h.usecase.ChangeStatus(c.Request.Context(), c.Param("id"), payload.ResolveStatus(), middleware.ActorID(c), payload.ResolveNote())
	if err != nil {
		zap.S().Infof("[orden_laboratorio][handler] status change failed id=%s err=%v", c.Param("id"), err)
		writeError(c, mapWorkOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLabOrder(order))
}

func (h *LabOrderHandler) AddAttachments(c *gin.Context) {
	files, err := readUploads(c)
	if err != nil {
		writeError(c, errInvalidRequest.WithDetails(err.Error()))
		return
	}

	order, rejected, err := h.usecase.AddAttachments(c.Request.Context(), c.Param("id"), middleware.ActorID(c), files)
	if err != nil {
		writeError(c, mapWorkOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.NewAttachmentsResponse(response.FromLabOrder(order), rejected))
}

func (h *LabOrderHandler) RemoveAttachment(c *gin.Context) {
	if _, err := h.usecase.RemoveAttachment(c.Request.Context(), c.Param("id"), c.Param("adjunto_id"), middleware.ActorID(c)); err != nil {
		writeError(c, mapWorkOrderError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *LabOrderHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id"), middleware.ActorID(c)); err != nil {
		writeError(c, mapWorkOrderError(err))
		return
	}
	c.Status(http.StatusNoContent)
}
