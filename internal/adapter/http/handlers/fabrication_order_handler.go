package handlers

import (
	"net/http"

	request "odonto_docs/internal/adapter/http/dto/request"
	response "odonto_docs/internal/adapter/http/dto/response"
	"odonto_docs/internal/adapter/http/middleware"
	"odonto_docs/internal/usecase"

	"github.com/gin-gonic/gin"
)

// FabricationOrderHandler serves /fabricacion.
type FabricationOrderHandler struct {
	usecase usecase.IFabricationOrderUseCase
}

func NewFabricationOrderHandler(uc usecase.IFabricationOrderUseCase) *FabricationOrderHandler {
	return &FabricationOrderHandler{usecase: uc}
}

func toFabricationCommand(payload request.FabricationOrderRequest) usecase.FabricationOrderCommand {
	return usecase.FabricationOrderCommand{
		Subject:              payload.Subject.ToEntity(),
		PieceType:            payload.PieceType,
		Specification:        payload.Specification.ToEntity(),
		Notes:                payload.Notes,
		ExpectedCompletionAt: payload.ExpectedCompletionAt,
		Note:                 payload.Note,
	}
}

func (h *FabricationOrderHandler) Create(c *gin.Context) {
	var payload request.FabricationOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest.WithDetails(err.Error()))
		return
	}

	o, err := h.usecase.Create(c.Request.Context(), middleware.ActorID(c), toFabricationCommand(payload))
	if err != nil {
		writeError(c, mapWorkOrderError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromFabricationOrder(o))
}

func (h *FabricationOrderHandler) GetByID(c *gin.Context) {
	o, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapWorkOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromFabricationOrder(o))
}

func (h *FabricationOrderHandler) List(c *gin.Context) {
	filter, err := parseWorkOrderFilter(c)
	if err != nil {
		writeError(c, errInvalidPaging)
		return
	}
	items, total, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		writeError(c, mapWorkOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.NewListResponse(items, total, filter.Page, filter.Limit, response.FromFabricationOrder))
}

func (h *FabricationOrderHandler) Update(c *gin.Context) {
	var payload request.FabricationOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest.WithDetails(err.Error()))
		return
	}

	o, err := h.usecase.Update(c.Request.Context(), c.Param("id"), middleware.ActorID(c), toFabricationCommand(payload))
	if err != nil {
		writeError(c, mapWorkOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromFabricationOrder(o))
}

func (h *FabricationOrderHandler) ChangeStatus(c *gin.Context) {
	var payload request.StatusChangeRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.ResolveStatus() == "" {
		writeError(c, errInvalidRequest)
		return
	}

	o, err := h.usecase.ChangeStatus(c.Request.Context(), c.Param("id"), payload.ResolveStatus(), middleware.ActorID(c), payload.ResolveNote())
	if err != nil {
		writeError(c, mapWorkOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromFabricationOrder(o))
}

func (h *FabricationOrderHandler) AddAttachments(c *gin.Context) {
	files, err := readUploads(c)
	if err != nil {
		writeError(c, errInvalidRequest.WithDetails(err.Error()))
		return
	}

	o, rejected, err := h.usecase.AddAttachments(c.Request.Context(), c.Param("id"), middleware.ActorID(c), files)
	if err != nil {
		writeError(c, mapWorkOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.NewAttachmentsResponse(response.FromFabricationOrder(o), rejected))
}

func (h *FabricationOrderHandler) RemoveAttachment(c *gin.Context) {
	if _, err := h.usecase.RemoveAttachment(c.Request.Context(), c.Param("id"), c.Param("adjunto_id"), middleware.ActorID(c)); err != nil {
		writeError(c, mapWorkOrderError(err))
		return
	}
	c.Status(http.StatusNoContent)
}
