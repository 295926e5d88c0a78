package handlers

import (
	"net/http"

	request "odonto_docs/internal/adapter/http/dto/request"
	response "odonto_docs/internal/adapter/http/dto/response"
	"odonto_docs/internal/adapter/http/middleware"
	"odonto_docs/internal/domain/entities"
	"odonto_docs/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProsthesisHandler serves /protesis, including the clinic/lab thread.
type ProsthesisHandler struct {
	usecase usecase.IProsthesisUseCase
}

func NewProsthesisHandler(uc usecase.IProsthesisUseCase) *ProsthesisHandler {
	return &ProsthesisHandler{usecase: uc}
}

func toProsthesisCommand(payload request.ProsthesisRequest) usecase.ProsthesisCommand {
	return usecase.ProsthesisCommand{
		Subject:              payload.Subject.ToEntity(),
		ProsthesisType:       payload.ProsthesisType,
		Material:             payload.Material,
		Teeth:                payload.Teeth,
		Observations:         payload.Observations,
		ExpectedCompletionAt: payload.ExpectedCompletionAt,
		Note:                 payload.Note,
	}
}

func (h *ProsthesisHandler) Create(c *gin.Context) {
	var payload request.ProsthesisRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest.WithDetails(err.Error()))
		return
	}

	p, err := h.usecase.Create(c.Request.Context(), middleware.ActorID(c), toProsthesisCommand(payload))
	if err != nil {
		writeError(c, mapWorkOrderError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromProsthesis(p))
}

func (h *ProsthesisHandler) GetByID(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapWorkOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProsthesis(p))
}

func (h *ProsthesisHandler) List(c *gin.Context) {
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
	c.JSON(http.StatusOK, response.NewListResponse(items, total, filter.Page, filter.Limit, response.FromProsthesis))
}

func (h *ProsthesisHandler) Update(c *gin.Context) {
	var payload request.ProsthesisRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest.WithDetails(err.Error()))
		return
	}

	p, err := h.usecase.Update(c.Request.Context(), c.Param("id"), middleware.ActorID(c), toProsthesisCommand(payload))
	if err != nil {
		writeError(c, mapWorkOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProsthesis(p))
}

func (h *ProsthesisHandler) ChangeStatus(c *gin.Context) {
	var payload request.StatusChangeRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.ResolveStatus() == "" {
		writeError(c, errInvalidRequest)
		return
	}

	p, err := h.usecase.ChangeStatus(c.Request.Context(), c.Param("id"), payload.ResolveStatus(), middleware.ActorID(c), payload.ResolveNote())
	if err != nil {
		zap.S().Infof("[protesis][handler] status change failed id=%s err=%v", c.Param("id"), err)
		writeError(c, mapWorkOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProsthesis(p))
}

func (h *ProsthesisHandler) AddFiles(c *gin.Context) {
	files, err := readUploads(c)
	if err != nil {
		writeError(c, errInvalidRequest.WithDetails(err.Error()))
		return
	}

	p, rejected, err := h.usecase.AddAttachments(c.Request.Context(), c.Param("id"), middleware.ActorID(c), files)
	if err != nil {
		writeError(c, mapWorkOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.NewAttachmentsResponse(response.FromProsthesis(p), rejected))
}

func (h *ProsthesisHandler) RemoveFile(c *gin.Context) {
	if _, err := h.usecase.RemoveAttachment(c.Request.Context(), c.Param("id"), c.Param("archivo_id"), middleware.ActorID(c)); err != nil {
		writeError(c, mapWorkOrderError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProsthesisHandler) PostMessage(c *gin.Context) {
	var payload request.MessageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest.WithDetails(err.Error()))
		return
	}

	msg, err := h.usecase.PostMessage(c.Request.Context(), c.Param("id"), middleware.ActorID(c), payload.Content, entities.SenderKind(payload.SenderKind))
	if err != nil {
		writeError(c, mapWorkOrderError(err))
		return
	}
	c.JSON(http.StatusCreated, msg)
}

func (h *ProsthesisHandler) ListMessages(c *gin.Context) {
	msgs, err := h.usecase.ListMessages(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapWorkOrderError(err))
		return
	}
	c.JSON(http.StatusOK, msgs)
}
