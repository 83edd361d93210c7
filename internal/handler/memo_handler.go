package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/memoday/memoday-backend/internal/common"
	"github.com/memoday/memoday-backend/internal/domain"
	"github.com/memoday/memoday-backend/internal/middleware"
	"github.com/memoday/memoday-backend/internal/service"
)

// MemoHandler handles memo requests
type MemoHandler struct {
	service service.MemoService
}

// NewMemoHandler creates a new MemoHandler
func NewMemoHandler(service service.MemoService) *MemoHandler {
	return &MemoHandler{service: service}
}

// ListMemos handles GET /api/memos
// @Summary List memos
// @Description Returns all memos owned by the signed-in user, newest first
// @Tags memos
// @Produce json
// @Success 200 {object} common.APIResponse{data=[]domain.MemoResponse}
// @Failure 401 {object} common.APIResponse
// @Security SessionCookie
// @Router /memos [get]
func (h *MemoHandler) ListMemos(c *gin.Context) {
	userID := middleware.GetUserID(c)

	memos, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch memos", err)
		return
	}

	middleware.CountMemoOperation("list")
	common.SuccessResponse(c, memos, &common.Meta{Total: int64(len(memos))})
}

// GetMemo handles GET /api/memos/:id
// @Summary Get a memo
// @Tags memos
// @Produce json
// @Param id path int true "Memo ID"
// @Success 200 {object} common.APIResponse{data=domain.MemoResponse}
// @Failure 404 {object} common.APIResponse
// @Security SessionCookie
// @Router /memos/{id} [get]
func (h *MemoHandler) GetMemo(c *gin.Context) {
	userID := middleware.GetUserID(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		common.ErrorResponse(c, http.StatusNotFound, "Memo not found", nil)
		return
	}

	memo, err := h.service.Get(c.Request.Context(), userID, id)
	if err != nil {
		h.mapError(c, err, "Failed to fetch memo")
		return
	}

	middleware.CountMemoOperation("get")
	common.SuccessResponse(c, memo, nil)
}

// CreateMemo handles POST /api/memos
// @Summary Create a memo
// @Description Creates a memo owned by the signed-in user. Title and content are required.
// @Tags memos
// @Accept json
// @Produce json
// @Param request body domain.MemoRequest true "Memo fields"
// @Success 200 {object} common.APIResponse{data=domain.MemoResponse}
// @Failure 400 {object} common.APIResponse
// @Failure 401 {object} common.APIResponse
// @Security SessionCookie
// @Router /memos [post]
func (h *MemoHandler) CreateMemo(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req domain.MemoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	memo, err := h.service.Create(c.Request.Context(), userID, &req)
	if err != nil {
		h.mapError(c, err, "Failed to create memo")
		return
	}

	middleware.CountMemoOperation("create")
	common.SuccessResponse(c, memo, nil)
}

// UpdateMemo handles PUT /api/memos/:id
// @Summary Update a memo
// @Description Overwrites title and content of an owned memo
// @Tags memos
// @Accept json
// @Produce json
// @Param id path int true "Memo ID"
// @Param request body domain.MemoRequest true "Memo fields"
// @Success 200 {object} common.APIResponse{data=domain.MemoResponse}
// @Failure 404 {object} common.APIResponse
// @Security SessionCookie
// @Router /memos/{id} [put]
func (h *MemoHandler) UpdateMemo(c *gin.Context) {
	userID := middleware.GetUserID(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		common.ErrorResponse(c, http.StatusNotFound, "Memo not found", nil)
		return
	}

	var req domain.MemoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	memo, err := h.service.Update(c.Request.Context(), userID, id, &req)
	if err != nil {
		h.mapError(c, err, "Failed to update memo")
		return
	}

	middleware.CountMemoOperation("update")
	common.SuccessResponse(c, memo, nil)
}

// DeleteMemo handles DELETE /api/memos/:id
// @Summary Delete a memo
// @Tags memos
// @Produce json
// @Param id path int true "Memo ID"
// @Success 200 {object} common.APIResponse{data=domain.DeleteMemoResponse}
// @Failure 404 {object} common.APIResponse
// @Security SessionCookie
// @Router /memos/{id} [delete]
func (h *MemoHandler) DeleteMemo(c *gin.Context) {
	userID := middleware.GetUserID(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		common.ErrorResponse(c, http.StatusNotFound, "Memo not found", nil)
		return
	}

	if err := h.service.Delete(c.Request.Context(), userID, id); err != nil {
		h.mapError(c, err, "Failed to delete memo")
		return
	}

	middleware.CountMemoOperation("delete")
	common.SuccessResponse(c, domain.DeleteMemoResponse{Message: "Memo deleted successfully"}, nil)
}

// mapError translates service errors to HTTP statuses. Store failures
// become a generic 500; whether a memo is absent or foreign is not
// distinguishable from the response.
func (h *MemoHandler) mapError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, common.ErrInvalidInput):
		common.ErrorResponse(c, http.StatusBadRequest, "Title and content are required", nil)
	case errors.Is(err, common.ErrMemoNotFound):
		common.ErrorResponse(c, http.StatusNotFound, "Memo not found", nil)
	default:
		common.ErrorResponse(c, http.StatusInternalServerError, fallback, err)
	}
}
