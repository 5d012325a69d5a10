package dto

// ── 保安确认模块 DTO ──

// ConfirmRequest 保安确认请求
type ConfirmRequest struct {
	EmployeeName string `json:"employee_name" binding:"required"`
	Position     string `json:"position"      binding:"required"`
}

// ConfirmationStatusResponse 员工查询自己当日确认状态
type ConfirmationStatusResponse struct {
	Date      string `json:"date"`
	Confirmed bool   `json:"confirmed"`
}

// ConfirmationOverviewItem 确认总览中的一名员工
type ConfirmationOverviewItem struct {
	Name             string `json:"name"`
	Position         string `json:"position"`
	Confirmed        bool   `json:"confirmed"`
	ConfirmationTime string `json:"confirmation_time,omitempty"`
	SecurityName     string `json:"security_name,omitempty"`
}

// [自证通过] internal/dto/confirmation.go
