package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/Zamy17/employee-attendance-system/internal/dto"
	"github.com/Zamy17/employee-attendance-system/internal/model"
)

func setupConfirmationService(now time.Time) (ConfirmationService, *mockRepos) {
	repo, mocks := newMockRepos()
	svc := NewConfirmationService(repo, zap.NewNop()).(*confirmationService)
	svc.now = func() time.Time { return now }
	return svc, mocks
}

func at(hour, minute int) time.Time {
	return time.Date(2026, 9, 1, hour, minute, 0, 0, time.Local)
}

var securityID = model.Identity{Name: "李娜", Position: "保安主管", Role: model.RoleSecurity}

// ── Confirm 测试 ──

func TestConfirmationService_Confirm_WithinWindow(t *testing.T) {
	svc, mocks := setupConfirmationService(at(7, 15))

	conf, err := svc.Confirm(context.Background(), securityID, &dto.ConfirmRequest{
		EmployeeName: "张伟",
		Position:     "前台",
	})
	if err != nil {
		t.Fatalf("Confirm 应成功: %v", err)
	}
	if conf.Date != "2026-09-01" || conf.ConfirmationTime != "07:15" {
		t.Errorf("确认行时间错误: %+v", conf)
	}
	if conf.SecurityName != "李娜" || conf.EmployeeName != "张伟" {
		t.Errorf("确认行身份错误: %+v", conf)
	}
	if len(mocks.confirmation.appended) != 1 {
		t.Errorf("期望追加 1 行，实际 %d", len(mocks.confirmation.appended))
	}
}

func TestConfirmationService_Confirm_OutsideWindow(t *testing.T) {
	for _, now := range []time.Time{at(5, 59), at(9, 0), at(14, 30)} {
		svc, mocks := setupConfirmationService(now)

		_, err := svc.Confirm(context.Background(), securityID, &dto.ConfirmRequest{
			EmployeeName: "张伟",
			Position:     "前台",
		})
		if !errors.Is(err, ErrOutsideConfirmWindow) {
			t.Errorf("%s 期望 ErrOutsideConfirmWindow，实际: %v", now.Format("15:04"), err)
		}
		if len(mocks.confirmation.appended) != 0 {
			t.Error("窗口外不应写入任何行")
		}
	}
}

func TestConfirmationService_Confirm_NoDedup(t *testing.T) {
	// 网关本身不去重：同一人确认两次会落两行，由调用方先查 IsConfirmed
	svc, mocks := setupConfirmationService(at(7, 0))
	req := &dto.ConfirmRequest{EmployeeName: "张伟", Position: "前台"}

	if _, err := svc.Confirm(context.Background(), securityID, req); err != nil {
		t.Fatalf("第一次 Confirm 应成功: %v", err)
	}
	if _, err := svc.Confirm(context.Background(), securityID, req); err != nil {
		t.Fatalf("第二次 Confirm 也应成功: %v", err)
	}
	if len(mocks.confirmation.appended) != 2 {
		t.Errorf("期望落 2 行，实际 %d", len(mocks.confirmation.appended))
	}
}

// ── IsConfirmed 测试 ──

func TestConfirmationService_IsConfirmed(t *testing.T) {
	svc, mocks := setupConfirmationService(at(7, 0))
	mocks.confirmation.confirmations = []model.SecurityConfirmation{
		{Date: "2026-09-01", SecurityName: "李娜", EmployeeName: "张伟", ConfirmationTime: "06:45"},
	}

	ok, err := svc.IsConfirmed(context.Background(), "2026-09-01", "张伟")
	if err != nil || !ok {
		t.Errorf("张伟 2026-09-01 应已确认: ok=%v err=%v", ok, err)
	}

	ok, _ = svc.IsConfirmed(context.Background(), "2026-09-01", "王强")
	if ok {
		t.Error("王强未确认，不应返回 true")
	}

	ok, _ = svc.IsConfirmed(context.Background(), "2026-09-02", "张伟")
	if ok {
		t.Error("其他日期不应命中")
	}
}

// ── Overview 测试 ──

func TestConfirmationService_Overview(t *testing.T) {
	svc, mocks := setupConfirmationService(at(7, 0))
	mocks.employee.employees = []model.Employee{
		{Name: "张伟", Position: "前台", Role: model.RoleEmployee},
		{Name: "王强", Position: "司机", Role: model.RoleEmployee},
		{Name: "李娜", Position: "保安主管", Role: model.RoleSecurity}, // 不进名单
	}
	mocks.confirmation.confirmations = []model.SecurityConfirmation{
		{Date: "2026-09-01", SecurityName: "李娜", EmployeeName: "张伟", ConfirmationTime: "06:45"},
	}

	items, err := svc.Overview(context.Background(), "2026-09-01")
	if err != nil {
		t.Fatalf("Overview 应成功: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("期望 2 名员工，实际 %d", len(items))
	}
	if !items[0].Confirmed || items[0].ConfirmationTime != "06:45" || items[0].SecurityName != "李娜" {
		t.Errorf("张伟应已确认: %+v", items[0])
	}
	if items[1].Confirmed {
		t.Errorf("王强不应已确认: %+v", items[1])
	}
}
