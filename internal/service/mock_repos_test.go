package service

import (
	"context"

	"github.com/Zamy17/employee-attendance-system/internal/model"
	"github.com/Zamy17/employee-attendance-system/internal/repository"
	"github.com/Zamy17/employee-attendance-system/pkg/sheeterr"
)

// ── Mock EmployeeRepository ──

type mockEmployeeRepo struct {
	employees []model.Employee
	listErr   error
}

func (m *mockEmployeeRepo) List(_ context.Context) ([]model.Employee, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.employees, nil
}

// ── Mock ConfirmationRepository ──

type mockConfirmationRepo struct {
	confirmations []model.SecurityConfirmation
	appended      []model.SecurityConfirmation
	appendErr     error
}

func (m *mockConfirmationRepo) ListByDate(_ context.Context, date string) ([]model.SecurityConfirmation, error) {
	var result []model.SecurityConfirmation
	for _, c := range m.confirmations {
		if c.Date == date {
			result = append(result, c)
		}
	}
	return result, nil
}

func (m *mockConfirmationRepo) Append(_ context.Context, conf *model.SecurityConfirmation) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.confirmations = append(m.confirmations, *conf)
	m.appended = append(m.appended, *conf)
	return nil
}

// ── Mock AttendanceRepository ──

type leaveStatusCall struct {
	rowIndex  int
	leaveType string
}

type mockAttendanceRepo struct {
	records        []model.AttendanceRecord
	appended       []model.AttendanceRecord
	checkOutCalls  []int
	lastCheckOut   *model.CheckOutUpdate
	leaveCalls     []leaveStatusCall
	appendErr      error
	updateErr      error
	leaveUpdateErr error
}

func (m *mockAttendanceRepo) List(_ context.Context) ([]model.AttendanceRecord, error) {
	return m.records, nil
}

func (m *mockAttendanceRepo) FindByDateName(_ context.Context, date, name string) (*model.AttendanceRecord, error) {
	for i := range m.records {
		if m.records[i].Date == date && m.records[i].Name == name {
			rec := m.records[i]
			return &rec, nil
		}
	}
	return nil, sheeterr.ErrRowNotFound
}

func (m *mockAttendanceRepo) Append(_ context.Context, rec *model.AttendanceRecord) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	rec.RowIndex = len(m.records) + 2
	m.records = append(m.records, *rec)
	m.appended = append(m.appended, *rec)
	return nil
}

func (m *mockAttendanceRepo) UpdateCheckOut(_ context.Context, rowIndex int, upd *model.CheckOutUpdate) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.checkOutCalls = append(m.checkOutCalls, rowIndex)
	m.lastCheckOut = upd
	for i := range m.records {
		if m.records[i].RowIndex == rowIndex {
			m.records[i].CheckOutTime = upd.Time
			m.records[i].CheckOutStatus = upd.Status
			m.records[i].CheckOutPhotoURL = upd.PhotoURL
			m.records[i].CheckOutLocation = upd.Location
			m.records[i].WorkDuration = upd.Duration
		}
	}
	return nil
}

func (m *mockAttendanceRepo) UpdateLeaveStatus(_ context.Context, rowIndex int, leaveType string) error {
	if m.leaveUpdateErr != nil {
		return m.leaveUpdateErr
	}
	m.leaveCalls = append(m.leaveCalls, leaveStatusCall{rowIndex: rowIndex, leaveType: leaveType})
	for i := range m.records {
		if m.records[i].RowIndex == rowIndex {
			m.records[i].CheckInStatus = leaveType
			m.records[i].CheckOutStatus = model.CheckOutLeave
		}
	}
	return nil
}

// ── Mock LeaveRepository ──

type processedCall struct {
	rowIndex   int
	status     string
	approvedBy string
}

type mockLeaveRepo struct {
	requests  []model.LeaveRequest
	appended  []model.LeaveRequest
	processed []processedCall
	appendErr error
	markErr   error
}

func (m *mockLeaveRepo) List(_ context.Context) ([]model.LeaveRequest, error) {
	return m.requests, nil
}

func (m *mockLeaveRepo) FindPending(_ context.Context, date, name string) (*model.LeaveRequest, error) {
	for i := range m.requests {
		if m.requests[i].Date == date && m.requests[i].Name == name &&
			m.requests[i].ApprovalStatus == model.ApprovalPending {
			req := m.requests[i]
			return &req, nil
		}
	}
	return nil, sheeterr.ErrRowNotFound
}

func (m *mockLeaveRepo) Append(_ context.Context, req *model.LeaveRequest) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	req.RowIndex = len(m.requests) + 2
	m.requests = append(m.requests, *req)
	m.appended = append(m.appended, *req)
	return nil
}

func (m *mockLeaveRepo) MarkProcessed(_ context.Context, rowIndex int, status, approvedBy string) error {
	if m.markErr != nil {
		return m.markErr
	}
	m.processed = append(m.processed, processedCall{rowIndex: rowIndex, status: status, approvedBy: approvedBy})
	for i := range m.requests {
		if m.requests[i].RowIndex == rowIndex {
			m.requests[i].ApprovalStatus = status
			m.requests[i].ApprovedBy = approvedBy
		}
	}
	return nil
}

// ── Mock RecapRepository ──

type mockRecapRepo struct {
	recaps []model.MonthlyRecap
}

func (m *mockRecapRepo) ListByMonth(_ context.Context, month string) ([]model.MonthlyRecap, error) {
	var result []model.MonthlyRecap
	for _, r := range m.recaps {
		if r.Month == month {
			result = append(result, r)
		}
	}
	return result, nil
}

// ── 组装 ──

type mockRepos struct {
	employee     *mockEmployeeRepo
	confirmation *mockConfirmationRepo
	attendance   *mockAttendanceRepo
	leave        *mockLeaveRepo
	recap        *mockRecapRepo
}

func newMockRepos() (*repository.Repository, *mockRepos) {
	mocks := &mockRepos{
		employee:     &mockEmployeeRepo{},
		confirmation: &mockConfirmationRepo{},
		attendance:   &mockAttendanceRepo{},
		leave:        &mockLeaveRepo{},
		recap:        &mockRecapRepo{},
	}
	repo := &repository.Repository{
		Employee:     mocks.employee,
		Confirmation: mocks.confirmation,
		Attendance:   mocks.attendance,
		Leave:        mocks.leave,
		Recap:        mocks.recap,
	}
	return repo, mocks
}
