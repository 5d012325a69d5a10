package repository

import (
	"context"
	"errors"

	"github.com/Zamy17/employee-attendance-system/internal/sheets"
)

// fakeClient sheets.Client 的内存假实现
// updates 记录每次定点写入；failAt 非空时，写到该单元格返回错误
type fakeClient struct {
	tables   map[string][]sheets.Record
	appended map[string][][]string
	updates  []cellWrite
	failAt   string
}

type cellWrite struct {
	sheet string
	ref   string
	value string
}

var errFakeWrite = errors.New("模拟写入失败")

func newFakeClient() *fakeClient {
	return &fakeClient{
		tables:   make(map[string][]sheets.Record),
		appended: make(map[string][][]string),
	}
}

func (f *fakeClient) ReadAll(_ context.Context, sheet string) ([]sheets.Record, error) {
	return f.tables[sheet], nil
}

func (f *fakeClient) AppendRow(_ context.Context, sheet string, row []string) error {
	f.appended[sheet] = append(f.appended[sheet], row)
	return nil
}

func (f *fakeClient) UpdateCell(_ context.Context, sheet string, cellRef string, value string) error {
	if f.failAt != "" && cellRef == f.failAt {
		return errFakeWrite
	}
	f.updates = append(f.updates, cellWrite{sheet: sheet, ref: cellRef, value: value})
	return nil
}
