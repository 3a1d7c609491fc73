package diag

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"zet/pkg/contract"
)

// Code 是最小错误分类代码，用于日志与退出码映射。
type Code string

const (
	CodeUnknown  Code = "unknown"
	CodeUsage    Code = "usage"
	CodeIO       Code = "io"
	CodeEncoding Code = "encoding"
	CodeCancel   Code = "cancel"
)

// Classify 将错误归为最小分类。
// 说明：仅依赖哨兵错误与标准库错误类型，不做字符串匹配。
func Classify(err error) Code {
	if err == nil {
		return CodeUnknown
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return CodeCancel
	}
	if errors.Is(err, contract.ErrUsage) || errors.Is(err, contract.ErrTooManyOperands) {
		return CodeUsage
	}
	if errors.Is(err, contract.ErrEncoding) {
		return CodeEncoding
	}
	var perr *os.PathError
	if errors.As(err, &perr) || errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
		return CodeIO
	}
	return CodeUnknown
}

// ExitCode 把分类映射为进程退出码：参数错误 2，其余错误 1。
func ExitCode(c Code) int {
	if c == CodeUsage {
		return 2
	}
	return 1
}
