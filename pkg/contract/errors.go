package contract

import "errors"

// 最小错误分类哨兵。
var (
	// ErrUsage: 参数/旗标错误（在读取任何操作数之前检出）。
	ErrUsage = errors.New("usage error")
	// ErrEncoding: 输入解码失败（上游转码错误视为致命，不做恢复）。
	ErrEncoding = errors.New("encoding error")
	// ErrTooManyOperands: 操作数个数超出序号空间。
	ErrTooManyOperands = errors.New("too many operands")
)
