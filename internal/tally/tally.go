// Package tally 定义计数策略：输出附带哪种计数（总行数 / 不同操作数数），
// 或者完全不计数。策略只决定读取 Ledger 条目中的哪个计数字段，旗标间的
// 覆盖解析发生在参数解析层。
package tally

import "zet/internal/ledger"

// Mode: 计数模式。
type Mode uint8

const (
	// None: 不输出计数列。
	None Mode = iota
	// Lines: 输出该行在全部输入中出现的总行数。
	Lines
	// Files: 输出该行出现过的不同操作数个数。
	Files
)

func (m Mode) String() string {
	switch m {
	case Lines:
		return "lines"
	case Files:
		return "files"
	default:
		return "none"
	}
}

// Counted 报告是否需要输出计数列。
func (m Mode) Counted() bool { return m != None }

// Count 从条目中取出本模式对应的计数。None 模式恒为 0。
func (m Mode) Count(e ledger.Entry) uint32 {
	switch m {
	case Lines:
		return e.Total
	case Files:
		return e.Distinct
	default:
		return 0
	}
}

// Width 返回 max 的十进制位数，用于计数列右对齐。
func Width(max uint32) int {
	w := 1
	for max >= 10 {
		max /= 10
		w++
	}
	return w
}
