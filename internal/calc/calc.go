// Package calc 实现五种集合算子与共享驱动循环。
// 设计要点：
//   - 算子为闭合枚举，启动时选定一次，驱动循环按行调用 Ledger，不做逐行
//     动态分派；
//   - 操作数严格按命令行顺序串行消费（Intersect/Diff 的收窄/删除语义依赖
//     该顺序）；
//   - 输出只在最后一个操作数处理完后一次性产生；Intersect/Diff 在 Ledger
//     提前清空时跳过剩余操作数。
package calc

import (
	"context"
	"math"

	"zet/internal/ledger"
	"zet/internal/tally"
	"zet/pkg/contract"
)

// OpName: 集合算子。
type OpName uint8

const (
	// Union: 输出出现在任一操作数中的行。
	Union OpName = iota
	// Intersect: 输出出现在每个操作数中的行。
	Intersect
	// Diff: 输出只出现在首操作数中的行。
	Diff
	// Single: 输出恰好出现一次的行（口径由 Basis 决定）。
	Single
	// Multiple: 输出出现多于一次的行（口径由 Basis 决定）。
	Multiple
)

func (op OpName) String() string {
	switch op {
	case Union:
		return "union"
	case Intersect:
		return "intersect"
	case Diff:
		return "diff"
	case Single:
		return "single"
	case Multiple:
		return "multiple"
	default:
		return "unknown"
	}
}

// Basis: Single/Multiple 的计数口径。
type Basis uint8

const (
	// ByLine: 按总行数（同一操作数内的重复也计入）。
	ByLine Basis = iota
	// ByFile: 按不同操作数个数（同一操作数内的重复只计一次）。
	ByFile
)

// Calculate 对 first（首操作数完整缓冲）与 rest（后续操作数）执行算子 op，
// 并把最终序列交给 em 渲染。mode 决定输出附带的计数；basis 决定
// Single/Multiple 的筛选字段。
func Calculate(ctx context.Context, op OpName, basis Basis, mode tally.Mode, first []byte, rest []contract.Operand, em contract.Emitter) error {
	// 序号空间守卫：操作数序号为 uint32，1 起。
	if len(rest) >= math.MaxUint32-1 {
		return contract.ErrTooManyOperands
	}

	led := ledger.NewFromBuffer(first)

	switch op {
	case Union, Single, Multiple:
		// 全量 observe，扫描期间不删除；Single/Multiple 的谓词只有在
		// 全部输入读完后才可求值。
		id := contract.OperandID(1)
		for _, o := range rest {
			id++
			if err := forEach(ctx, o, func(line []byte) {
				led.Observe(line, id)
			}); err != nil {
				return err
			}
		}
		switch op {
		case Single:
			led.Retain(func(e ledger.Entry) bool { return count(basis, e) == 1 })
		case Multiple:
			led.Retain(func(e ledger.Entry) bool { return count(basis, e) > 1 })
		}

	case Intersect:
		// 每轮把操作数 i 触及的条目确认为 LastSeen==i，收尾摘除未确认者：
		// 缺席任何一个操作数即被排除。
		id := contract.OperandID(1)
		for _, o := range rest {
			id++
			if led.Len() == 0 {
				return emit(led, mode, em) // 空集不可能再变，提前终止
			}
			if err := forEach(ctx, o, func(line []byte) {
				led.Touch(line, id)
			}); err != nil {
				return err
			}
			confirmed := id
			led.Retain(func(e ledger.Entry) bool { return e.LastSeen == confirmed })
		}

	case Diff:
		// 行在任何后续操作数中出现即永久摘除，无论之后是否再现。
		for _, o := range rest {
			if led.Len() == 0 {
				return emit(led, mode, em)
			}
			if err := forEach(ctx, o, led.Delete); err != nil {
				return err
			}
		}
	}

	return emit(led, mode, em)
}

func count(b Basis, e ledger.Entry) uint32 {
	if b == ByFile {
		return e.Distinct
	}
	return e.Total
}

// forEach 在操作数边界检查取消，再逐行回调。
func forEach(ctx context.Context, o contract.Operand, fn func(line []byte)) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	return o.ForEachLine(ctx, func(line []byte) error {
		fn(line)
		return nil
	})
}

// emit 产出最终序列：计数模式下先一遍求最大计数定列宽，再按首现序逐行交给
// Emitter。
func emit(led *ledger.Ledger, mode tally.Mode, em contract.Emitter) error {
	width := 0
	if mode.Counted() {
		var max uint32
		_ = led.Range(func(_ string, e ledger.Entry) error {
			if c := mode.Count(e); c > max {
				max = c
			}
			return nil
		})
		width = tally.Width(max)
	}
	if err := em.Begin(led.Framing(), width); err != nil {
		return err
	}
	if err := led.Range(func(line string, e ledger.Entry) error {
		return em.Line(line, mode.Count(e))
	}); err != nil {
		return err
	}
	return em.Flush()
}
