package contract

import "context"

// Operand: 第二个及之后的输入源（文件或 STDIN）的惰性、单遍行序列。
// 约束：
// 1) 行已归一：终止符已剥离、编码已转为 UTF-8、BOM 已剥离；
// 2) 打开/读取错误在 ForEachLine 内上抛，调用方不重试；
// 3) 回调返回错误即中止迭代并原样上抛；
// 4) line 仅在回调期间有效，实现可复用底层缓冲；需要留存时由调用方拷贝；
// 5) 不在内部起并发。
type Operand interface {
	// Name 返回用于错误信息的来源名（路径或 "-"）。
	Name() string
	ForEachLine(ctx context.Context, fn func(line []byte) error) error
}
