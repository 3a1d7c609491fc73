package contract

// Emitter: 把最终 (行, 计数) 序列渲染为输出字节（BOM 回写、终止符恢复、
// 计数列格式化）。
// 约束：
// 1) Begin 恰好一次，在任何 Line 之前；width<=0 表示不输出计数列；
// 2) Line 按最终顺序逐行调用；count 在无计数模式下恒为 0；
// 3) Flush 恰好一次，在全部 Line 之后；
// 4) 错误直接上抛，不做部分输出承诺。
type Emitter interface {
	Begin(f Framing, width int) error
	Line(line string, count uint32) error
	Flush() error
}
