package contract

// OperandID: 操作数序号（1 起，按命令行顺序分配；运行期稳定）。
// 仅用于判定“同一行出现在新操作数”与“同一操作数内重复”，不对用户暴露。
type OperandID uint32

// Framing: 由首操作数决定的输出框架。
// 约束：
//   - BOM: 首操作数以 UTF-8 BOM 开头时为 true，输出前原样回写；
//   - CRLF: 首操作数首行以 \r\n 结尾时为 true，所有输出行统一使用 \r\n，
//     否则统一使用 \n。
type Framing struct {
	BOM  bool
	CRLF bool
}

// Terminator 返回输出使用的行终止符。
func (f Framing) Terminator() string {
	if f.CRLF {
		return "\r\n"
	}
	return "\n"
}
