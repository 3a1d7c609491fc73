// Package stream 实现面向字节流（通常是 stdout）的 Emitter：回写首操作数
// 的 BOM、恢复其行终止符、按需输出右对齐的计数列，整体缓冲、末尾一次
// Flush。
package stream

import (
	"bufio"
	"fmt"
	"io"

	"zet/pkg/contract"
)

// Options: 最小必要选项。
type Options struct {
	// BufSize: 写缓冲区大小；<=0 使用默认 64KiB。
	BufSize int
}

type Stream struct {
	w          *bufio.Writer
	terminator string
	width      int
}

var _ contract.Emitter = (*Stream)(nil)

// New 创建写入 w 的 Emitter。
func New(w io.Writer, opts *Options) *Stream {
	bsz := 64 * 1024
	if opts != nil && opts.BufSize > 0 {
		bsz = opts.BufSize
	}
	return &Stream{w: bufio.NewWriterSize(w, bsz)}
}

// Begin 记录框架并回写 BOM（若首操作数带有）。
func (s *Stream) Begin(f contract.Framing, width int) error {
	s.terminator = f.Terminator()
	s.width = width
	if f.BOM {
		if _, err := s.w.WriteString("\xEF\xBB\xBF"); err != nil {
			return err
		}
	}
	return nil
}

// Line 输出一行：可选计数列（右对齐 + 单空格）+ 行内容 + 终止符。
func (s *Stream) Line(line string, count uint32) error {
	if s.width > 0 {
		if _, err := fmt.Fprintf(s.w, "%*d ", s.width, count); err != nil {
			return err
		}
	}
	if _, err := s.w.WriteString(line); err != nil {
		return err
	}
	_, err := s.w.WriteString(s.terminator)
	return err
}

// Flush 提交缓冲。
func (s *Stream) Flush() error { return s.w.Flush() }
