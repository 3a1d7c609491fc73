// Package filesystem 提供基于文件系统与 STDIN 的操作数摄取。
// 分工：
//   - First: 首操作数完整读入内存（其缓冲在整个运行期间存续，供借用键
//     使用）；带 UTF-16 BOM 时整体转码为 UTF-8，BOM 以 UTF-8 形式保留；
//   - Later: 后续操作数惰性打开、流式逐行回调；BOM 嗅探后剥离，UTF-16
//     解码为 UTF-8，其余字节原样透传。
package filesystem

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"zet/pkg/contract"
)

// Options: 最小必要选项。
type Options struct {
	// BufSize 为后续操作数的读缓冲区大小（字节）。默认 32KiB。
	BufSize int
}

const defaultBufSize = 32 * 1024

// First 读取首操作数的全部内容。path 为 "-" 时读 STDIN。
func First(path string) ([]byte, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return nil, errors.Wrap(err, "can't read standard input")
		}
	} else {
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "can't read file: %s", path)
		}
	}
	return decodeIfUTF16(data), nil
}

// decodeIfUTF16: 缓冲以 UTF-16LE/BE BOM 开头时整体转码为 UTF-8，否则原样
// 返回。BOM 字符 U+FEFF 随解码变为 UTF-8 BOM（EF BB BF），由输出层决定
// 是否回写。畸形序列替换为 U+FFFD，不报错。
func decodeIfUTF16(candidate []byte) []byte {
	var endian unicode.Endianness
	switch {
	case len(candidate) >= 2 && candidate[0] == 0xFF && candidate[1] == 0xFE:
		endian = unicode.LittleEndian
	case len(candidate) >= 2 && candidate[0] == 0xFE && candidate[1] == 0xFF:
		endian = unicode.BigEndian
	default:
		return candidate
	}
	// IgnoreBOM: 不消耗 BOM，令其作为普通 U+FEFF 参与解码。
	dec := unicode.UTF16(endian, unicode.IgnoreBOM).NewDecoder()
	out, err := dec.Bytes(candidate)
	if err != nil {
		return candidate
	}
	return out
}

// Later 为每个路径构造惰性操作数；打开推迟到 ForEachLine。
func Later(paths []string, opts *Options) []contract.Operand {
	bufSize := defaultBufSize
	if opts != nil && opts.BufSize > 0 {
		bufSize = opts.BufSize
	}
	ops := make([]contract.Operand, 0, len(paths))
	for _, p := range paths {
		ops = append(ops, &operand{path: p, bufSize: bufSize})
	}
	return ops
}

type operand struct {
	path    string
	bufSize int
}

func (o *operand) Name() string { return o.path }

// ForEachLine 打开来源并逐行回调：行终止符（\n 与行尾 \r）已剥离，末尾
// 无终止符的行照常产出。line 只在回调期间有效。
func (o *operand) ForEachLine(ctx context.Context, fn func(line []byte) error) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	var src io.Reader
	if o.path == "-" {
		src = os.Stdin
	} else {
		f, err := os.Open(o.path)
		if err != nil {
			return errors.Wrapf(err, "can't open file: %s", o.path)
		}
		defer f.Close()
		src = f
	}

	// BOM 嗅探：UTF-8/UTF-16 BOM 被剥离并选择对应解码器；无 BOM 时字节
	// 原样透传（不强制 UTF-8 校验）。
	r := transform.NewReader(src, unicode.BOMOverride(transform.Nop))
	br := bufio.NewReaderSize(r, o.bufSize)
	for {
		line, err := br.ReadBytes('\n')
		if len(line) > 0 {
			if line[len(line)-1] == '\n' {
				line = line[:len(line)-1]
				if len(line) > 0 && line[len(line)-1] == '\r' {
					line = line[:len(line)-1]
				}
			}
			if cbErr := fn(line); cbErr != nil {
				return cbErr
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			if errors.Is(err, transform.ErrShortSrc) || errors.Is(err, transform.ErrShortDst) {
				return errors.Wrapf(contract.ErrEncoding, "reading %s: %v", o.path, err)
			}
			return errors.Wrapf(err, "error reading file: %s", o.path)
		}
	}
}
