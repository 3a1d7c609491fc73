// Package style 提供帮助输出的着色：auto/always/never 三档选择，auto 档
// 仅在标准输出是终端时着色。集合结果本身永不着色，只有帮助文本使用样式。
package style

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"zet/pkg/contract"
)

// Choice: 着色档位。
type Choice uint8

const (
	Auto Choice = iota
	Always
	Never
)

// ParseChoice 解析 --color 的取值。
func ParseChoice(s string) (Choice, error) {
	switch s {
	case "auto":
		return Auto, nil
	case "always":
		return Always, nil
	case "never":
		return Never, nil
	default:
		return Auto, fmt.Errorf("%w: invalid --color value %q (expected auto, always or never)", contract.ErrUsage, s)
	}
}

func (c Choice) String() string {
	switch c {
	case Always:
		return "always"
	case Never:
		return "never"
	default:
		return "auto"
	}
}

// Sheet: ANSI 样式表。空前缀即为无色输出。
type Sheet struct {
	app   string // 程序名
	item  string // 条目（子命令/旗标）
	title string // 小节标题
	reset string
}

const (
	green     = "\x1B[32m"
	boldGreen = "\x1B[32;1m"
	yellow    = "\x1B[33m"
	reset     = "\x1B[m"
)

var (
	sheetAlways = Sheet{app: boldGreen, item: green, title: yellow, reset: reset}
	sheetNever  = Sheet{}
)

// New 依据档位与输出目标构造样式表。
// auto 档：stdout 为终端且未设 NO_COLOR/CI 时着色。
func New(c Choice, stdout *os.File) *Sheet {
	switch c {
	case Always:
		return &sheetAlways
	case Never:
		return &sheetNever
	}
	if os.Getenv("NO_COLOR") != "" || os.Getenv("CI") != "" {
		return &sheetNever
	}
	if stdout != nil && term.IsTerminal(int(stdout.Fd())) {
		return &sheetAlways
	}
	return &sheetNever
}

// AppName 以程序名样式包裹 s。
func (sh *Sheet) AppName(s string) string { return sh.app + s + sh.reset }

// Item 以条目样式包裹 s。
func (sh *Sheet) Item(s string) string { return sh.item + s + sh.reset }

// Title 以标题样式包裹 s。
func (sh *Sheet) Title(s string) string { return sh.title + s + sh.reset }
