// Package help 渲染帮助文本：嵌入的 help.txt 解析为用法行/小节/段落，
// 小节标题与条目着色，整体按终端宽度换行。
// 解析约定（与 help.txt 对齐）：
//   - "Usage: zet" 前缀的行为用法行；
//   - 以 ':' 结尾的行开启小节，其后的条目直到空行为止；
//   - 条目以最后一处双空格切分为 条目/说明 两段；
//   - 其余行为普通段落。
package help

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"zet/internal/style"
)

//go:embed help.txt
var helpText string

const defaultWidth = 100

// Print 将帮助文本渲染到 w。
func Print(w io.Writer, sheet *style.Sheet, version string) {
	width := lineWidth()
	name := sheet.AppName("zet")
	fmt.Fprintf(w, "%s %s\n", name, version)

	lines := strings.Split(strings.TrimRight(helpText, "\n"), "\n")
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		switch {
		case strings.HasPrefix(line, "Usage: zet"):
			rest := strings.TrimPrefix(line, "Usage: zet")
			fmt.Fprintf(w, "%s%s%s\n", sheet.Title("Usage: "), name, rest)
		case strings.HasSuffix(line, ":"):
			fmt.Fprintln(w, sheet.Title(line))
			for i+1 < len(lines) && strings.TrimSpace(lines[i+1]) != "" {
				i++
				printEntry(w, sheet, lines[i], width)
			}
		case strings.TrimSpace(line) == "":
			fmt.Fprintln(w)
		default:
			for _, l := range wrap(line, width) {
				fmt.Fprintln(w, l)
			}
		}
	}
}

// printEntry 输出一条 条目/说明：放得下则同一行，放不下则说明换行缩进。
func printEntry(w io.Writer, sheet *style.Sheet, entry string, width int) {
	entry = strings.TrimRight(entry, " ")
	cut := strings.LastIndex(entry, "  ")
	if cut < 0 {
		fmt.Fprintln(w, sheet.Item(entry))
		return
	}
	item, caption := entry[:cut+2], entry[cut+2:]
	itemW := runewidth.StringWidth(item)
	if itemW+runewidth.StringWidth(caption) <= width {
		fmt.Fprintf(w, "%s%s\n", sheet.Item(item), caption)
		return
	}
	indent := strings.Repeat(" ", min(itemW, width/2))
	fmt.Fprintln(w, sheet.Item(item))
	for _, l := range wrap(caption, width-len(indent)) {
		fmt.Fprintf(w, "%s%s\n", indent, l)
	}
}

// wrap 按显示宽度贪心断行。
func wrap(text string, width int) []string {
	if width <= 0 {
		width = defaultWidth
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}
	var out []string
	cur := words[0]
	curW := runewidth.StringWidth(cur)
	for _, word := range words[1:] {
		ww := runewidth.StringWidth(word)
		if curW+1+ww > width {
			out = append(out, cur)
			cur, curW = word, ww
			continue
		}
		cur += " " + word
		curW += 1 + ww
	}
	return append(out, cur)
}

// lineWidth: 终端宽度，非终端时退回 COLUMNS 环境变量，再退回默认 100。
func lineWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	if s := os.Getenv("COLUMNS"); s != "" {
		if w, err := strconv.Atoi(s); err == nil && w > 0 {
			return w
		}
	}
	return defaultWidth
}
