package help

import (
	"bytes"
	"strings"
	"testing"

	"zet/internal/style"
)

// TestPrintContainsSurface 帮助文本覆盖全部子命令与旗标
func TestPrintContainsSurface(t *testing.T) {
	var buf bytes.Buffer
	Print(&buf, style.New(style.Never, nil), "9.9.9")
	out := buf.String()
	for _, want := range []string{
		"zet 9.9.9", "Usage: ", "union", "intersect", "diff", "single", "multiple",
		"--count-lines", "--count-files", "--count-none", "--count", "--files",
		"--lines", "--color", "--help", "--version",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("help output missing %q:\n%s", want, out)
		}
	}
	if strings.ContainsRune(out, '\x1B') {
		t.Fatalf("never mode emitted control sequences")
	}
}

// TestPrintStyled always 档的标题与条目被着色
func TestPrintStyled(t *testing.T) {
	var buf bytes.Buffer
	Print(&buf, style.New(style.Always, nil), "0.0.0")
	out := buf.String()
	if !strings.Contains(out, "\x1B[33m") || !strings.Contains(out, "\x1B[32m") {
		t.Fatalf("expected styled output:\n%q", out)
	}
}

// TestWrap 贪心断行不超宽且不丢词
func TestWrap(t *testing.T) {
	text := "aa bb cc dd ee"
	lines := wrap(text, 5)
	if len(lines) != 3 {
		t.Fatalf("lines = %#v", lines)
	}
	for _, l := range lines {
		if len(l) > 5 {
			t.Fatalf("line too wide: %q", l)
		}
	}
	if strings.Join(lines, " ") != text {
		t.Fatalf("words lost: %#v", lines)
	}
	// 单词超宽时独占一行，不截断
	lines = wrap("abcdefgh xy", 4)
	if lines[0] != "abcdefgh" || lines[1] != "xy" {
		t.Fatalf("lines = %#v", lines)
	}
}

// TestWrapEmpty 空文本产生一个空行
func TestWrapEmpty(t *testing.T) {
	if lines := wrap("", 10); len(lines) != 1 || lines[0] != "" {
		t.Fatalf("lines = %#v", lines)
	}
}
