package style

import (
	"errors"
	"strings"
	"testing"

	"zet/pkg/contract"
)

// TestParseChoice 取值解析
func TestParseChoice(t *testing.T) {
	for s, want := range map[string]Choice{"auto": Auto, "always": Always, "never": Never} {
		got, err := ParseChoice(s)
		if err != nil || got != want {
			t.Fatalf("ParseChoice(%q) = %v, %v", s, got, err)
		}
	}
	if _, err := ParseChoice("rainbow"); !errors.Is(err, contract.ErrUsage) {
		t.Fatalf("err = %v", err)
	}
}

// TestNeverIsPlain never 档不产生任何控制序列
func TestNeverIsPlain(t *testing.T) {
	sh := New(Never, nil)
	for _, got := range []string{sh.AppName("zet"), sh.Item("union"), sh.Title("Options:")} {
		if strings.ContainsRune(got, '\x1B') {
			t.Fatalf("styled output in never mode: %q", got)
		}
	}
	if sh.Item("union") != "union" {
		t.Fatalf("content altered: %q", sh.Item("union"))
	}
}

// TestAlwaysWrapsContent always 档前后包裹且内容保留
func TestAlwaysWrapsContent(t *testing.T) {
	sh := New(Always, nil)
	got := sh.Title("Commands:")
	if !strings.HasPrefix(got, yellow) || !strings.HasSuffix(got, reset) || !strings.Contains(got, "Commands:") {
		t.Fatalf("title = %q", got)
	}
	if !strings.HasPrefix(sh.AppName("zet"), boldGreen) {
		t.Fatalf("app = %q", sh.AppName("zet"))
	}
}

// TestAutoWithoutTTY 非终端输出的 auto 档退回无色
func TestAutoWithoutTTY(t *testing.T) {
	// 测试进程的 stdout 不是终端；nil 同样视为非终端
	sh := New(Auto, nil)
	if sh.Item("x") != "x" {
		t.Fatalf("auto chose color without a tty")
	}
}
