package config

import (
	"errors"
	"testing"

	"zet/internal/calc"
	"zet/internal/style"
	"zet/internal/tally"
	"zet/pkg/contract"
)

// TestSubcommands 子命令映射与路径收集
func TestSubcommands(t *testing.T) {
	cases := []struct {
		args []string
		op   calc.OpName
	}{
		{[]string{"union", "a", "b"}, calc.Union},
		{[]string{"intersect", "a"}, calc.Intersect},
		{[]string{"diff"}, calc.Diff},
		{[]string{"single", "-"}, calc.Single},
		{[]string{"multiple", "x", "y", "z"}, calc.Multiple},
	}
	for _, c := range cases {
		cfg, err := Parse(c.args)
		if err != nil {
			t.Fatalf("%v: %v", c.args, err)
		}
		if cfg.Op != c.op || cfg.Help || cfg.Version {
			t.Fatalf("%v: cfg = %+v", c.args, cfg)
		}
		if len(cfg.Paths) != len(c.args)-1 {
			t.Fatalf("%v: paths = %v", c.args, cfg.Paths)
		}
	}
}

// TestUnknownSubcommand 未知子命令报参数错误
func TestUnknownSubcommand(t *testing.T) {
	_, err := Parse([]string{"unite", "a"})
	if !errors.Is(err, contract.ErrUsage) {
		t.Fatalf("err = %v", err)
	}
}

// TestNoSubcommandMeansHelp 无子命令等同 help
func TestNoSubcommandMeansHelp(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil || !cfg.Help {
		t.Fatalf("cfg=%+v err=%v", cfg, err)
	}
	cfg, err = Parse([]string{"help"})
	if err != nil || !cfg.Help {
		t.Fatalf("cfg=%+v err=%v", cfg, err)
	}
}

// TestCountFamilyLastWins 计数族后者覆盖前者
func TestCountFamilyLastWins(t *testing.T) {
	cases := []struct {
		args []string
		want tally.Mode
	}{
		{[]string{"union"}, tally.None},
		{[]string{"union", "--count-lines"}, tally.Lines},
		{[]string{"union", "--count-files"}, tally.Files},
		{[]string{"union", "--count-lines", "--count-files"}, tally.Files},
		{[]string{"union", "--count-files", "--count-lines"}, tally.Lines},
		{[]string{"union", "--count-files", "--count-none"}, tally.None},
		{[]string{"union", "--count-none", "-c"}, tally.Lines},
		{[]string{"union", "-c", "--count-none"}, tally.None},
	}
	for _, c := range cases {
		cfg, err := Parse(c.args)
		if err != nil {
			t.Fatalf("%v: %v", c.args, err)
		}
		if cfg.Count != c.want {
			t.Fatalf("%v: count = %v, want %v", c.args, cfg.Count, c.want)
		}
	}
}

// TestCountAliasFollowsBasis -c 依据最终口径展开，与旗标先后无关
func TestCountAliasFollowsBasis(t *testing.T) {
	cfg, err := Parse([]string{"single", "-c", "--files"})
	if err != nil || cfg.Count != tally.Files {
		t.Fatalf("cfg=%+v err=%v", cfg, err)
	}
	cfg, err = Parse([]string{"single", "--files", "-c"})
	if err != nil || cfg.Count != tally.Files {
		t.Fatalf("cfg=%+v err=%v", cfg, err)
	}
	cfg, err = Parse([]string{"single", "--files", "--lines", "-c"})
	if err != nil || cfg.Count != tally.Lines {
		t.Fatalf("cfg=%+v err=%v", cfg, err)
	}
}

// TestBasisFamilyLastWins 口径族后者覆盖前者
func TestBasisFamilyLastWins(t *testing.T) {
	cfg, err := Parse([]string{"single", "--files", "--lines"})
	if err != nil || cfg.Basis != calc.ByLine {
		t.Fatalf("cfg=%+v err=%v", cfg, err)
	}
	for _, f := range []string{"--file", "--files", "--by-file"} {
		cfg, err = Parse([]string{"single", f})
		if err != nil || cfg.Basis != calc.ByFile {
			t.Fatalf("%s: cfg=%+v err=%v", f, cfg, err)
		}
	}
}

// TestColorFlag --color 取值与等号形式
func TestColorFlag(t *testing.T) {
	cfg, err := Parse([]string{"union", "--color", "never"})
	if err != nil || cfg.Color != style.Never {
		t.Fatalf("cfg=%+v err=%v", cfg, err)
	}
	cfg, err = Parse([]string{"union", "--color=always"})
	if err != nil || cfg.Color != style.Always {
		t.Fatalf("cfg=%+v err=%v", cfg, err)
	}
	if _, err := Parse([]string{"union", "--color", "sometimes"}); !errors.Is(err, contract.ErrUsage) {
		t.Fatalf("err = %v", err)
	}
	if _, err := Parse([]string{"union", "--color"}); !errors.Is(err, contract.ErrUsage) {
		t.Fatalf("err = %v", err)
	}
}

// TestUnknownFlag 未知旗标在读取操作数之前报错
func TestUnknownFlag(t *testing.T) {
	_, err := Parse([]string{"union", "--frobnicate"})
	if !errors.Is(err, contract.ErrUsage) {
		t.Fatalf("err = %v", err)
	}
}

// TestHelpVersionFlags -h/-V
func TestHelpVersionFlags(t *testing.T) {
	cfg, err := Parse([]string{"-h"})
	if err != nil || !cfg.Help {
		t.Fatalf("cfg=%+v err=%v", cfg, err)
	}
	cfg, err = Parse([]string{"-V"})
	if err != nil || !cfg.Version {
		t.Fatalf("cfg=%+v err=%v", cfg, err)
	}
	cfg, err = Parse([]string{"union", "--help", "a"})
	if err != nil || !cfg.Help {
		t.Fatalf("cfg=%+v err=%v", cfg, err)
	}
}

// TestDoubleDash "--" 之后全部视为路径
func TestDoubleDash(t *testing.T) {
	cfg, err := Parse([]string{"union", "--", "--count-lines", "-"})
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if cfg.Count != tally.None || len(cfg.Paths) != 2 || cfg.Paths[0] != "--count-lines" {
		t.Fatalf("cfg = %+v", cfg)
	}
}

// TestStdinAtMostOnce "-" 至多一次
func TestStdinAtMostOnce(t *testing.T) {
	if _, err := Parse([]string{"union", "-", "-"}); !errors.Is(err, contract.ErrUsage) {
		t.Fatalf("err = %v", err)
	}
	if cfg, err := Parse([]string{"union", "a", "-"}); err != nil || cfg.Paths[1] != "-" {
		t.Fatalf("cfg=%+v err=%v", cfg, err)
	}
}
