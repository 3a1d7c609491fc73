package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"zet/internal/calc"
	"zet/internal/config"
	"zet/internal/diag"
	"zet/internal/help"
	"zet/internal/style"
	"zet/plugins/reader/filesystem"
	"zet/plugins/writer/stream"
)

const version = "0.1.0"

// CLI：子命令选定五种算子之一，旗标折叠为只读配置；操作数按命令行顺序
// 串行消费；结果写 stdout，诊断走 stderr。
// 退出码：0 成功；1 运行期（I/O/解码）错误；2 参数错误。
func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout *os.File, stderr io.Writer) int {
	logger := diag.NewLogger(os.Getenv("ZET_LOG"))

	cfg, err := config.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "zet: %v\n", err)
		fmt.Fprintln(stderr, "run `zet help` for usage")
		code := diag.Classify(err)
		logger.Error("config", string(code), err.Error())
		return diag.ExitCode(code)
	}

	sheet := style.New(cfg.Color, stdout)
	if cfg.Version {
		fmt.Fprintf(stdout, "zet %s\n", version)
		return 0
	}
	if cfg.Help {
		help.Print(stdout, sheet, version)
		return 0
	}

	logger.DebugKV("config", "effective", map[string]string{
		"op":       cfg.Op.String(),
		"count":    cfg.Count.String(),
		"by_file":  strconv.FormatBool(cfg.Basis == calc.ByFile),
		"operands": strconv.Itoa(len(cfg.Paths)),
	})

	paths := cfg.Paths
	if len(paths) == 0 {
		paths = []string{"-"} // 无路径操作数即读 STDIN
	}
	first, err := filesystem.First(paths[0])
	if err != nil {
		return fail(stderr, logger, "read", err)
	}
	rest := filesystem.Later(paths[1:], nil)

	em := stream.New(stdout, nil)
	if err := calc.Calculate(context.Background(), cfg.Op, cfg.Basis, cfg.Count, first, rest, em); err != nil {
		return fail(stderr, logger, "calc", err)
	}
	logger.Info("calc", "run finished")
	return 0
}

func fail(stderr io.Writer, logger *diag.Logger, stage string, err error) int {
	fmt.Fprintf(stderr, "zet: %v\n", err)
	code := diag.Classify(err)
	logger.Error(stage, string(code), err.Error())
	return diag.ExitCode(code)
}
