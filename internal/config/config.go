// Package config 把命令行折叠为一份运行期只读配置。
// 规则：
//   - 首个裸参数为子命令，其余裸参数为操作数路径；
//   - 计数旗标族（--count-lines/--count-files/--count-none/-c）与口径旗标族
//     （--files/--lines）内部均为“后者覆盖前者”；
//   - -c/--count 在最终口径为 --files 时等价 --count-files，否则等价
//     --count-lines；
//   - 冲突与未知旗标在读取任何操作数之前报错。
package config

import (
	"fmt"
	"strings"

	"zet/internal/calc"
	"zet/internal/style"
	"zet/internal/tally"
	"zet/pkg/contract"
)

// Config: 一次折叠产生、运行期不变。
type Config struct {
	Op    calc.OpName
	Basis calc.Basis
	Count tally.Mode
	Color style.Choice
	// Paths: 操作数路径；"-" 代表 STDIN；为空表示只读 STDIN。
	Paths   []string
	Help    bool
	Version bool
}

// 计数旗标族的原始取值；-c 的别名展开要等口径旗标族折叠完成后进行。
type countFlag uint8

const (
	countUnset countFlag = iota
	countLines
	countFiles
	countAlias
	countNone
)

var commands = map[string]calc.OpName{
	"union":     calc.Union,
	"intersect": calc.Intersect,
	"diff":      calc.Diff,
	"single":    calc.Single,
	"multiple":  calc.Multiple,
}

// Parse 折叠 args（不含程序名）。
func Parse(args []string) (Config, error) {
	var cfg Config
	var (
		cf         = countUnset
		haveCmd    bool
		flagsEnded bool
	)

	for i := 0; i < len(args); i++ {
		a := args[i]
		if flagsEnded || a == "-" || !strings.HasPrefix(a, "-") {
			// 首个裸参数即子命令（"--" 只结束旗标解析，不改变该约定）。
			if a != "-" && !haveCmd {
				op, ok := commands[a]
				if !ok {
					if a == "help" {
						cfg.Help = true
						haveCmd = true
						continue
					}
					return cfg, fmt.Errorf("%w: unknown subcommand %q", contract.ErrUsage, a)
				}
				cfg.Op = op
				haveCmd = true
				continue
			}
			cfg.Paths = append(cfg.Paths, a)
			continue
		}

		switch a {
		case "--":
			flagsEnded = true
		case "--count-lines":
			cf = countLines
		case "--count-files":
			cf = countFiles
		case "--count-none":
			cf = countNone
		case "-c", "--count":
			cf = countAlias
		case "--file", "--files", "--by-file":
			cfg.Basis = calc.ByFile
		case "--line", "--lines":
			cfg.Basis = calc.ByLine
		case "-h", "--help":
			cfg.Help = true
		case "-V", "--version":
			cfg.Version = true
		default:
			if v, ok := strings.CutPrefix(a, "--color="); ok {
				c, err := style.ParseChoice(v)
				if err != nil {
					return cfg, err
				}
				cfg.Color = c
				continue
			}
			if a == "--color" {
				if i+1 >= len(args) {
					return cfg, fmt.Errorf("%w: --color requires a value (auto, always or never)", contract.ErrUsage)
				}
				i++
				c, err := style.ParseChoice(args[i])
				if err != nil {
					return cfg, err
				}
				cfg.Color = c
				continue
			}
			return cfg, fmt.Errorf("%w: unknown flag %q", contract.ErrUsage, a)
		}
	}

	// 计数族终值：-c 依据最终口径展开。
	switch cf {
	case countLines:
		cfg.Count = tally.Lines
	case countFiles:
		cfg.Count = tally.Files
	case countAlias:
		if cfg.Basis == calc.ByFile {
			cfg.Count = tally.Files
		} else {
			cfg.Count = tally.Lines
		}
	default:
		cfg.Count = tally.None
	}

	// 无子命令等同 help（不读任何操作数）。
	if !haveCmd && !cfg.Version {
		cfg.Help = true
	}

	// STDIN 只能消费一次。
	dashes := 0
	for _, p := range cfg.Paths {
		if p == "-" {
			dashes++
		}
	}
	if dashes > 1 {
		return cfg, fmt.Errorf("%w: %q may be given at most once", contract.ErrUsage, "-")
	}

	return cfg, nil
}
