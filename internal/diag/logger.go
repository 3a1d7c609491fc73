package diag

import (
	"encoding/json"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// 级别定义
type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

func (l Level) String() string {
	switch l {
	case Debug:
		return "debug"
	case Info:
		return "info"
	case Warn:
		return "warn"
	default:
		return "error"
	}
}

// Logger 为最小结构化日志器：单行 JSON 输出到 stderr。
// 级别来自 ZET_LOG 环境变量；缺省仅 error 级别生效，保证管道静默。
// 结果输出走 stdout，日志绝不混入。
type Logger struct {
	w     io.Writer
	level Level
	mu    sync.Mutex
}

// NewLogger 按级别名构造；空串或未知级别回退 error。
func NewLogger(level string) *Logger {
	return &Logger{w: os.Stderr, level: parseLevel(level)}
}

func parseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return Debug
	case "info":
		return Info
	case "warn":
		return Warn
	default:
		return Error
	}
}

type event struct {
	TS    string            `json:"ts"`
	Level string            `json:"level"`
	Stage string            `json:"stage"`
	Code  string            `json:"code,omitempty"`
	Msg   string            `json:"msg"`
	KV    map[string]string `json:"kv,omitempty"`
}

func (l *Logger) log(lv Level, stage, code, msg string, kv map[string]string) {
	if l == nil || lv < l.level {
		return
	}
	b, err := json.Marshal(event{
		TS:    time.Now().UTC().Format(time.RFC3339),
		Level: lv.String(),
		Stage: stage,
		Code:  code,
		Msg:   msg,
		KV:    kv,
	})
	if err != nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = l.w.Write(append(b, '\n'))
}

// DebugKV 输出 debug 事件（带键值对）。
func (l *Logger) DebugKV(stage, msg string, kv map[string]string) {
	l.log(Debug, stage, "", msg, kv)
}

// Info 输出 info 事件。
func (l *Logger) Info(stage, msg string) { l.log(Info, stage, "", msg, nil) }

// Error 输出 error 事件，code 为 Classify 产出的分类码。
func (l *Logger) Error(stage, code, msg string) { l.log(Error, stage, code, msg, nil) }
