// Package logging はロギング機能を提供します
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
)

// ログレベル
const (
	LevelDebug = "DEBUG"
	LevelInfo  = "INFO"
	LevelWarn  = "WARN"
	LevelError = "ERROR"
)

var levelOrder = map[string]int{
	LevelDebug: 0,
	LevelInfo:  1,
	LevelWarn:  2,
	LevelError: 3,
}

// LogEntry はログエントリを表す構造体です
type LogEntry struct {
	// Timestamp はログが記録された時刻をRFC3339形式で表します
	Timestamp string `json:"timestamp"`
	// Level はログレベル（INFO, WARN, ERROR等）を表します
	Level string `json:"level"`
	// Message はログメッセージの内容を表します
	Message string `json:"message"`
	// Error はエラーが発生した場合のエラーメッセージを表します
	Error string `json:"error,omitempty"`
	// RunID は同じ実行で出力されたログを関連付けるIDです
	RunID string `json:"run_id"`
}

// Logger は構造化ログを出力するためのインターフェースです
type Logger interface {
	Log(level, message string, err error)
}

// JSONLogger はJSONフォーマットでログを出力するロガーです
type JSONLogger struct {
	mu       sync.Mutex
	writer   io.Writer
	minLevel int
	runID    string
}

// Option は JSONLogger の設定を変更します
type Option func(*JSONLogger)

// WithMinLevel は出力する最小のログレベルを指定します。未知のレベルは無視されます。
func WithMinLevel(level string) Option {
	return func(l *JSONLogger) {
		if order, ok := levelOrder[strings.ToUpper(level)]; ok {
			l.minLevel = order
		}
	}
}

// WithRunID は実行IDを固定します
func WithRunID(runID string) Option {
	return func(l *JSONLogger) {
		l.runID = runID
	}
}

// NewJSONLogger は新しいJSONLoggerインスタンスを作成します
func NewJSONLogger(writer io.Writer, opts ...Option) *JSONLogger {
	if writer == nil {
		writer = os.Stderr
	}
	l := &JSONLogger{
		writer: writer,
		runID:  uuid.NewString(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// RunID はこのロガーの実行IDを返します
func (l *JSONLogger) RunID() string {
	return l.runID
}

// Log はメッセージをJSONフォーマットでログ出力します
func (l *JSONLogger) Log(level, message string, err error) {
	if order, ok := levelOrder[strings.ToUpper(level)]; ok && order < l.minLevel {
		return
	}

	entry := LogEntry{
		Timestamp: time.Now().Format(time.RFC3339),
		Level:     level,
		Message:   message,
		RunID:     l.runID,
	}

	if err != nil {
		entry.Error = err.Error()
	}

	jsonData, err := json.Marshal(entry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ログのJSONエンコードに失敗: %v\n", err)
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.writer, string(jsonData))
}

type nopLogger struct{}

func (nopLogger) Log(string, string, error) {}

// Nop は何も出力しないロガーを返します
func Nop() Logger {
	return nopLogger{}
}
