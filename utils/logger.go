package utils

import (
	"io"
	"log"
	"os"
	"strings"
	"time"
)

var (
	// InfoLogger は情報レベルのログを出力します
	InfoLogger *log.Logger
	// WarnLogger は警告レベルのログを出力します
	WarnLogger *log.Logger
	// ErrorLogger はエラーレベルのログを出力します
	ErrorLogger *log.Logger

	logOutput io.Writer = os.Stderr
	logLevel            = levelInfo
)

const (
	levelInfo = iota
	levelWarn
	levelError
	levelQuiet
)

// init関数はパッケージがインポートされたときに自動的に実行されます
func init() {
	// 標準出力はレポート本体のために空けておく
	InfoLogger = log.New(os.Stderr, "INFO: ", log.Ldate|log.Ltime)
	WarnLogger = log.New(os.Stderr, "WARN: ", log.Ldate|log.Ltime)
	ErrorLogger = log.New(os.Stderr, "ERROR: ", log.Ldate|log.Ltime)
}

// SetOutput はすべてのロガーの出力先を変更します
func SetOutput(w io.Writer) {
	logOutput = w
	applyLevel()
}

// SetLevel はログレベルを設定します (info, warn, error, quiet)。不明な値は info として扱います
func SetLevel(level string) {
	switch strings.ToLower(level) {
	case "warn":
		logLevel = levelWarn
	case "error":
		logLevel = levelError
	case "quiet":
		logLevel = levelQuiet
	default:
		logLevel = levelInfo
	}
	applyLevel()
}

func applyLevel() {
	InfoLogger.SetOutput(writerFor(levelInfo))
	WarnLogger.SetOutput(writerFor(levelWarn))
	ErrorLogger.SetOutput(writerFor(levelError))
}

func writerFor(level int) io.Writer {
	if level < logLevel {
		return io.Discard
	}
	return logOutput
}

// LogInfo は情報レベルのメッセージをログに記録します
func LogInfo(format string, v ...interface{}) {
	InfoLogger.Printf(format, v...)
}

// LogWarn は警告レベルのメッセージをログに記録します
func LogWarn(format string, v ...interface{}) {
	WarnLogger.Printf(format, v...)
}

// LogError はエラーレベルのメッセージをログに記録します
func LogError(format string, v ...interface{}) {
	ErrorLogger.Printf(format, v...)
}

// TrackTime は関数の実行時間を計測して出力するユーティリティです
func TrackTime(start time.Time, name string) {
	elapsed := time.Since(start)
	LogInfo("%s 完了時間: %s", name, elapsed)
}
