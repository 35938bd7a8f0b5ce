package logger

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
	"time"
)

// Minimal leveled logger shared by the backend and its tools.
// - zero external deps
// - Init(level) selects the minimum level; everything below is dropped

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

var (
	mu      sync.RWMutex
	out     *log.Logger = log.New(os.Stdout, "", 0)
	current Level       = LevelInfo
)

// Init sets the global log level (case-insensitive: debug, info, warn,
// error, fatal). Unknown or empty input selects info. Call once at startup.
func Init(level string) {
	mu.Lock()
	defer mu.Unlock()
	current = parseLevel(level)
}

func parseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	case "fatal":
		return LevelFatal
	default:
		return LevelInfo
	}
}

func enabled(l Level) bool {
	mu.RLock()
	defer mu.RUnlock()
	return l >= current
}

func prefix(lvl string) string {
	return fmt.Sprintf("%s [%s] ", time.Now().Format(time.RFC3339), strings.ToUpper(lvl))
}

func Debugf(format string, v ...interface{}) {
	if enabled(LevelDebug) {
		out.Printf(prefix("debug")+format, v...)
	}
}

func Infof(format string, v ...interface{}) {
	if enabled(LevelInfo) {
		out.Printf(prefix("info")+format, v...)
	}
}

func Warnf(format string, v ...interface{}) {
	if enabled(LevelWarn) {
		out.Printf(prefix("warn")+format, v...)
	}
}

func Errorf(format string, v ...interface{}) {
	if enabled(LevelError) {
		out.Printf(prefix("error")+format, v...)
	}
}

// Fatalf logs unconditionally and exits the process.
func Fatalf(format string, v ...interface{}) {
	out.Printf(prefix("fatal")+format, v...)
	os.Exit(1)
}

// LevelString returns the current minimum level as text.
func LevelString() string {
	mu.RLock()
	defer mu.RUnlock()
	switch current {
	case LevelDebug:
		return "debug"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelFatal:
		return "fatal"
	}
	return "info"
}
