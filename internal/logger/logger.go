package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// LogLevel represents the severity level of a log message
type LogLevel int

// Log levels
const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
	FATAL
)

// levelPrefixes maps log levels to text prefixes
var levelPrefixes = map[LogLevel]string{
	DEBUG: "DEBUG",
	INFO:  "INFO ",
	WARN:  "WARN ",
	ERROR: "ERROR",
	FATAL: "FATAL",
}

// levelColors maps log levels to ANSI color codes
var levelColors = map[LogLevel]string{
	DEBUG: "\033[36m",
	INFO:  "\033[32m",
	WARN:  "\033[33m",
	ERROR: "\033[31m",
	FATAL: "\033[35m",
}

// Logger handles leveled logging for the renderer
type Logger struct {
	level     LogLevel
	logger    *log.Logger
	useColors bool
}

// ParseLevel converts a level name to a LogLevel, defaulting to INFO
func ParseLevel(levelStr string) LogLevel {
	switch strings.ToLower(levelStr) {
	case "debug":
		return DEBUG
	case "info":
		return INFO
	case "warn":
		return WARN
	case "error":
		return ERROR
	case "fatal":
		return FATAL
	default:
		return INFO
	}
}

// New creates a logger writing to stderr at the given level
func New(levelStr string) *Logger {
	l := &Logger{
		level:     ParseLevel(levelStr),
		logger:    log.New(os.Stderr, "", log.LstdFlags),
		useColors: true,
	}
	if fileInfo, _ := os.Stderr.Stat(); (fileInfo.Mode() & os.ModeCharDevice) == 0 {
		l.useColors = false
	}
	return l
}

// SetOutput redirects the logger to another writer and disables colors
func (l *Logger) SetOutput(w io.Writer) {
	l.logger.SetOutput(w)
	l.useColors = false
}

func (l *Logger) logf(level LogLevel, format string, v ...interface{}) {
	if level < l.level {
		return
	}
	prefix := fmt.Sprintf("[%s]", levelPrefixes[level])
	if l.useColors {
		prefix = levelColors[level] + prefix + "\033[0m"
	}
	l.logger.Println(prefix, fmt.Sprintf(format, v...))
	if level == FATAL {
		os.Exit(1)
	}
}

// Debugf logs a formatted debug message
func (l *Logger) Debugf(format string, v ...interface{}) {
	l.logf(DEBUG, format, v...)
}

// Infof logs a formatted info message
func (l *Logger) Infof(format string, v ...interface{}) {
	l.logf(INFO, format, v...)
}

// Warnf logs a formatted warning message
func (l *Logger) Warnf(format string, v ...interface{}) {
	l.logf(WARN, format, v...)
}

// Errorf logs a formatted error message
func (l *Logger) Errorf(format string, v ...interface{}) {
	l.logf(ERROR, format, v...)
}

// Fatalf logs a formatted fatal message and exits the program
func (l *Logger) Fatalf(format string, v ...interface{}) {
	l.logf(FATAL, format, v...)
}

// Printf implements the renderer's minimal logging interface at INFO level
func (l *Logger) Printf(format string, v ...interface{}) {
	if INFO < l.level {
		return
	}
	l.logger.Printf(format, v...)
}
