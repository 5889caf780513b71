package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// LogLevel represents the severity level of log messages.
type LogLevel int

// Log level constants defining message severity.
const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
	FATAL
)

var levelNames = map[LogLevel]string{
	DEBUG: "DEBUG",
	INFO:  "INFO",
	WARN:  "WARN",
	ERROR: "ERROR",
	FATAL: "FATAL",
}

// String returns the upper-case name of the level.
func (l LogLevel) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("LEVEL(%d)", int(l))
}

// ParseLogLevel converts a string log level to its LogLevel constant.
// Unknown values fall back to INFO.
func ParseLogLevel(level string) LogLevel {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return DEBUG
	case "INFO":
		return INFO
	case "WARN", "WARNING":
		return WARN
	case "ERROR":
		return ERROR
	case "FATAL":
		return FATAL
	default:
		return INFO
	}
}

// Options configures the destination and rotation policy of a Logger.
type Options struct {
	// File is the rotated log file. Empty means stdout only.
	File       string
	Level      LogLevel
	MaxSize    int // MB
	MaxBackups int
	MaxAge     int // days
	Compress   bool
}

// Logger writes level-prefixed lines to stdout and, optionally, a rotating file.
type Logger struct {
	out    *log.Logger
	closer io.Closer
	level  LogLevel
	mu     sync.RWMutex
}

var (
	instance *Logger
	once     sync.Once
)

// Init initializes the global logger writing to logPath at INFO level.
func Init(logPath string) error {
	return InitWithOptions(Options{File: logPath, Level: INFO, MaxSize: 10, MaxBackups: 3, MaxAge: 28, Compress: true})
}

// InitWithConfig initializes the global logger with custom rotation settings.
func InitWithConfig(logPath string, level LogLevel, maxSize, maxBackups, maxAge int, compress bool) error {
	return InitWithOptions(Options{
		File:       logPath,
		Level:      level,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
		Compress:   compress,
	})
}

// InitWithOptions initializes the global logger once. Later calls are no-ops.
func InitWithOptions(opts Options) error {
	var err error
	once.Do(func() {
		var l *Logger
		l, err = New(opts)
		if err == nil {
			instance = l
		}
	})
	return err
}

// New creates a standalone logger.
func New(opts Options) (*Logger, error) {
	var w io.Writer = os.Stdout
	var closer io.Closer

	if opts.File != "" {
		dir := filepath.Dir(opts.File)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("cannot create log directory %s: %w", dir, err)
		}
		rotated := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSize,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAge,
			Compress:   opts.Compress,
		}
		w = io.MultiWriter(os.Stdout, rotated)
		closer = rotated
	}

	return NewWithWriter(w, opts.Level, closer), nil
}

// NewWithWriter creates a logger over an arbitrary writer. closer may be nil.
func NewWithWriter(w io.Writer, level LogLevel, closer io.Closer) *Logger {
	return &Logger{
		out:    log.New(w, "", log.LstdFlags|log.Lshortfile),
		closer: closer,
		level:  level,
	}
}

// SetLevel changes the minimum log level for filtering messages.
func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// GetLevel returns the current minimum log level.
func (l *Logger) GetLevel() LogLevel {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.level
}

// Enabled reports whether messages at level would be written.
func (l *Logger) Enabled(level LogLevel) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return level >= l.level
}

// Close releases the rotating file, if any.
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

// Logf writes a formatted message at level. depth is the number of stack
// frames between the caller of interest and Logf.
func (l *Logger) Logf(depth int, level LogLevel, format string, v ...interface{}) {
	if !l.Enabled(level) {
		return
	}
	l.out.Output(depth+2, "["+level.String()+"] "+fmt.Sprintf(format, v...))
	if level == FATAL {
		os.Exit(1)
	}
}

// Debugf logs a formatted debug-level message.
func (l *Logger) Debugf(format string, v ...interface{}) { l.Logf(1, DEBUG, format, v...) }

// Infof logs a formatted info-level message.
func (l *Logger) Infof(format string, v ...interface{}) { l.Logf(1, INFO, format, v...) }

// Warnf logs a formatted warning-level message.
func (l *Logger) Warnf(format string, v ...interface{}) { l.Logf(1, WARN, format, v...) }

// Errorf logs a formatted error-level message.
func (l *Logger) Errorf(format string, v ...interface{}) { l.Logf(1, ERROR, format, v...) }

// Fatalf logs a formatted fatal-level message and exits the program.
func (l *Logger) Fatalf(format string, v ...interface{}) { l.Logf(1, FATAL, format, v...) }

// Global convenience functions. They are silent until the global logger is initialized.

func logf(level LogLevel, format string, v ...interface{}) {
	if instance != nil {
		instance.Logf(2, level, format, v...)
	}
}

// Debugf logs a formatted debug-level message using the global logger instance.
func Debugf(format string, v ...interface{}) { logf(DEBUG, format, v...) }

// Infof logs a formatted info-level message using the global logger instance.
func Infof(format string, v ...interface{}) { logf(INFO, format, v...) }

// Warnf logs a formatted warning-level message using the global logger instance.
func Warnf(format string, v ...interface{}) { logf(WARN, format, v...) }

// Errorf logs a formatted error-level message using the global logger instance.
func Errorf(format string, v ...interface{}) { logf(ERROR, format, v...) }

// Fatalf logs a formatted fatal-level message and exits the program.
// Exits even when the global logger was never initialized.
func Fatalf(format string, v ...interface{}) {
	if instance == nil {
		log.Fatalf("[FATAL] "+format, v...)
	}
	logf(FATAL, format, v...)
}

// SetLevel changes the minimum log level for the global logger instance.
func SetLevel(level LogLevel) {
	if instance != nil {
		instance.SetLevel(level)
	}
}

// GetLevel returns the current minimum log level of the global logger instance.
func GetLevel() LogLevel {
	if instance != nil {
		return instance.GetLevel()
	}
	return INFO
}

// Default returns the global logger instance, or nil before initialization.
func Default() *Logger {
	return instance
}
