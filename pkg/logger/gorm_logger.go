package logger

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// GormLogger routes GORM messages and SQL traces through the global logger.
// SQL statements are logged at DEBUG only when tracing is enabled.
type GormLogger struct {
	level         gormlogger.LogLevel
	traceSQL      bool
	slowThreshold time.Duration
}

// NewGormLogger creates a GORM logger adapter. traceSQL enables per-statement
// DEBUG lines; statements slower than slowThreshold are always logged at WARN.
func NewGormLogger(traceSQL bool, slowThreshold time.Duration) *GormLogger {
	return &GormLogger{
		level:         gormlogger.Warn,
		traceSQL:      traceSQL,
		slowThreshold: slowThreshold,
	}
}

// LogMode returns a copy of the adapter at the given GORM level.
func (g *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	cp := *g
	cp.level = level
	return &cp
}

func (g *GormLogger) Info(_ context.Context, msg string, data ...interface{}) {
	if g.level >= gormlogger.Info {
		logf(INFO, "gorm: "+msg, data...)
	}
}

func (g *GormLogger) Warn(_ context.Context, msg string, data ...interface{}) {
	if g.level >= gormlogger.Warn {
		logf(WARN, "gorm: "+msg, data...)
	}
}

func (g *GormLogger) Error(_ context.Context, msg string, data ...interface{}) {
	if g.level >= gormlogger.Error {
		logf(ERROR, "gorm: "+msg, data...)
	}
}

// Trace logs one executed statement.
func (g *GormLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if g.level <= gormlogger.Silent {
		return
	}
	elapsed := time.Since(begin)

	switch {
	case err != nil && g.level >= gormlogger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		sql, rows := fc()
		logf(ERROR, "gorm: %v [%v] rows=%d %s", err, elapsed, rows, sql)
	case g.slowThreshold > 0 && elapsed > g.slowThreshold && g.level >= gormlogger.Warn:
		sql, rows := fc()
		logf(WARN, "gorm: slow query >= %v [%v] rows=%d %s", g.slowThreshold, elapsed, rows, sql)
	case g.traceSQL:
		sql, rows := fc()
		logf(DEBUG, "gorm: [%v] rows=%d %s", elapsed, rows, sql)
	}
}
