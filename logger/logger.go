// Package logger holds the game's global zap logger.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log discards everything until Init is called, so packages can log
// unconditionally (tests included).
var Log = zap.NewNop()

// Init logs to stdout at level and, when logFile is set, to a rotating file
// as well.
func Init(level, logFile string) {
	Log = build(level, logFile, true)
}

func build(level, logFile string, console bool) *zap.Logger {
	lvl := parseLevel(level)
	enc := zapcore.EncoderConfig{
		TimeKey:          "time",
		LevelKey:         "level",
		MessageKey:       "msg",
		CallerKey:        "caller",
		EncodeCaller:     zapcore.ShortCallerEncoder,
		ConsoleSeparator: " ",
	}

	var cores []zapcore.Core
	if console {
		c := enc
		c.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		c.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(c), zapcore.AddSync(os.Stdout), lvl))
	}
	if logFile != "" {
		f := enc
		f.EncodeTime = zapcore.ISO8601TimeEncoder
		f.EncodeLevel = zapcore.CapitalLevelEncoder
		rotate := &lumberjack.Logger{Filename: logFile, MaxSize: 20, MaxBackups: 3, MaxAge: 7, Compress: true}
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(f), zapcore.AddSync(rotate), lvl))
	}
	return zap.New(zapcore.NewTee(cores...), zap.AddCaller())
}

func parseLevel(level string) zapcore.Level {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}

// Sync flushes any buffered log entries.
func Sync() {
	_ = Log.Sync()
}
