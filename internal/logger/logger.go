package logger

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
	gormlogger "gorm.io/gorm/logger"

	"scaffold-service/internal/config"
)

// Logger is the process-wide logger. It starts as a plain stderr logger so that
// packages can log before Init runs.
var Logger = logrus.New()

// Init configures Logger with a JSON formatter, stdout plus a rotating app.log,
// and a hook that copies error-level entries to error.log.
func Init(cfg config.Log) error {
	l := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	if err := os.MkdirAll(cfg.Dir, 0755); err != nil {
		return err
	}

	allLogsFile := &lumberjack.Logger{
		Filename:   filepath.Join(cfg.Dir, "app.log"),
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	}
	errorLogsFile := &lumberjack.Logger{
		Filename:   filepath.Join(cfg.Dir, "error.log"),
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	}

	l.SetOutput(io.MultiWriter(os.Stdout, allLogsFile))
	l.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
	})
	l.AddHook(&ErrorFileHook{errorWriter: errorLogsFile})

	Logger = l
	return nil
}

// ErrorFileHook writes error-level entries to a separate writer.
type ErrorFileHook struct {
	errorWriter io.Writer
}

func (hook *ErrorFileHook) Fire(entry *logrus.Entry) error {
	line, err := entry.String()
	if err != nil {
		return err
	}
	_, err = hook.errorWriter.Write([]byte(line))
	return err
}

func (hook *ErrorFileHook) Levels() []logrus.Level {
	return []logrus.Level{
		logrus.PanicLevel,
		logrus.FatalLevel,
		logrus.ErrorLevel,
	}
}

// WithComponent returns an entry tagged with the emitting component.
func WithComponent(name string) *logrus.Entry {
	return Logger.WithField("component", name)
}

// NewGormLogger routes GORM's SQL logging through l.
func NewGormLogger(l *logrus.Logger, level gormlogger.LogLevel) gormlogger.Interface {
	return gormlogger.New(
		l,
		gormlogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}

// Silent is the GORM logger used by throwaway connections.
var Silent = gormlogger.New(log.New(io.Discard, "", log.LstdFlags), gormlogger.Config{LogLevel: gormlogger.Silent})
