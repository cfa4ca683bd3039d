package evlog

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Logger interface {
	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Warning(args ...interface{})
	Warningf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
	Fatal(args ...interface{})
	Fatalf(format string, args ...interface{})
}

var logger = NewNoneLogger()

func SetLogger(l Logger) {
	logger = l
}

func Debug(args ...interface{}) {
	logger.Debug(args...)
}

func Debugf(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}

func Info(args ...interface{}) {
	logger.Info(args...)
}

func Infof(format string, args ...interface{}) {
	logger.Infof(format, args...)
}

func Warning(args ...interface{}) {
	logger.Warning(args...)
}

func Warningf(format string, args ...interface{}) {
	logger.Warningf(format, args...)
}

func Error(args ...interface{}) {
	logger.Error(args...)
}

func Errorf(format string, args ...interface{}) {
	logger.Errorf(format, args...)
}

func Fatal(args ...interface{}) {
	logger.Fatal(args...)
}

func Fatalf(format string, args ...interface{}) {
	logger.Fatalf(format, args...)
}

// NewLogger returns a stdout logger at the named logrus level; an unknown
// level falls back to info.
func NewLogger(level string) Logger {
	l := logrus.New()
	l.SetLevel(parseLevel(level))
	return &stdLogger{l}
}

// FileOptions configures the rotated log file backend.
type FileOptions struct {
	Dir       string
	Name      string
	Level     string
	MaxSizeMB int
	MaxAgeDay int
	Stdout    bool
}

// NewFileLogger writes to a size-rotated file under opts.Dir, optionally
// mirrored to stdout.
func NewFileLogger(opts FileOptions) Logger {
	name := opts.Name
	if name == "" {
		name = "pollecho.log"
	}
	var out io.Writer = &lumberjack.Logger{
		Filename:  filepath.Join(opts.Dir, name),
		MaxSize:   opts.MaxSizeMB,
		MaxAge:    opts.MaxAgeDay,
		LocalTime: true,
	}
	if opts.Stdout {
		out = io.MultiWriter(out, os.Stdout)
	}

	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(parseLevel(opts.Level))
	return &stdLogger{l}
}

func parseLevel(level string) logrus.Level {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

type stdLogger struct {
	logger *logrus.Logger
}

func (l *stdLogger) Debug(args ...interface{}) {
	l.logger.Debug(args...)
}

func (l *stdLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debugf(format, args...)
}

func (l *stdLogger) Info(args ...interface{}) {
	l.logger.Info(args...)
}

func (l *stdLogger) Infof(format string, args ...interface{}) {
	l.logger.Infof(format, args...)
}

func (l *stdLogger) Warning(args ...interface{}) {
	l.logger.Warning(args...)
}

func (l *stdLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warningf(format, args...)
}

func (l *stdLogger) Error(args ...interface{}) {
	l.logger.Error(args...)
}

func (l *stdLogger) Errorf(format string, args ...interface{}) {
	l.logger.Errorf(format, args...)
}

func (l *stdLogger) Fatal(args ...interface{}) {
	l.logger.Fatal(args...)
}

func (l *stdLogger) Fatalf(format string, args ...interface{}) {
	l.logger.Fatalf(format, args...)
}

func NewNoneLogger() Logger {
	return &noneLogger{}
}

type noneLogger struct{}

func (l *noneLogger) Debug(args ...interface{})                   {}
func (l *noneLogger) Debugf(format string, args ...interface{})   {}
func (l *noneLogger) Info(args ...interface{})                    {}
func (l *noneLogger) Infof(format string, args ...interface{})    {}
func (l *noneLogger) Warning(args ...interface{})                 {}
func (l *noneLogger) Warningf(format string, args ...interface{}) {}
func (l *noneLogger) Error(args ...interface{})                   {}
func (l *noneLogger) Errorf(format string, args ...interface{})   {}
func (l *noneLogger) Fatal(args ...interface{})                   {}
func (l *noneLogger) Fatalf(format string, args ...interface{})   {}
