package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var Log *zap.Logger
var Sugar *zap.SugaredLogger
var atomicLevel zap.AtomicLevel

// ANSI 颜色代码
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m" // error, fatal, panic
	colorYellow = "\033[33m" // warn
	colorBlue   = "\033[36m" // info
	colorGray   = "\033[37m" // debug
)

// lineCore 输出单行日志：时间、级别、消息，字段以 key=value 追加在末尾
type lineCore struct {
	level  zapcore.LevelEnabler
	writer zapcore.WriteSyncer
	color  bool
	fields []zapcore.Field
}

func (c *lineCore) Enabled(l zapcore.Level) bool {
	return c.level.Enabled(l)
}

func (c *lineCore) With(fields []zapcore.Field) zapcore.Core {
	merged := make([]zapcore.Field, 0, len(c.fields)+len(fields))
	merged = append(merged, c.fields...)
	merged = append(merged, fields...)
	return &lineCore{level: c.level, writer: c.writer, color: c.color, fields: merged}
}

func (c *lineCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *lineCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	timestamp := ent.Time.Format("2006-01-02 15:04:05")
	level := strings.ToUpper(ent.Level.String())

	var b strings.Builder
	if c.color {
		fmt.Fprintf(&b, "[%s]%s[%s]%s %s", timestamp, levelColor(ent.Level), level, colorReset, ent.Message)
	} else {
		fmt.Fprintf(&b, "[%s][%s] %s", timestamp, level, ent.Message)
	}

	if len(c.fields)+len(fields) > 0 {
		enc := zapcore.NewMapObjectEncoder()
		for _, f := range c.fields {
			f.AddTo(enc)
		}
		for _, f := range fields {
			f.AddTo(enc)
		}
		for k, v := range enc.Fields {
			fmt.Fprintf(&b, " %s=%v", k, v)
		}
	}
	b.WriteByte('\n')

	_, err := c.writer.Write([]byte(b.String()))
	return err
}

func (c *lineCore) Sync() error {
	return c.writer.Sync()
}

func levelColor(l zapcore.Level) string {
	switch l {
	case zapcore.DebugLevel:
		return colorGray
	case zapcore.InfoLevel:
		return colorBlue
	case zapcore.WarnLevel:
		return colorYellow
	case zapcore.ErrorLevel, zapcore.DPanicLevel, zapcore.PanicLevel, zapcore.FatalLevel:
		return colorRed
	default:
		return colorBlue
	}
}

func newLogger(cores ...zapcore.Core) *zap.Logger {
	return zap.New(zapcore.NewTee(cores...))
}

func init() {
	atomicLevel = zap.NewAtomicLevelAt(zap.InfoLevel)
	Log = newLogger(&lineCore{level: atomicLevel, writer: zapcore.AddSync(os.Stdout), color: true})
	Sugar = Log.Sugar()
}

// SetupFileOutput 在标准输出之外写入按大小轮转的日志文件
func SetupFileOutput(logDir string, maxSizeMB, maxBackups int) error {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return err
	}

	rotate := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, "portfolio.log"),
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		Compress:   false,
	}

	Log = newLogger(
		&lineCore{level: atomicLevel, writer: zapcore.AddSync(os.Stdout), color: true},
		&lineCore{level: atomicLevel, writer: zapcore.AddSync(rotate)},
	)
	Sugar = Log.Sugar()
	return nil
}

// SetOutput 直接设置 Log 实例
func SetOutput(l *zap.Logger) {
	Log = l
	Sugar = l.Sugar()
}

// SetLevel 设置日志级别
func SetLevel(level string) {
	switch level {
	case "debug":
		atomicLevel.SetLevel(zap.DebugLevel)
	case "info":
		atomicLevel.SetLevel(zap.InfoLevel)
	case "warn":
		atomicLevel.SetLevel(zap.WarnLevel)
	case "error":
		atomicLevel.SetLevel(zap.ErrorLevel)
	default:
		atomicLevel.SetLevel(zap.InfoLevel)
	}
}

// 便捷方法
func Debug(args ...interface{}) { Sugar.Debug(args...) }
func Info(args ...interface{})  { Sugar.Info(args...) }
func Warn(args ...interface{})  { Sugar.Warn(args...) }
func Error(args ...interface{}) { Sugar.Error(args...) }
func Fatal(args ...interface{}) { Sugar.Fatal(args...) }

func Debugf(format string, args ...interface{}) { Sugar.Debugf(format, args...) }
func Infof(format string, args ...interface{})  { Sugar.Infof(format, args...) }
func Warnf(format string, args ...interface{})  { Sugar.Warnf(format, args...) }
func Errorf(format string, args ...interface{}) { Sugar.Errorf(format, args...) }
func Fatalf(format string, args ...interface{}) { Sugar.Fatalf(format, args...) }

// WithField 带字段的日志
func WithField(key string, value interface{}) *zap.SugaredLogger {
	return Sugar.With(key, value)
}

// WithFields 带多个字段的日志
func WithFields(fields map[string]interface{}) *zap.SugaredLogger {
	f := make([]interface{}, 0, len(fields)*2)
	for k, v := range fields {
		f = append(f, k, v)
	}
	return Sugar.With(f...)
}

// CronLogger 适配 cron.Logger 接口
type CronLogger struct{}

func (CronLogger) Info(msg string, keysAndValues ...interface{}) {
	Sugar.Debugw(msg, keysAndValues...)
}

func (CronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	Sugar.Errorw(msg, append(keysAndValues, "error", err)...)
}
