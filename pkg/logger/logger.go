package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log *zap.Logger = zap.NewNop()

// Init 初始化全局 logger；env 为 "prod" 时使用 JSON 编码
func Init(env string) error {
	var (
		l   *zap.Logger
		err error
	)
	if env == "prod" {
		cfg := zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		l, err = cfg.Build(zap.AddCallerSkip(1))
	} else {
		l, err = zap.NewDevelopment(zap.AddCallerSkip(1))
	}
	if err != nil {
		return err
	}
	log = l
	return nil
}

func Sync() { _ = log.Sync() }

func Debug(msg string, fields ...zap.Field) { log.Debug(msg, fields...) }
func Info(msg string, fields ...zap.Field)  { log.Info(msg, fields...) }
func Warn(msg string, fields ...zap.Field)  { log.Warn(msg, fields...) }
func Error(msg string, fields ...zap.Field) { log.Error(msg, fields...) }
func Fatal(msg string, fields ...zap.Field) { log.Fatal(msg, fields...) }
