package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	L     *zap.Logger
	level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
)

func init() {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "ts"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.Level = level
	var err error
	// WithComponent 回傳的是 child logger，caller 不需要再往上跳
	L, err = config.Build()
	if err != nil {
		panic(err)
	}
}

// SetLevel 調整全域 log 等級，未知字串會回傳錯誤並保留原等級
func SetLevel(text string) error {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(text)); err != nil {
		return err
	}
	level.SetLevel(l)
	return nil
}

func Level() zapcore.Level {
	return level.Level()
}

// WithComponent 回傳帶有 component 欄位的 logger，供 geo、engagement、handler、worker 等使用
func WithComponent(component string) *zap.Logger {
	return L.With(zap.String("component", component))
}

// Sync 結束前 flush
func Sync() {
	_ = L.Sync()
}
