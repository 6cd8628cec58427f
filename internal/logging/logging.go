package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewLogger construye el logger del servicio. Sin LOG_FILE escribe JSON a
// stderr; con LOG_FILE escribe sobre un archivo con rotacion.
func NewLogger(logFile string) (*zap.Logger, error) {
	if logFile == "" {
		return zap.NewProduction()
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(&lumberjack.Logger{
			Filename: logFile,
			MaxSize:  100,
			MaxAge:   28,
			Compress: true,
		}),
		zap.InfoLevel,
	)
	return zap.New(core), nil
}
