// Package logging provides the engine's structured logger. It keeps the
// teacher's Init/Debug/Info/Warn/Error call shape but swaps the hand
// rolled encoding/json formatter for go.uber.org/zap, the structured
// logging library used throughout the rest of the retrieved corpus
// (erigon, coreth, luxfi-evm) instead of reimplementing one.
package logging

import (
	"os"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"txnengine/internal/config"
)

var defaultLogger *zap.SugaredLogger

// RunID identifies one process run, tagged onto every log line so that
// interleaved per-client-actor output (many goroutines logging
// concurrently) can be grepped back together. Grounded on the teacher's
// request-scoped-id middleware (internal/api/middleware), adapted from an
// HTTP request id to a process run id.
var RunID = uuid.NewString()

// Init installs the package-level default logger from cfg. Calls to
// Debug/Info/Warn/Error before Init are no-ops.
func Init(cfg config.LoggingConfig) {
	level := parseLevel(cfg.Level)

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	if strings.EqualFold(cfg.Format, "console") {
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(os.Stderr)), level)
	defaultLogger = zap.New(core).Sugar().With("run_id", RunID)
}

func parseLevel(levelStr string) zapcore.Level {
	switch strings.ToUpper(levelStr) {
	case "DEBUG":
		return zapcore.DebugLevel
	case "WARN":
		return zapcore.WarnLevel
	case "ERROR":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func fieldArgs(fields map[string]interface{}) []interface{} {
	if len(fields) == 0 {
		return nil
	}
	args := make([]interface{}, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	return args
}

func firstFields(fields []map[string]interface{}) map[string]interface{} {
	if len(fields) == 0 {
		return nil
	}
	return fields[0]
}

// Debug logs at debug level with optional structured fields.
func Debug(message string, fields ...map[string]interface{}) {
	if defaultLogger == nil {
		return
	}
	defaultLogger.Debugw(message, fieldArgs(firstFields(fields))...)
}

// Info logs at info level with optional structured fields.
func Info(message string, fields ...map[string]interface{}) {
	if defaultLogger == nil {
		return
	}
	defaultLogger.Infow(message, fieldArgs(firstFields(fields))...)
}

// Warn logs at warn level with optional structured fields.
func Warn(message string, fields ...map[string]interface{}) {
	if defaultLogger == nil {
		return
	}
	defaultLogger.Warnw(message, fieldArgs(firstFields(fields))...)
}

// Error logs at error level, attaching err under the "error" field.
func Error(message string, err error, fields map[string]interface{}) {
	if defaultLogger == nil {
		return
	}
	if fields == nil {
		fields = make(map[string]interface{})
	}
	if err != nil {
		fields["error"] = err.Error()
	}
	defaultLogger.Errorw(message, fieldArgs(fields)...)
}
