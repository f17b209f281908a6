// internal/logging/logging.go
package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the console logger used for run diagnostics. Default level is
// Info (the pre-check row counts); verbose lowers it to Debug, quiet raises it
// to Error. Quiet wins when both are set.
func New(w io.Writer, verbose, quiet bool) *zap.Logger {
	lvl := zapcore.InfoLevel
	switch {
	case quiet:
		lvl = zapcore.ErrorLevel
	case verbose:
		lvl = zapcore.DebugLevel
	}

	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = "" // no timestamps on console output
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), lvl)
	return zap.New(core)
}
