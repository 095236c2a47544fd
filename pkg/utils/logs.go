package utils

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

var computeLog bool
var logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

// InitLog enables or disables compute logs and sends every log line to w.
func InitLog(verbose bool, w io.Writer) {
	computeLog = verbose
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// ComputeLog reports progress of a component; silent unless verbose.
func ComputeLog(component string, format string, v ...any) {
	if computeLog {
		logger.Debug(fmt.Sprintf(format, v...), "component", component)
	}
}

func WarnLog(component string, format string, v ...any) {
	logger.Warn(fmt.Sprintf(format, v...), "component", component)
}
