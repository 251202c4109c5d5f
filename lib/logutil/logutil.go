// Package logutil sets up process-wide slog output: stderr plus a dated
// log file under logs/.
package logutil

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

const logDir = "logs"

// Setup installs the default slog handler, teeing text output to stderr and
// logs/farescan_<YYYYMMDD>.log. When the log file cannot be created the
// handler degrades to stderr only. Returns a close func for the file.
func Setup(debug bool) func() {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	out := io.Writer(os.Stderr)
	closeFile := func() {}

	path := filepath.Join(
		logDir,
		fmt.Sprintf("farescan_%s.log", time.Now().Format("20060102")),
	)
	err := os.MkdirAll(logDir, 0755)
	if err == nil {
		var file *os.File
		file, err = os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			out = io.MultiWriter(os.Stderr, file)
			closeFile = func() { file.Close() }
		}
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{
		Level: level,
	})))

	if err != nil {
		slog.Warn("log file unavailable, logging to stderr only", "path", path, "err", err)
	}
	return closeFile
}

// Fatal logs the error and exits non-zero.
func Fatal(message string, err error) {
	slog.Error(message, "err", err.Error())
	os.Exit(1)
}
