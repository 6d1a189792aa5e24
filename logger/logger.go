// Package logger provides centralized logging for the application.
// File: logger/logger.go
package logger

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

// ------------------- global loggers -------------------

// four logger levels accessible throughout the application
var (
	Info  *log.Logger
	Warn  *log.Logger
	Error *log.Logger
	Debug *log.Logger
)

const flags = log.Ldate | log.Ltime | log.Lshortfile

// ------------------- logger initialization -------------------

// InitLogger (re)configures the four loggers.
//   - An empty dir writes to stdout only.
//   - Otherwise a timestamped file is created in dir and logs go to both.
//
// If the directory or file cannot be created the loggers stay on stdout and
// the error is returned so the caller can report it.
func InitLogger(dir string) error {
	if dir == "" {
		configure(os.Stdout)
		return nil
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		configure(os.Stdout)
		return err
	}

	logFileName := filepath.Join(dir, time.Now().Format("2006-01-02_15-04-05")+".log")
	file, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600) // #nosec
	if err != nil {
		configure(os.Stdout)
		return err
	}

	configure(io.MultiWriter(os.Stdout, file))
	return nil
}

// SetOutput points every logger at w. Tests use it to capture output.
func SetOutput(w io.Writer) {
	configure(w)
}

func configure(w io.Writer) {
	Info = log.New(w, "INFO: ", flags)
	Warn = log.New(w, "WARN: ", flags)
	Error = log.New(w, "ERROR: ", flags)
	Debug = log.New(w, "DEBUG: ", flags)
}

// SetLogLevel discards Debug output in production.
func SetLogLevel(env string) {
	if env == "production" {
		Debug.SetOutput(io.Discard)
	}
}

// stdout-only until main calls InitLogger with the configured directory
func init() {
	configure(os.Stdout)
}
