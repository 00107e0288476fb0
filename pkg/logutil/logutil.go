// Package logutil provides logging utilities.
package logutil

import (
	"io"
	"log"
	"os"
	"sync"
)

var (
	out     = io.Discard
	logFile *os.File
	loggers []*log.Logger
	mu      sync.Mutex
)

// GetLogger gets a logger with the given prefix. Loggers share the same
// output, which is initially discarded and can be changed with SetOutput or
// SetOutputFile.
func GetLogger(prefix string) *log.Logger {
	mu.Lock()
	defer mu.Unlock()
	logger := log.New(out, prefix, log.LstdFlags)
	loggers = append(loggers, logger)
	return logger
}

// SetOutput redirects the output of all loggers obtained with GetLogger to the
// new io.Writer. If the old output was a file opened by SetOutputFile, it is
// closed.
func SetOutput(newout io.Writer) error {
	mu.Lock()
	defer mu.Unlock()
	err := closeLogFile()
	setOutput(newout)
	return err
}

// SetOutputFile redirects the output of all loggers obtained with GetLogger to
// the named file, which is created or appended to. If the old output was a
// file opened by SetOutputFile, it is closed. An empty path discards output.
func SetOutputFile(fname string) error {
	mu.Lock()
	defer mu.Unlock()
	if err := closeLogFile(); err != nil {
		return err
	}
	if fname == "" {
		setOutput(io.Discard)
		return nil
	}
	file, err := os.OpenFile(fname, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	logFile = file
	setOutput(file)
	return nil
}

func closeLogFile() error {
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

func setOutput(newout io.Writer) {
	out = newout
	for _, logger := range loggers {
		logger.SetOutput(out)
	}
}
