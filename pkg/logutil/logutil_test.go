package logutil

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetOutput(t *testing.T) {
	logger := GetLogger("[test] ")
	var sb strings.Builder
	SetOutput(&sb)
	defer SetOutput(io.Discard)

	logger.Println("hello")
	if !strings.Contains(sb.String(), "[test] ") || !strings.HasSuffix(sb.String(), "hello\n") {
		t.Errorf("logger wrote %q", sb.String())
	}

	later := GetLogger("[later] ")
	later.Println("world")
	if !strings.HasSuffix(sb.String(), "world\n") {
		t.Errorf("logger created after SetOutput wrote %q", sb.String())
	}
}

func TestSetOutputFile(t *testing.T) {
	logger := GetLogger("[test] ")
	fname := filepath.Join(t.TempDir(), "log")
	if err := SetOutputFile(fname); err != nil {
		t.Fatalf("SetOutputFile -> error %v", err)
	}
	logger.Println("to file")
	if err := SetOutputFile(""); err != nil {
		t.Fatalf("SetOutputFile(\"\") -> error %v", err)
	}
	logger.Println("discarded")

	content, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(content), "to file") || strings.Contains(string(content), "discarded") {
		t.Errorf("log file contains %q", content)
	}
}

func TestSetOutputFile_BadPath(t *testing.T) {
	if err := SetOutputFile(filepath.Join(t.TempDir(), "no", "such", "dir", "log")); err == nil {
		t.Errorf("SetOutputFile with bad path -> no error")
	}
}
