package logs

import (
	"io"
	"os"
	"strings"
	"testing"
)

type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stderr
}

type testWriter struct {
	t testing.TB
}

func (t testWriter) Write(p []byte) (int, error) {
	t.t.Helper()
	t.t.Log(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

// TestWriter sends log lines to t.Log.
func TestWriter(t testing.TB) Writer {
	return testWriter{
		t: t,
	}
}
