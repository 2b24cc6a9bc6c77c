package testutil

import (
	"strings"
	"testing"

	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/pkg/config"
	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/pkg/logger"
)

// testWriter forwards log records to t.Log so they only show for failing or verbose tests
type testWriter struct {
	t *testing.T
}

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

// SetupTestLogger returns a debug level logger bound to t. It does not touch
// the process-wide logger.
func SetupTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	return logger.NewWriterLogger(testWriter{t: t}, config.LogLevelDebug)
}
