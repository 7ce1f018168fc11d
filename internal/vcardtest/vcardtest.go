// Package vcardtest provides helpers shared by the codec tests.
package vcardtest

import (
	"os"
	"strings"
	"testing"
)

// Lines joins lines into wire text, one CRLF terminator per line, trailing
// terminator included.
func Lines(lines ...string) string {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteString("\r\n")
	}
	return b.String()
}

// Fixture returns the content of a wire fixture from the calling package's
// testdata directory.
func Fixture(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile("testdata/" + name)
	if err != nil {
		t.Fatalf("read fixture %s: %v", name, err)
	}
	return string(data)
}

// ErrWriter is an io.Writer that fails every Write with Err.
type ErrWriter struct {
	Err error
}

func (w *ErrWriter) Write(p []byte) (int, error) {
	return 0, w.Err
}
