package debug

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInit_WritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "debug.log")
	if err := Init(path); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	Log("laid out %d nodes", 3)
	if err := Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), `"msg":"laid out 3 nodes"`) {
		t.Errorf("log = %q, want it to contain the message", data)
	}
	if !strings.Contains(string(data), `"level":"debug"`) {
		t.Errorf("log = %q, want debug level", data)
	}
}

func TestLogger_NopWithoutEnv(t *testing.T) {
	t.Setenv(EnvVar, "")
	_ = Close()
	defer Close()

	l := Logger()
	if l == nil {
		t.Fatal("Logger() = nil, want a no-op logger")
	}
	if l.Core().Enabled(-1) {
		t.Error("no-op logger should not enable debug level")
	}
}

func TestLogger_FromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env.log")
	t.Setenv(EnvVar, path)
	_ = Close()
	defer Close()

	Logger().Debug("hello")
	_ = Logger().Sync()

	if _, err := os.Stat(path); err != nil {
		t.Errorf("Stat(%s) error = %v, want file created", path, err)
	}
}
