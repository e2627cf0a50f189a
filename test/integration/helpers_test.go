//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/peoplereg/people/internal/config"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir  string // PEOPLE_HOME, holds config.yaml
	DataDir  string // where registry files are written
	Registry string // default registry path inside DataDir
}

// setupTestEnv creates isolated temp directories and sets environment variables
// so config reads and writes are sandboxed. The env vars are restored after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir: t.TempDir(),
		DataDir: t.TempDir(),
	}
	env.Registry = filepath.Join(env.DataDir, "people.json")

	t.Setenv("PEOPLE_HOME", env.HomeDir)
	t.Setenv("PEOPLE_LANG", "")
	t.Setenv("PEOPLE_FORMAT", "")
	t.Setenv("PEOPLE_LOG_LEVEL", "")
	config.Load()

	return env
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s", path)
	}
}

func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file to not exist: %s", path)
	}
}

func assertContains(t *testing.T, s, substr string) {
	t.Helper()
	if !strings.Contains(s, substr) {
		t.Errorf("expected output to contain %q, got:\n%s", substr, s)
	}
}
