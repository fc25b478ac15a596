package knowledge

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

func TestLoadReadsTxtFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "savings.txt", "Savings account interest rate is 3.5%")
	writeFile(t, dir, "loans.txt", "Home loan interest starts at 8.5%")
	writeFile(t, dir, "ignore.md", "not part of the knowledge base")

	content, err := NewDirLoader(dir, 1000, nopLogger{}).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(content) != 2 {
		t.Fatalf("loaded %d files, want 2", len(content))
	}
	if content["savings.txt"] != "Savings account interest rate is 3.5%" {
		t.Errorf("unexpected savings.txt content %q", content["savings.txt"])
	}
	if _, ok := content["ignore.md"]; ok {
		t.Error("non-txt file should be skipped")
	}
}

func TestLoadTruncatesAtThreeChunks(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "big.txt", strings.Repeat("a", 100))

	content, err := NewDirLoader(dir, 10, nopLogger{}).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := len(content["big.txt"]); got != 30 {
		t.Errorf("truncated length = %d, want 30", got)
	}
}

func TestLoadMissingDirectoryIsNotFatal(t *testing.T) {
	content, err := NewDirLoader(filepath.Join(t.TempDir(), "nope"), 1000, nopLogger{}).Load()
	if err != nil {
		t.Fatalf("missing directory should not error, got %v", err)
	}
	if len(content) != 0 {
		t.Errorf("missing directory should yield empty content, got %v", content)
	}
}

func writeFile(t *testing.T, dir, name, text string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}
}
