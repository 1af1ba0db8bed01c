package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.env")

	if FileExists(path) {
		t.Error("FileExists reported a missing file as present")
	}

	if err := os.WriteFile(path, []byte("API_PORT=8080\n"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	if !FileExists(path) {
		t.Error("FileExists reported an existing file as missing")
	}
}
