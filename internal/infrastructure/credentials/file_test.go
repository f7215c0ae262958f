package credentials

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "usuarios.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	return path
}

func TestLoadFile_ValidFile(t *testing.T) {
	path := writeTempFile(t, `{
		"ana@example.com":   {"senha": "segredo", "user_id": "user123"},
		"bruno@example.com": {"senha": "outra",   "user_id": "user456"}
	}`)

	store, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile returned error: %v", err)
	}
	if store.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", store.Len())
	}

	cred, ok := store.Lookup("ana@example.com")
	if !ok {
		t.Fatalf("expected ana@example.com to be present")
	}
	if cred.Password != "segredo" || cred.UserID != "user123" {
		t.Fatalf("unexpected credential: %+v", cred)
	}
}

func TestLoadFile_CaseSensitiveLookup(t *testing.T) {
	path := writeTempFile(t, `{"ana@example.com": {"senha": "segredo", "user_id": "user123"}}`)

	store, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile returned error: %v", err)
	}
	if _, ok := store.Lookup("Ana@Example.com"); ok {
		t.Fatalf("lookup must be case-sensitive")
	}
}

func TestLoadFile_MissingFile(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoadFile_MalformedJSON(t *testing.T) {
	path := writeTempFile(t, `{"ana@example.com": `)

	if _, err := LoadFile(path); err == nil {
		t.Fatalf("expected error for malformed file")
	}
}
