// Package credentials loads the flat credential file used by /login.
package credentials

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/oportuna/career-assistant/internal/core/domain"
)

// FileStore is a read-only email → credential mapping loaded once at
// startup. Lookups are case-sensitive on the email.
type FileStore struct {
	entries map[string]domain.Credential
}

// LoadFile reads and parses the credential file. A missing or malformed file
// is a startup error, never a per-request one.
func LoadFile(path string) (*FileStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("credentials: read %s: %w", path, err)
	}

	entries := make(map[string]domain.Credential)
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("credentials: parse %s: %w", path, err)
	}
	return &FileStore{entries: entries}, nil
}

// Lookup returns the credential entry for an email, if present.
func (s *FileStore) Lookup(email string) (domain.Credential, bool) {
	cred, ok := s.entries[email]
	return cred, ok
}

// Len reports how many credential entries were loaded.
func (s *FileStore) Len() int {
	return len(s.entries)
}
