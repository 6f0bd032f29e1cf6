package contacts

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// LoadFile reads a JSON snapshot into a new store. A missing file is
// not an error; it yields an empty store so first use works without
// setup.
func LoadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return NewStore(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading contacts file %s: %w", path, err)
	}

	var list []Contact
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("parsing contacts file %s: %w", path, err)
	}
	return &Store{contacts: list}, nil
}

// SaveFile writes the store as a JSON snapshot, creating parent
// directories as needed. The file is user-only: it contains addresses.
func (s *Store) SaveFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating contacts dir: %w", err)
	}

	data, err := json.MarshalIndent(s.contacts, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing contacts file %s: %w", path, err)
	}
	return nil
}
