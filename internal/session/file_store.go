package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore keeps one JSON file per domain under a directory.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (s *FileStore) path(domain string) string {
	return filepath.Join(s.dir, domain+"-session.json")
}

func (s *FileStore) Load(_ context.Context, domain string) (*LocalRecord, error) {
	payload, err := os.ReadFile(s.path(domain))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s session: %w", domain, err)
	}

	var record LocalRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		return nil, fmt.Errorf("decode %s session: %w", domain, err)
	}
	return &record, nil
}

// Save writes to a temp file first and renames it over the old one.
func (s *FileStore) Save(_ context.Context, record LocalRecord) error {
	if record.Domain == "" {
		return errors.New("save session: empty domain")
	}
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	payload, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s session: %w", record.Domain, err)
	}

	tmp, err := os.CreateTemp(s.dir, record.Domain+"-session-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp session file: %w", err)
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	if _, err := tmp.Write(payload); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s session: %w", record.Domain, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s session: %w", record.Domain, err)
	}
	if err := os.Rename(tmp.Name(), s.path(record.Domain)); err != nil {
		return fmt.Errorf("replace %s session: %w", record.Domain, err)
	}
	return nil
}

func (s *FileStore) Clear(_ context.Context, domain string) error {
	if err := os.Remove(s.path(domain)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("clear %s session: %w", domain, err)
	}
	return nil
}
