package session

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"socialite/internal/core"
)

// FileStore persists the session record as one JSON file, the durable
// client-storage analog. Writes go through a temp file and a rename so
// a failed write leaves the previous record intact.
type FileStore struct {
	Config *core.Config

	// Path overrides the configured location. Mostly for tests.
	Path string
}

func (f *FileStore) Init(_ context.Context) error {
	if f.Path != "" {
		return nil
	}
	if f.Config != nil && f.Config.SessionFile != "" {
		f.Path = f.Config.SessionFile
		return nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return err
	}
	f.Path = filepath.Join(dir, "socialite", "session.json")
	return nil
}

func (f *FileStore) Load(_ context.Context) (*core.Session, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, core.ErrNoSession
		}
		return nil, err
	}

	var sess core.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (f *FileStore) Save(_ context.Context, sess *core.Session) error {
	if err := os.MkdirAll(filepath.Dir(f.Path), 0o700); err != nil {
		return err
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}

	tmp := f.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, f.Path)
}

func (f *FileStore) Clear(_ context.Context) error {
	err := os.Remove(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
