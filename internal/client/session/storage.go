package session

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// Storage keys used by the client.
const (
	KeyUser         = "user"
	KeyToken        = "token"
	KeyNavCollapsed = "navCollapsed"
)

// Storage is a small keyed blob store backing the session and UI preferences.
type Storage interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

// FileStorage keeps all keys in a single JSON file, rewritten atomically on
// every change so a crash never leaves a half-written state file.
type FileStorage struct {
	path string
}

func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

func (f *FileStorage) Get(key string) ([]byte, bool, error) {
	state, err := f.load()
	if err != nil {
		return nil, false, err
	}
	value, ok := state[key]
	if !ok {
		return nil, false, nil
	}
	return value, true, nil
}

func (f *FileStorage) Set(key string, value []byte) error {
	state, err := f.load()
	if err != nil {
		// A corrupt state file is replaced, not fatal.
		state = map[string]json.RawMessage{}
	}
	state[key] = value
	return f.save(state)
}

func (f *FileStorage) Delete(key string) error {
	state, err := f.load()
	if err != nil {
		return nil
	}
	if _, ok := state[key]; !ok {
		return nil
	}
	delete(state, key)
	return f.save(state)
}

func (f *FileStorage) load() (map[string]json.RawMessage, error) {
	state := map[string]json.RawMessage{}
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return state, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}
	return state, nil
}

func (f *FileStorage) save(state map[string]json.RawMessage) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return err
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}
