// Package credentials persists local user accounts as a single JSON file.
//
// The whole file is read on every operation and rewritten on every
// successful registration. There is no locking: two processes writing the
// same file race, and the last rename wins.
package credentials

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"hiragana-practice/internal/logger"
)

var ErrCorruptStore = errors.New("credential store is corrupt")

// User is one account record. Progress is stored and round-tripped but not
// interpreted.
type User struct {
	Password string                 `json:"password"`
	Progress map[string]interface{} `json:"progress"`
}

// Data is the on-disk document: {"users": {name: User}}.
type Data struct {
	Users map[string]User `json:"users"`
}

func NewData() *Data {
	return &Data{Users: make(map[string]User)}
}

type RegisterResult int

// The zero RegisterResult accompanies a non-nil error.
const (
	RegisterSuccess RegisterResult = iota + 1
	RegisterUsernameTaken
	RegisterEmptyField
)

func (r RegisterResult) String() string {
	switch r {
	case RegisterSuccess:
		return "success"
	case RegisterUsernameTaken:
		return "username_taken"
	case RegisterEmptyField:
		return "empty_field"
	default:
		return "unknown"
	}
}

type Store struct {
	path   string
	logger logger.Logger
}

func NewStore(path string, log logger.Logger) *Store {
	return &Store{path: path, logger: log}
}

func (s *Store) Path() string {
	return s.path
}

// Load reads the store. A missing file is an empty store; an unparsable one,
// or one with a null user record, is ErrCorruptStore and is left untouched
// on disk.
func (s *Store) Load() (*Data, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Debug("CredentialStore", "no store file, starting empty", map[string]interface{}{
			"path": s.path,
		})
		return NewData(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	data := NewData()
	if err := json.Unmarshal(raw, data); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptStore, s.path, err)
	}
	if name, ok := nullRecord(raw); ok {
		return nil, fmt.Errorf("%w: %s: user %q has no record", ErrCorruptStore, s.path, name)
	}

	if data.Users == nil {
		data.Users = make(map[string]User)
	}
	for name, u := range data.Users {
		if u.Progress == nil {
			u.Progress = make(map[string]interface{})
			data.Users[name] = u
		}
	}

	return data, nil
}

// nullRecord finds a user whose record is JSON null. It would otherwise decode
// to a User with an empty password.
func nullRecord(raw []byte) (string, bool) {
	var doc struct {
		Users map[string]json.RawMessage `json:"users"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return "", false
	}
	for name, rec := range doc.Users {
		if bytes.Equal(bytes.TrimSpace(rec), []byte("null")) {
			return name, true
		}
	}
	return "", false
}

// Save replaces the store file via write-to-temp and rename. The file keeps
// its existing permissions; a new file gets 0644.
func (s *Store) Save(data *Data) error {
	if data == nil {
		data = NewData()
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Chmod(s.fileMode()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", s.path, err)
	}

	s.logger.Debug("CredentialStore", "store saved", map[string]interface{}{
		"path":  s.path,
		"users": len(data.Users),
		"bytes": len(raw),
	})
	return nil
}

func (s *Store) fileMode() fs.FileMode {
	if info, err := os.Stat(s.path); err == nil {
		return info.Mode().Perm()
	}
	return 0o644
}

// Authenticate reports whether username exists with exactly this password.
func (s *Store) Authenticate(username, password string) (bool, error) {
	data, err := s.Load()
	if err != nil {
		return false, err
	}

	user, ok := data.Users[username]
	if !ok || user.Password != password {
		s.logger.Info("CredentialStore", "authentication rejected", map[string]interface{}{
			"username":   username,
			"known_user": ok,
		})
		return false, nil
	}

	s.logger.Info("CredentialStore", "authentication accepted", map[string]interface{}{
		"username": username,
	})
	return true, nil
}

// Register inserts a new user with empty progress. Existing users are never
// overwritten and failed registrations never touch the file.
func (s *Store) Register(username, password string) (RegisterResult, error) {
	data, err := s.Load()
	if err != nil {
		return 0, err
	}

	if _, exists := data.Users[username]; exists {
		s.logger.Info("CredentialStore", "registration rejected", map[string]interface{}{
			"username": username,
			"reason":   RegisterUsernameTaken.String(),
		})
		return RegisterUsernameTaken, nil
	}

	if username == "" || password == "" {
		s.logger.Info("CredentialStore", "registration rejected", map[string]interface{}{
			"reason": RegisterEmptyField.String(),
		})
		return RegisterEmptyField, nil
	}

	data.Users[username] = User{
		Password: password,
		Progress: make(map[string]interface{}),
	}

	if err := s.Save(data); err != nil {
		return 0, err
	}

	s.logger.Info("CredentialStore", "user registered", map[string]interface{}{
		"username": username,
	})
	return RegisterSuccess, nil
}
