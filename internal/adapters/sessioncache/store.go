// Package sessioncache persists the media session credential between client
// invocations so a restart resumes at the guidelines screen.
package sessioncache

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/hirelens/interview-cli/internal/domain"
	"github.com/hirelens/interview-cli/internal/ports"
)

const (
	configName       = "config"
	configType       = "toml"
	sessionPathKey   = "session.path"
	sessionFileMode  = 0o600
	sessionDirMode   = 0o700
	sessionConfigDir = ".hirelens"
	sessionFile      = "session.toml"
	tempFilePattern  = ".session-*.toml.tmp"
)

const schemaVersion = 1

type fileSchema struct {
	Version   int    `toml:"version"`
	Token     string `toml:"token"`
	ServerURL string `toml:"server_url"`
}

// Store caches the credential in a single TOML file under the user's config
// directory. Writes are atomic: temp file then rename.
type Store struct {
	sessionPath string
	mu          sync.RWMutex
}

var _ ports.CredentialStore = (*Store)(nil)

// NewStore resolves the cache location, honouring a session.path override in
// the optional config file.
func NewStore(cfg *viper.Viper) (*Store, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	defaultPath := filepath.Join(homeDir, sessionConfigDir, sessionFile)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, sessionConfigDir))
	cfg.SetDefault(sessionPathKey, defaultPath)

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	sessionPath := cfg.GetString(sessionPathKey)
	if sessionPath == "" {
		return nil, errors.New("session path is empty")
	}
	sessionPath, err = filepath.Abs(sessionPath)
	if err != nil {
		return nil, fmt.Errorf("resolve session path: %w", err)
	}

	return &Store{sessionPath: filepath.Clean(sessionPath)}, nil
}

// NewStoreAt builds a store against an explicit file path, bypassing config
// resolution.
func NewStoreAt(path string) *Store {
	return &Store{sessionPath: filepath.Clean(path)}
}

func (s *Store) Load(ctx context.Context) (domain.Credential, error) {
	if err := ctx.Err(); err != nil {
		return domain.Credential{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.sessionPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.Credential{}, domain.ErrNoCredential
		}
		return domain.Credential{}, fmt.Errorf("read session cache: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return domain.Credential{}, fmt.Errorf("decode session cache: %w", err)
	}
	if file.Version != schemaVersion {
		return domain.Credential{}, fmt.Errorf("session cache version %d is not supported", file.Version)
	}
	if file.Token == "" || file.ServerURL == "" {
		return domain.Credential{}, domain.ErrNoCredential
	}

	return domain.Credential{Token: file.Token, ServerURL: file.ServerURL}, nil
}

func (s *Store) Save(ctx context.Context, cred domain.Credential) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := cred.Validate(); err != nil {
		return fmt.Errorf("validate credential: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.write(fileSchema{
		Version:   schemaVersion,
		Token:     cred.Token,
		ServerURL: cred.ServerURL,
	})
}

func (s *Store) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.sessionPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session cache: %w", err)
	}
	return nil
}

func (s *Store) write(file fileSchema) error {
	if err := os.MkdirAll(filepath.Dir(s.sessionPath), sessionDirMode); err != nil {
		return fmt.Errorf("create session directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode session cache: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(s.sessionPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp session file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp session file: %w", err)
	}

	if err := tempFile.Chmod(sessionFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp session file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp session file: %w", err)
	}

	if err := os.Rename(tempName, s.sessionPath); err != nil {
		return fmt.Errorf("replace session file: %w", err)
	}

	cleanup = false
	return nil
}
