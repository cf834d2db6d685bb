package config

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/aleksamarkoni/uva-command-line/client"
)

const credentialsFile = "config"

// FileStore keeps credentials in <dir>/config.json.
type FileStore struct {
	dir string
}

type storedCredentials struct {
	Username string `mapstructure:"username"`
	UserID   string `mapstructure:"uhunt_uid"`
	Session  string `mapstructure:"session"`
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Path is where the credentials live.
func (fs *FileStore) Path() string {
	return filepath.Join(fs.dir, credentialsFile+".json")
}

func (fs *FileStore) viper() *viper.Viper {
	v := viper.New()
	v.AddConfigPath(fs.dir)
	v.SetConfigName(credentialsFile)
	v.SetConfigType("json")
	v.SetConfigPermissions(0o600)
	return v
}

func (fs *FileStore) Load() (*client.Credentials, error) {
	v := fs.viper()
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("read credentials: %w", err)
	}

	var sc storedCredentials
	if err := v.Unmarshal(&sc); err != nil {
		return nil, fmt.Errorf("decode credentials: %w", err)
	}
	if sc.Session == "" {
		return nil, nil
	}
	return decodeCredentials(sc)
}

func (fs *FileStore) Save(creds *client.Credentials) error {
	if err := os.MkdirAll(fs.dir, 0o700); err != nil {
		return err
	}
	sc := encodeCredentials(creds)

	v := fs.viper()
	v.Set("username", sc.Username)
	v.Set("uhunt_uid", sc.UserID)
	v.Set("session", sc.Session)
	return v.WriteConfigAs(fs.Path())
}

// Clear removes the stored credentials; clearing an empty store is not an error.
func (fs *FileStore) Clear() error {
	if err := os.Remove(fs.Path()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func encodeCredentials(creds *client.Credentials) storedCredentials {
	return storedCredentials{
		Username: creds.Username,
		UserID:   creds.UserID,
		Session:  base64.StdEncoding.EncodeToString(creds.Session),
	}
}

func decodeCredentials(sc storedCredentials) (*client.Credentials, error) {
	blob, err := base64.StdEncoding.DecodeString(sc.Session)
	if err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &client.Credentials{Session: blob, UserID: sc.UserID, Username: sc.Username}, nil
}
