package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/aleksamarkoni/uva-command-line/internal/judge"
)

// ProjectFile holds per-directory defaults written by 'uva init'.
const ProjectFile = ".uva-project.json"

type ProjectConfig struct {
	Language string `mapstructure:"language"`
}

// DefaultLanguage returns the project's language, if one was set.
func (p *ProjectConfig) DefaultLanguage() (judge.Language, bool) {
	if p == nil || p.Language == "" {
		return 0, false
	}
	l, err := judge.ParseLanguage(p.Language)
	if err != nil {
		return 0, false
	}
	return l, true
}

// LoadProjectConfig reads ProjectFile from dir. A missing file yields an empty config.
func LoadProjectConfig(dir string) (*ProjectConfig, error) {
	v := viper.New()
	v.SetConfigFile(filepath.Join(dir, ProjectFile))
	v.SetConfigType("json")

	if err := v.ReadInConfig(); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &ProjectConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read project config: %w", err)
	}

	var cfg ProjectConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal project config: %w", err)
	}
	return &cfg, nil
}

// SaveProjectConfig writes the default language to ProjectFile in dir.
func SaveProjectConfig(dir string, lang judge.Language) error {
	v := viper.New()
	v.SetConfigType("json")
	v.Set("language", lang.Name())
	return v.WriteConfigAs(filepath.Join(dir, ProjectFile))
}
