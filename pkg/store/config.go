package store

import (
	"fmt"
	"os"
	"strings"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Backend selects a persistence implementation.
type Backend string

const (
	// BackendLocal keeps entries on the local filesystem.
	BackendLocal Backend = "local"
	// BackendRemote keeps entries in a hosted MongoDB deployment.
	BackendRemote Backend = "remote"
)

// Config describes where and how entries are persisted.
type Config interface {
	BasePath() string
	Backend() Backend
	RemoteURI() string
	RemoteDatabase() string
	WeekStart() time.Weekday
}

// LoadConfig discovers configuration from a .daybook file, DAYBOOK_*
// environment variables, and defaults.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.daybook")
	viper.SetDefault("backend", string(BackendLocal))
	viper.SetDefault("remote_uri", "mongodb://localhost:27017")
	viper.SetDefault("remote_database", "daybook")
	viper.SetDefault("week_start", "sunday")

	viper.SetConfigName(".daybook") // .yaml is implicit
	viper.SetEnvPrefix("DAYBOOK")
	viper.AutomaticEnv()

	if override := os.Getenv("DAYBOOK_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		viper.AddConfigPath(home)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	return &fileConfig{
		Path:     path,
		Kind:     Backend(strings.ToLower(viper.GetString("backend"))),
		URI:      viper.GetString("remote_uri"),
		Database: viper.GetString("remote_database"),
		Week:     viper.GetString("week_start"),
	}, nil
}

type fileConfig struct {
	Path     string `json:"path"`
	Kind     Backend `json:"backend"`
	URI      string `json:"remote_uri"`
	Database string `json:"remote_database"`
	Week     string `json:"week_start"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) Backend() Backend {
	if f.Kind == BackendRemote {
		return BackendRemote
	}
	return BackendLocal
}

func (f *fileConfig) RemoteURI() string {
	return f.URI
}

func (f *fileConfig) RemoteDatabase() string {
	return f.Database
}

func (f *fileConfig) WeekStart() time.Weekday {
	if strings.EqualFold(strings.TrimSpace(f.Week), "monday") {
		return time.Monday
	}
	return time.Sunday
}
