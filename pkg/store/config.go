package store

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config carries the settings the store and the report pipeline need.
type Config interface {
	BasePath() string
	APIKey() string
	ModelName() string
}

// LoadConfig resolves configuration from an optional .moodlog file and the
// MOODLOG_* environment, with sane defaults.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.moodlog.db")
	viper.SetDefault("model", "gemini-2.0-flash")
	viper.SetConfigName(".moodlog") // .yaml is implicit
	viper.SetEnvPrefix("MOODLOG")
	viper.AutomaticEnv()

	if override := os.Getenv("MOODLOG_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("error reading config file: %v", err)
			return nil, err
		}
	}

	return &fileConfig{
		Path:  expandHome(viper.GetString("path")),
		Key:   viper.GetString("api_key"),
		Model: viper.GetString("model"),
	}, nil
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~/"))
}

type fileConfig struct {
	Path  string `json:"path"`
	Key   string `json:"api_key"`
	Model string `json:"model"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) APIKey() string {
	return f.Key
}

func (f *fileConfig) ModelName() string {
	return f.Model
}
