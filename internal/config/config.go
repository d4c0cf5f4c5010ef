package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the resolved application configuration.
type Config struct {
	// Theme name: "dark" (default) or "light".
	Theme string `mapstructure:"theme"`
	// Vault is the notes directory. Empty means the current directory;
	// the --vault flag overrides both.
	Vault string `mapstructure:"vault"`
	// Editor opens notes externally (falls back to $EDITOR).
	Editor string `mapstructure:"editor"`
	// SortField is "title", "created" or "modified".
	SortField string `mapstructure:"sort_field"`
	// SortDescending reverses the sort order.
	SortDescending bool `mapstructure:"sort_descending"`
	// GroupByDate inserts date section headers (time-based sorts only).
	GroupByDate bool `mapstructure:"group_by_date"`
	// ShowDate shows the per-note date line in the list.
	ShowDate bool `mapstructure:"show_date"`
	// PreviewLines is the number of content lines shown per note (0-3).
	PreviewLines int `mapstructure:"preview_lines"`
	// ShowTags shows each note's tag line in the list.
	ShowTags bool `mapstructure:"show_tags"`
	// ShowParent shows each note's parent folder in the list.
	ShowParent bool `mapstructure:"show_parent"`
	// IncludeDescendants lists notes from subfolders when a folder is
	// selected.
	IncludeDescendants bool `mapstructure:"include_descendants"`
	// AutoSelectFirst opens the first note when switching folders.
	AutoSelectFirst bool `mapstructure:"auto_select_first"`
	// ConfirmDelete prompts before deleting notes.
	ConfirmDelete bool `mapstructure:"confirm_delete"`
	// DebounceMS is the filesystem watcher debounce in milliseconds.
	DebounceMS int `mapstructure:"debounce_ms"`
}

// Load reads configuration from ~/.config/notenav/config.yaml, with
// NOTENAV_* environment variables taking precedence over the file.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	configDir := configDirectory()
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")

	setDefaults(v)

	v.SetEnvPrefix("NOTENAV")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// Config file not found is fine — use defaults.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.clamp()
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("theme", "dark")
	v.SetDefault("vault", "")
	v.SetDefault("editor", "")
	v.SetDefault("sort_field", "modified")
	v.SetDefault("sort_descending", true)
	v.SetDefault("group_by_date", true)
	v.SetDefault("show_date", true)
	v.SetDefault("preview_lines", 2)
	v.SetDefault("show_tags", true)
	v.SetDefault("show_parent", false)
	v.SetDefault("include_descendants", true)
	v.SetDefault("auto_select_first", false)
	v.SetDefault("confirm_delete", true)
	v.SetDefault("debounce_ms", 300)
}

// clamp keeps out-of-range values from breaking row height math.
func (c *Config) clamp() {
	if c.PreviewLines < 0 {
		c.PreviewLines = 0
	}
	if c.PreviewLines > 3 {
		c.PreviewLines = 3
	}
	if c.DebounceMS < 50 {
		c.DebounceMS = 50
	}
}

func configDirectory() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "notenav")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "notenav")
}
