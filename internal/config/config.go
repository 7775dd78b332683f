package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	DefaultAPIBase = "http://localhost:5000"
	DefaultModel   = "gpt-4o-mini"
)

// Profile describes one translation setup. APIBase is the endpoint the
// client talks to; APIKey, BaseURL and Model configure the LLM backend used
// by `rorilingo serve`.
type Profile struct {
	APIBase string `json:"api_base"`
	APIKey  string `json:"api_key,omitempty"`
	BaseURL string `json:"base_url,omitempty"`
	Model   string `json:"model"`
}

type Settings struct {
	TimeoutMs         int    `json:"timeout_ms" env:"TIMEOUT_MS"`
	RetryDelayMs      int    `json:"retry_delay_ms" env:"RETRY_DELAY_MS"`
	Retries           int    `json:"retries" env:"RETRIES"`
	HistoryLimit      int    `json:"history_limit" env:"HISTORY_LIMIT"`
	InputHistoryLimit int    `json:"input_history_limit" env:"INPUT_HISTORY_LIMIT"`
	StoreBackend      string `json:"store_backend" env:"STORE"`
	ShareBase         string `json:"share_base" env:"SHARE_BASE"`
	ExportDir         string `json:"export_dir,omitempty" env:"EXPORT_DIR"`
	DefaultTarget     string `json:"default_target" env:"DEFAULT_TARGET"`
	MaxInputChars     int    `json:"max_input_chars" env:"MAX_INPUT_CHARS"`
}

type Config struct {
	Profiles       map[string]Profile `json:"profiles"`
	ActiveProfile  string             `json:"active_profile"`
	Settings       Settings           `json:"settings"`
	currentProfile *Profile
	overrides      envOverrides
	// fileSettings is Settings as read from disk, before env overrides.
	fileSettings *Settings
}

// envOverrides are applied on top of the active profile and never saved.
type envOverrides struct {
	APIBase string `env:"API_BASE"`
	APIKey  string `env:"API_KEY"`
	BaseURL string `env:"LLM_BASE_URL"`
	Model   string `env:"MODEL"`
}

const envPrefix = "RORILINGO_"

func DefaultSettings() Settings {
	return Settings{
		TimeoutMs:         10000,
		RetryDelayMs:      600,
		Retries:           1,
		HistoryLimit:      10,
		InputHistoryLimit: 50,
		StoreBackend:      "file",
		ShareBase:         "http://localhost:5000/",
		DefaultTarget:     "hi",
		MaxInputChars:     2000,
	}
}

func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	// Ensure config directory exists
	if err := ensureConfigDir(configPath); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	// Load existing config or create default
	config, err := loadConfigFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := config.applyEnv(); err != nil {
		return nil, err
	}

	// Validate and set current profile
	if err := config.setCurrentProfile(); err != nil {
		return nil, fmt.Errorf("failed to set current profile: %w", err)
	}

	return config, nil
}

// Dir is the directory holding config.json, the history store and the log.
func Dir() (string, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return "", err
	}
	return filepath.Dir(configPath), nil
}

func (c *Config) applyEnv() error {
	fromFile := c.Settings
	c.fileSettings = &fromFile

	opts := env.Options{Prefix: envPrefix}
	if err := env.ParseWithOptions(&c.Settings, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	if err := env.ParseWithOptions(&c.overrides, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	c.Settings.fillDefaults()
	return nil
}

func (s *Settings) fillDefaults() {
	d := DefaultSettings()
	if s.TimeoutMs <= 0 {
		s.TimeoutMs = d.TimeoutMs
	}
	if s.RetryDelayMs <= 0 {
		s.RetryDelayMs = d.RetryDelayMs
	}
	if s.Retries == 0 {
		s.Retries = d.Retries
	}
	if s.HistoryLimit <= 0 {
		s.HistoryLimit = d.HistoryLimit
	}
	if s.InputHistoryLimit <= 0 {
		s.InputHistoryLimit = d.InputHistoryLimit
	}
	if s.StoreBackend == "" {
		s.StoreBackend = d.StoreBackend
	}
	if s.ShareBase == "" {
		s.ShareBase = d.ShareBase
	}
	if s.DefaultTarget == "" {
		s.DefaultTarget = d.DefaultTarget
	}
	if s.MaxInputChars <= 0 {
		s.MaxInputChars = d.MaxInputChars
	}
}

func (s Settings) Timeout() time.Duration {
	return time.Duration(s.TimeoutMs) * time.Millisecond
}

func (s Settings) RetryDelay() time.Duration {
	return time.Duration(s.RetryDelayMs) * time.Millisecond
}

// IsValid reports whether the LLM backend can be used.
func (c *Config) IsValid() bool {
	return c.GetAPIKey() != ""
}

func (c *Config) GetAPIBase() string {
	if c.overrides.APIBase != "" {
		return c.overrides.APIBase
	}
	if c.currentProfile == nil || c.currentProfile.APIBase == "" {
		return DefaultAPIBase
	}
	return c.currentProfile.APIBase
}

func (c *Config) GetAPIKey() string {
	if c.overrides.APIKey != "" {
		return c.overrides.APIKey
	}
	if c.currentProfile == nil {
		return ""
	}
	return c.currentProfile.APIKey
}

func (c *Config) GetModel() string {
	if c.overrides.Model != "" {
		return c.overrides.Model
	}
	if c.currentProfile == nil || c.currentProfile.Model == "" {
		return DefaultModel
	}
	return c.currentProfile.Model
}

func (c *Config) GetBaseURL() string {
	if c.overrides.BaseURL != "" {
		return c.overrides.BaseURL
	}
	if c.currentProfile == nil {
		return ""
	}
	return c.currentProfile.BaseURL
}

func getConfigPath() (string, error) {
	var configDir string

	// Use RORILINGO_HOME if set, otherwise use user's home directory
	if home := os.Getenv("RORILINGO_HOME"); home != "" {
		configDir = home
	} else {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = homeDir
	}

	return filepath.Join(configDir, ".rorilingo", "config.json"), nil
}

func ensureConfigDir(configPath string) error {
	configDir := filepath.Dir(configPath)
	return os.MkdirAll(configDir, 0755)
}

func loadConfigFile(configPath string) (*Config, error) {
	// If config file doesn't exist, create default
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	config := Config{Settings: DefaultSettings()}
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	return &config, nil
}

func defaultProfile() Profile {
	return Profile{
		APIBase: DefaultAPIBase,
		Model:   DefaultModel,
	}
}

func createDefaultConfig(configPath string) (*Config, error) {
	config := &Config{
		Profiles: map[string]Profile{
			"default": defaultProfile(),
		},
		ActiveProfile: "default",
		Settings:      DefaultSettings(),
	}

	// Save default config to file
	if err := saveConfig(config, configPath); err != nil {
		return nil, err
	}

	return config, nil
}

func saveConfig(config *Config, configPath string) error {
	data, err := json.MarshalIndent(config.persisted(), "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0600)
}

// persisted is the view written to disk: env overrides of Settings are left out.
func (c *Config) persisted() *Config {
	out := *c
	if c.fileSettings != nil {
		out.Settings = *c.fileSettings
	}
	return &out
}

func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	return saveConfig(c, configPath)
}

// ProfileNames returns profile names in sorted order, minus exclude.
func (c *Config) ProfileNames(exclude string) []string {
	names := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		if name != exclude {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// EnsureDefaultProfile recreates the default profile after the last one is deleted.
func (c *Config) EnsureDefaultProfile() {
	if len(c.Profiles) > 0 {
		return
	}
	c.Profiles = map[string]Profile{"default": defaultProfile()}
	c.ActiveProfile = "default"
}

func (c *Config) setCurrentProfile() error {
	if c.Profiles == nil {
		return fmt.Errorf("no profiles defined")
	}

	profile, exists := c.Profiles[c.ActiveProfile]
	if !exists {
		// If active profile doesn't exist, try to use the first available profile
		for name, p := range c.Profiles {
			c.ActiveProfile = name
			profile = p
			exists = true
			break
		}
	}

	if !exists {
		return fmt.Errorf("no valid profiles found")
	}

	c.currentProfile = &profile
	return nil
}
