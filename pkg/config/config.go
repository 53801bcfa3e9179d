package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "/etc/feedback/config"
	ConfigFileName    = "feedback.yml"
)

// AppConfig holds all feedback application settings.
type AppConfig struct {
	// BindAddress is the address the HTTP server listens on.
	BindAddress string `yaml:"bind_address"`

	// Port is the HTTP server port.
	Port string `yaml:"port"`

	// DatabaseURL is the PostgreSQL connection string.
	DatabaseURL string `yaml:"database_url"`

	// SessionSecret keys the session cookie store. Required.
	SessionSecret string `yaml:"session_secret"`

	// LogLevel is the minimum log level: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// PrettyLogs enables human-friendly console logging.
	PrettyLogs bool `yaml:"pretty_logs"`

	// sources tracks where each value came from
	sources map[string]string

	// configFilePath is the path to the config file
	configFilePath string
}

func newDefault() *AppConfig {
	return &AppConfig{
		BindAddress: "0.0.0.0",
		Port:        "8000",
		LogLevel:    "info",
		sources:     make(map[string]string),
	}
}

// Load loads configuration from file and environment variables.
// Environment variables take precedence over file values.
func Load() (*AppConfig, error) {
	cfg := newDefault()

	for _, name := range attributeNames() {
		cfg.sources[name] = "default"
	}

	configPath := os.Getenv("FEEDBACK_CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	cfg.configFilePath = filepath.Join(configPath, ConfigFileName)

	if data, err := os.ReadFile(cfg.configFilePath); err == nil {
		var fileConfig AppConfig
		if err := yaml.Unmarshal(data, &fileConfig); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", cfg.configFilePath, err)
		}
		cfg.applyFileConfig(&fileConfig)
	}

	cfg.applyEnvConfig()

	return cfg, nil
}

func attributeNames() []string {
	return []string{
		"bind_address", "port", "database_url",
		"session_secret", "log_level", "pretty_logs",
	}
}

func (c *AppConfig) applyFileConfig(file *AppConfig) {
	if file.BindAddress != "" {
		c.BindAddress = file.BindAddress
		c.sources["bind_address"] = "file"
	}
	if file.Port != "" {
		c.Port = file.Port
		c.sources["port"] = "file"
	}
	if file.DatabaseURL != "" {
		c.DatabaseURL = file.DatabaseURL
		c.sources["database_url"] = "file"
	}
	if file.SessionSecret != "" {
		c.SessionSecret = file.SessionSecret
		c.sources["session_secret"] = "file"
	}
	if file.LogLevel != "" {
		c.LogLevel = file.LogLevel
		c.sources["log_level"] = "file"
	}
	if file.PrettyLogs {
		c.PrettyLogs = true
		c.sources["pretty_logs"] = "file"
	}
}

func (c *AppConfig) applyEnvConfig() {
	if val := os.Getenv("BIND_ADDRESS"); val != "" {
		c.BindAddress = val
		c.sources["bind_address"] = "environment"
	}
	if val := os.Getenv("PORT"); val != "" {
		c.Port = val
		c.sources["port"] = "environment"
	}
	if val := os.Getenv("DATABASE_URL"); val != "" {
		c.DatabaseURL = val
		c.sources["database_url"] = "environment"
	}
	if val := os.Getenv("FEEDBACK_SESSION_SECRET"); val != "" {
		c.SessionSecret = val
		c.sources["session_secret"] = "environment"
	}
	if val := os.Getenv("FEEDBACK_LOG_LEVEL"); val != "" {
		c.LogLevel = val
		c.sources["log_level"] = "environment"
	}
	if val := os.Getenv("FEEDBACK_PRETTY_LOGS"); val != "" {
		c.PrettyLogs = val == "true" || val == "1"
		c.sources["pretty_logs"] = "environment"
	}
}

// ConfigFilePath returns the path to the config file.
func (c *AppConfig) ConfigFilePath() string {
	return c.configFilePath
}

// Source returns the source of a configuration attribute.
func (c *AppConfig) Source(name string) string {
	if c.sources == nil {
		return "default"
	}
	if s, ok := c.sources[name]; ok {
		return s
	}
	return "default"
}

// Validate validates the configuration.
func (c *AppConfig) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("database_url is required (set DATABASE_URL)")
	}
	if c.SessionSecret == "" {
		return fmt.Errorf("session_secret is required (set FEEDBACK_SESSION_SECRET)")
	}
	if len(c.SessionSecret) < 32 {
		return fmt.Errorf("session_secret must be at least 32 bytes")
	}
	return nil
}

// Addr returns the bind address and port joined for http.Server.
func (c *AppConfig) Addr() string {
	return c.BindAddress + ":" + c.Port
}

// Attribute is one configuration value and where it came from.
type Attribute struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

// Attributes returns all configuration attributes with their values and
// sources. Secrets are masked.
func (c *AppConfig) Attributes() []Attribute {
	return []Attribute{
		{Name: "bind_address", Value: c.BindAddress, Source: c.Source("bind_address")},
		{Name: "port", Value: c.Port, Source: c.Source("port")},
		{Name: "database_url", Value: maskURL(c.DatabaseURL), Source: c.Source("database_url")},
		{Name: "session_secret", Value: mask(c.SessionSecret), Source: c.Source("session_secret")},
		{Name: "log_level", Value: c.LogLevel, Source: c.Source("log_level")},
		{Name: "pretty_logs", Value: strconv.FormatBool(c.PrettyLogs), Source: c.Source("pretty_logs")},
	}
}

func mask(secret string) string {
	if secret == "" {
		return ""
	}
	return "********"
}

// maskURL hides the password in a connection URL's userinfo.
func maskURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.User == nil {
		return raw
	}
	if _, hasPassword := u.User.Password(); hasPassword {
		u.User = url.UserPassword(u.User.Username(), "********")
	}
	return u.String()
}

// FormatText returns a text representation of the configuration
func (c *AppConfig) FormatText() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Config file: %s\n\n", c.configFilePath))
	sb.WriteString(fmt.Sprintf("%-20s %-40s %s\n", "NAME", "VALUE", "SOURCE"))
	sb.WriteString(fmt.Sprintf("%-20s %-40s %s\n", "----", "-----", "------"))

	for _, attr := range c.Attributes() {
		value := attr.Value
		if value == "" {
			value = "(not set)"
		}
		sb.WriteString(fmt.Sprintf("%-20s %-40s %s\n", attr.Name, value, attr.Source))
	}
	return sb.String()
}

// FormatJSON returns a JSON representation of the configuration
func (c *AppConfig) FormatJSON() (string, error) {
	result := map[string]interface{}{
		"config_file": c.configFilePath,
		"attributes":  c.Attributes(),
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
