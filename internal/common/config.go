package common

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	Jira     JiraConfig     `toml:"jira"`
	Browser  BrowserConfig  `toml:"browser"`
	Timeouts TimeoutsConfig `toml:"timeouts"`
	Logging  LoggingConfig  `toml:"logging"`
}

type JiraConfig struct {
	BaseURL  string `toml:"base_url"`
	Username string `toml:"username"`
	Password string `toml:"password"`
	Project  string `toml:"project"`
}

type BrowserConfig struct {
	Backend         string `toml:"backend"`
	Headless        bool   `toml:"headless"`
	ExecPath        string `toml:"exec_path"`
	RemoteDebugPort int    `toml:"remote_debug_port"`
	// LaunchTimeout bounds browser start-up, in seconds
	LaunchTimeout int `toml:"launch_timeout"`
}

// TimeoutsConfig holds per-call wait timeouts in seconds
type TimeoutsConfig struct {
	Flag    int `toml:"flag"`
	Menu    int `toml:"menu"`
	Loading int `toml:"loading"`
	Login   int `toml:"login"`
	Dialog  int `toml:"dialog"`
	List    int `toml:"list"`
	Settle  int `toml:"settle"`
}

type LoggingConfig struct {
	Level      string `toml:"level"`
	Format     string `toml:"format"`
	Output     string `toml:"output"`
	MaxSize    int    `toml:"max_size"`
	MaxBackups int    `toml:"max_backups"`
}

const (
	BackendPlaywright = "playwright"
	BackendChromedp   = "chromedp"
)

func DefaultConfig() *Config {
	return &Config{
		Jira: JiraConfig{
			BaseURL: "http://localhost:8080",
			Project: "DEMO",
		},
		Browser: BrowserConfig{
			Backend:       BackendPlaywright,
			Headless:      true,
			LaunchTimeout: 60,
		},
		Timeouts: TimeoutsConfig{
			Flag:    10,
			Menu:    3,
			Loading: 60,
			Login:   30,
			Dialog:  10,
			List:    10,
			Settle:  5,
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "text",
			Output:     "console",
			MaxSize:    100,
			MaxBackups: 3,
		},
	}
}

func LoadConfig(configFile string) (*Config, error) {
	config := DefaultConfig()

	if configFile == "" {
		// Auto-detect config file
		execPath, _ := os.Executable()
		execDir := filepath.Dir(execPath)
		execName := filepath.Base(execPath)
		execName = execName[:len(execName)-len(filepath.Ext(execName))]

		possiblePaths := []string{
			filepath.Join(execDir, execName+".toml"),
			filepath.Join(execDir, "config.toml"),
			"config.toml",
		}

		for _, path := range possiblePaths {
			if _, err := os.Stat(path); err == nil {
				configFile = path
				break
			}
		}
	}

	if configFile != "" {
		data, err := os.ReadFile(configFile)
		if err != nil {
			return nil, NewConfigurationError("read_failed", "failed to read config file").
				WithContext("path", configFile).
				WithCause(err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, NewConfigurationError("parse_failed", "failed to parse config file").
				WithContext("path", configFile).
				WithCause(err)
		}
	}

	applyEnvOverrides(config)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

func applyEnvOverrides(config *Config) {
	if baseURL := os.Getenv("JIRA_BASE_URL"); baseURL != "" {
		config.Jira.BaseURL = baseURL
	}
	if username := os.Getenv("JIRA_USERNAME"); username != "" {
		config.Jira.Username = username
	}
	if password := os.Getenv("JIRA_PASSWORD"); password != "" {
		config.Jira.Password = password
	}
	if project := os.Getenv("JIRA_PROJECT"); project != "" {
		config.Jira.Project = project
	}

	if backend := os.Getenv("BROWSER_BACKEND"); backend != "" {
		config.Browser.Backend = backend
	}
	if headless := os.Getenv("BROWSER_HEADLESS"); headless != "" {
		if v, err := strconv.ParseBool(headless); err == nil {
			config.Browser.Headless = v
		}
	}

	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		config.Logging.Level = logLevel
	}
	if logOutput := os.Getenv("LOG_OUTPUT"); logOutput != "" {
		config.Logging.Output = logOutput
	}
}

func (c *Config) Validate() error {
	if c.Jira.BaseURL == "" {
		return NewValidationError("base_url", "jira base_url is required")
	}
	c.Jira.BaseURL = strings.TrimRight(c.Jira.BaseURL, "/")

	switch c.Browser.Backend {
	case "":
		c.Browser.Backend = BackendPlaywright
	case BackendPlaywright, BackendChromedp:
	default:
		return NewValidationError("backend", "unknown browser backend").
			WithContext("backend", c.Browser.Backend)
	}

	if c.Browser.LaunchTimeout <= 0 {
		c.Browser.LaunchTimeout = 60
	}

	t := c.Timeouts
	// 0 means "no timeout" to playwright, so every wait needs a positive bound
	for name, v := range map[string]int{
		"flag": t.Flag, "menu": t.Menu, "loading": t.Loading,
		"login": t.Login, "dialog": t.Dialog, "list": t.List,
	} {
		if v <= 0 {
			return NewValidationError("timeout", "wait timeouts must be positive").
				WithContext("timeout", name)
		}
	}
	if t.Settle < 0 {
		return NewValidationError("timeout", "settle delay must not be negative").
			WithContext("timeout", "settle")
	}

	validLogLevels := []string{"debug", "info", "warn", "error", "fatal", "panic"}
	validLevel := false
	for _, level := range validLogLevels {
		if c.Logging.Level == level {
			validLevel = true
			break
		}
	}
	if !validLevel {
		return NewValidationError("log_level", fmt.Sprintf("invalid log level: %s", c.Logging.Level))
	}

	validOutputs := []string{"console", "file", "both"}
	validOutput := false
	for _, output := range validOutputs {
		if c.Logging.Output == output {
			validOutput = true
			break
		}
	}
	if !validOutput {
		return NewValidationError("log_output", fmt.Sprintf("invalid log output: %s", c.Logging.Output))
	}

	return nil
}

// URL joins path onto the configured Jira base URL
func (c *Config) URL(path string) string {
	if path == "" {
		return c.Jira.BaseURL
	}
	return c.Jira.BaseURL + "/" + strings.TrimLeft(path, "/")
}
