package config

import (
	"cmp"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/goccy/go-json"
)

var (
	instance   *Config
	once       sync.Once
	configPath string
)

const (
	DownloaderHTTP = "http"
	DownloaderGrab = "grab"
)

type Config struct {
	LogLevel string `json:"log_level,omitempty"`

	// Token is the GGn API key. The GGN_TOKEN environment variable is used
	// when the file value is empty.
	Token string `json:"token,omitempty"`

	// Categories are platform labels fed to the search filter, one scan each.
	Categories []string `json:"categories,omitempty"`

	WriteLocation string `json:"write_location,omitempty"`
	OrderBy       string `json:"order_by,omitempty"`
	OrderWay      string `json:"order_way,omitempty"`
	DryRun        bool   `json:"dry_run,omitempty"`
	Downloader    string `json:"downloader,omitempty"`
	RateLimit     string `json:"rate_limit,omitempty"` // e.g. 5/second; empty uses the site default
	Proxy         string `json:"proxy,omitempty"`

	Path string `json:"-"` // folder holding config.json and logs
}

func (c *Config) JsonFile() string {
	return filepath.Join(c.Path, "config.json")
}

func (c *Config) loadConfig() error {
	if configPath == "" {
		return fmt.Errorf("config path not set")
	}
	c.Path = configPath
	file, err := os.ReadFile(c.JsonFile())
	if err != nil {
		if os.IsNotExist(err) {
			// No config file is fine; flags and env carry the run.
			return c.validate()
		}
		return err
	}
	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("error unmarshaling config: %w", err)
	}
	return c.validate()
}

func (c *Config) validate() error {
	c.LogLevel = cmp.Or(c.LogLevel, "info")
	c.WriteLocation = cmp.Or(c.WriteLocation, "./")
	c.OrderBy = cmp.Or(c.OrderBy, "groupname")
	c.OrderWay = cmp.Or(c.OrderWay, "asc")
	c.Downloader = cmp.Or(c.Downloader, DownloaderHTTP)
	if c.Token == "" {
		c.Token = strings.TrimSpace(os.Getenv("GGN_TOKEN"))
	}
	switch c.Downloader {
	case DownloaderHTTP, DownloaderGrab:
	default:
		return fmt.Errorf("unknown downloader %q", c.Downloader)
	}
	return nil
}

func SetConfigPath(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("error getting absolute path: %w", err)
	}
	configPath = absPath
	return nil
}

func Get() *Config {
	once.Do(func() {
		instance = &Config{}
		if err := instance.loadConfig(); err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			os.Exit(1)
		}
	})
	return instance
}
