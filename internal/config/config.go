package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/calyx-ui/calyx/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "calyx.toml"

	// DefaultPort is the default development server port.
	DefaultPort = 3000

	// DefaultHost is the default development server host.
	DefaultHost = "localhost"

	// DefaultOutput is the default render output directory.
	DefaultOutput = "dist"
)

// Config represents the complete calyx.toml configuration.
type Config struct {
	// Name is the project name.
	Name string `toml:"name,omitempty"`

	// Version is the project version.
	Version string `toml:"version,omitempty"`

	// Server contains development server configuration.
	Server ServerConfig `toml:"server,omitempty"`

	// Static contains static file serving configuration.
	Static StaticConfig `toml:"static,omitempty"`

	// Build contains render output configuration.
	Build BuildConfig `toml:"build,omitempty"`

	// Deploy contains static deployment configuration.
	Deploy DeployConfig `toml:"deploy,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ServerConfig contains development server settings.
type ServerConfig struct {
	// Host is the host to bind to.
	Host string `toml:"host,omitempty"`

	// Port is the port to listen on.
	Port int `toml:"port,omitempty"`

	// Dev enables development diagnostics and live reload.
	Dev bool `toml:"dev,omitempty"`

	// Compat enables legacy-syntax diagnostics on top of Dev.
	Compat bool `toml:"compat,omitempty"`

	// Metrics exposes the /metrics endpoint.
	Metrics bool `toml:"metrics,omitempty"`

	// Tracing enables request tracing spans.
	Tracing bool `toml:"tracing,omitempty"`
}

// StaticConfig contains static file serving configuration.
type StaticConfig struct {
	// Dir is the directory containing static files.
	Dir string `toml:"dir,omitempty"`

	// Prefix is the URL prefix for static files (default: "/static/").
	Prefix string `toml:"prefix,omitempty"`
}

// BuildConfig contains render output settings.
type BuildConfig struct {
	// Output is the output directory for rendered pages.
	Output string `toml:"output,omitempty"`

	// Pretty enables indented markup output.
	Pretty bool `toml:"pretty,omitempty"`
}

// DeployConfig contains static deployment settings.
type DeployConfig struct {
	// Bucket is the object storage bucket to publish to.
	Bucket string `toml:"bucket,omitempty"`

	// Prefix is the key prefix inside the bucket.
	Prefix string `toml:"prefix,omitempty"`

	// Region is the bucket's region.
	Region string `toml:"region,omitempty"`

	// Prune removes remote objects that no longer exist locally.
	Prune bool `toml:"prune,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Version: "0.1.0",
		Server: ServerConfig{
			Host: DefaultHost,
			Port: DefaultPort,
			Dev:  true,
		},
		Static: StaticConfig{
			Dir:    "public",
			Prefix: "/static/",
		},
		Build: BuildConfig{
			Output: DefaultOutput,
		},
	}
}

// Load reads configuration from the specified directory.
// It looks for calyx.toml in the directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("C080").
				WithDetail("No calyx.toml found in " + filepath.Dir(path)).
				WithSuggestion("Create calyx.toml in the project root")
		}
		return nil, errors.New("C060").Wrap(err)
	}

	cfg := New()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("C060").
			WithDetail("Failed to parse calyx.toml: " + err.Error()).
			WithSuggestion("Check that calyx.toml is valid TOML")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	return cfg, nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return errors.New("C060").Wrap(err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return errors.New("C060").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// Addr returns the server's listen address.
func (c *Config) Addr() string {
	host := c.Server.Host
	if host == "" {
		host = DefaultHost
	}
	return host + ":" + strconv.Itoa(c.Server.Port)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Static.Dir == "" {
		c.Static.Dir = "public"
	}
	if c.Static.Prefix == "" {
		c.Static.Prefix = "/static/"
	}
	if c.Build.Output == "" {
		c.Build.Output = DefaultOutput
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return errors.New("C062").
			WithDetail("Port must be between 0 and 65535")
	}
	if c.Name == "" {
		return errors.New("C061").
			WithDetail("The project name is missing").
			WithSuggestion(`Add name = "my-app" to calyx.toml`)
	}
	return nil
}
