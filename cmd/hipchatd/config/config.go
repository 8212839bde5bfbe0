package config

import (
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Environ returns the settings from the environment.
func Environ() (*Config, error) {
	cfg := Config{}
	err := envconfig.Process("", &cfg)
	defaults(&cfg)

	return &cfg, err
}

func defaults(c *Config) {
	if c.Database.Driver == "" {
		c.Database.Driver = "sqlite"
	}
	if c.Database.Config == "" {
		c.Database.Config = "hipchat-plugin.sqlite"
	}
	if c.Notifications.Provider == "" {
		c.Notifications.Provider = "hipchat"
	}
	if c.Notifications.Server == "" {
		c.Notifications.Server = "https://api.hipchat.com"
	}
	if c.BuildServerURL != "" && !strings.HasSuffix(c.BuildServerURL, "/") {
		c.BuildServerURL = c.BuildServerURL + "/"
	}
}

// String returns the configuration in string format.
func (c *Config) String() string {
	out, _ := yaml.Marshal(c)
	return string(out)
}

type Config struct {
	Debug           bool `envconfig:"DEBUG"`
	Logging         Logging
	Host            string `envconfig:"HOST"`
	BuildServerURL  string `envconfig:"BUILD_SERVER_URL"`
	Database        Database
	Notifications   Notifications
	Github          Github
	PrintAdminToken bool   `envconfig:"PRINT_ADMIN_TOKEN"`
	AdminToken      string `envconfig:"ADMIN_TOKEN"`
}

type Database struct {
	Driver        string `envconfig:"DATABASE_DRIVER"`
	Config        string `envconfig:"DATABASE_CONFIG"`
	EncryptionKey string `envconfig:"DATABASE_ENCRYPTION_KEY" yaml:"-"`
}

// Logging provides the logging configuration.
type Logging struct {
	Debug  bool `envconfig:"DEBUG"`
	Trace  bool `envconfig:"TRACE"`
	Color  bool `envconfig:"LOGS_COLOR"`
	Pretty bool `envconfig:"LOGS_PRETTY"`
	Text   bool `envconfig:"LOGS_TEXT"`
}

type Notifications struct {
	Provider       string `envconfig:"NOTIFICATIONS_PROVIDER"`
	Token          string `envconfig:"NOTIFICATIONS_TOKEN" yaml:"-"`
	DefaultChannel string `envconfig:"NOTIFICATIONS_DEFAULT_CHANNEL"`
	ChannelMapping string `envconfig:"NOTIFICATIONS_CHANNEL_MAPPING"`
	// Server is the base url of a self hosted HipChat server
	Server string `envconfig:"NOTIFICATIONS_SERVER"`
}

type Github struct {
	Token   string `envconfig:"GITHUB_TOKEN" yaml:"-"`
	BaseURL string `envconfig:"GITHUB_URL"`
}

func (c *Config) IsGithub() bool {
	return c.Github.Token != ""
}
