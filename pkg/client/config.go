package client

import (
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config carries the connection settings for the tracker backend.
type Config struct {
	ServerURL string
	Timeout   time.Duration
}

// LoadConfig resolves settings from a .babytrack config file (current
// directory or home), BABYTRACK_* environment variables, and defaults.
func LoadConfig() (*Config, error) {
	viper.SetDefault("server", "http://localhost:8080")
	viper.SetDefault("timeout", "10s")
	viper.SetConfigName(".babytrack") // .yaml is implicit
	viper.SetEnvPrefix("BABYTRACK")
	viper.AutomaticEnv()

	viper.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		viper.AddConfigPath(home)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	timeout, err := time.ParseDuration(viper.GetString("timeout"))
	if err != nil {
		timeout = 10 * time.Second
	}

	return &Config{
		ServerURL: viper.GetString("server"),
		Timeout:   timeout,
	}, nil
}
