// Package configpkg provides parsing functionality for environment variables.
package configpkg

import (
	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
//
// The values are read by viper from a config file or environment variables.
type Config struct {
	ServerAddress string `mapstructure:"SERVER_ADDRESS"`
	Environment   string `mapstructure:"GO_ENV"`
	IDStrategy    string `mapstructure:"ID_STRATEGY"`
	SeedDemo      bool   `mapstructure:"SEED_DEMO"`
}

// Development reports whether the app runs in the development environment.
func (c Config) Development() bool {
	return c.Environment == "development"
}

// Load reads configuration from the app.env file in path, overridden by
// environment variables.
func Load(path string) (Config, error) {
	var c Config

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:8080")
	v.SetDefault("GO_ENV", "production")
	v.SetDefault("ID_STRATEGY", "uuid")
	v.SetDefault("SEED_DEMO", false)

	v.AutomaticEnv()

	err := v.ReadInConfig()
	if err != nil {
		return c, err
	}

	err = v.Unmarshal(&c)
	if err != nil {
		return c, err
	}

	return c, nil
}
