// Package config loads the backend configuration from config.yaml and
// GOALBOOK_* environment variables, with the environment taking precedence.
package config

import (
	"strings"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Address          string   `mapstructure:"address"`
	Mode             string   `mapstructure:"mode"`
	CORSAllowOrigins []string `mapstructure:"cors_allow_origins"`
	EnablePprof      bool     `mapstructure:"enable_pprof"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type AuthConfig struct {
	JWTSecret     string `mapstructure:"jwt_secret"`
	SessionHours  int    `mapstructure:"session_hours"`
	BcryptCost    int    `mapstructure:"bcrypt_cost"`
	SecureCookies bool   `mapstructure:"secure_cookies"`
}

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Auth     AuthConfig     `mapstructure:"auth"`
}

// Load reads the configuration file at path. A missing file is not an
// error; the defaults and environment variables still apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.cors_allow_origins", []string{})
	v.SetDefault("server.enable_pprof", false)
	v.SetDefault("database.path", "data/goalbook.db")
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.session_hours", 24)
	v.SetDefault("auth.bcrypt_cost", 10)
	v.SetDefault("auth.secure_cookies", false)

	v.SetEnvPrefix("GOALBOOK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(*viper.ConfigFileNotFoundError); !ok {
			// viper wraps fs.ErrNotExist differently depending on
			// whether the file was set explicitly
			if !strings.Contains(err.Error(), "no such file") {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
