package config

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type HTTPConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type SecurityConfig struct {
	// PasswordDigest selects the digest for stored passwords.
	// "sha256" matches the frontend's existing mock accounts;
	// "argon2id" is the production-intended upgrade.
	PasswordDigest string
}

type GoogleConfig struct {
	ClientID      string
	Issuers       []string
	JWKSURL       string
	VerifyTimeout time.Duration
}

type JobsConfig struct {
	Enabled       bool
	StatsSchedule string
}

type AppConfig struct {
	Environment      string
	HTTP             HTTPConfig
	Security         SecurityConfig
	Google           GoogleConfig
	Jobs             JobsConfig
	AllowCORSOrigins []string
}

func Load() (*AppConfig, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("../config")

	v.SetEnvPrefix("BRANDSCOPE")
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	var cfg AppConfig
	if err := v.Unmarshal(&cfg, func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "mapstructure"
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)
	}); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment", "development")

	v.SetDefault("http.host", "0.0.0.0")
	v.SetDefault("http.port", 8000)
	v.SetDefault("http.readtimeout", "10s")
	v.SetDefault("http.writetimeout", "15s")
	v.SetDefault("http.idletimeout", "60s")

	v.SetDefault("security.passworddigest", "sha256")

	v.SetDefault("google.issuers", "https://accounts.google.com,accounts.google.com")
	v.SetDefault("google.jwksurl", "https://www.googleapis.com/oauth2/v3/certs")
	v.SetDefault("google.verifytimeout", "5s")

	v.SetDefault("jobs.enabled", true)
	v.SetDefault("jobs.statsschedule", "0 * * * * *") // every minute

	// Vite dev server origin.
	v.SetDefault("allowcorsorigins", "http://localhost:5173")
}
