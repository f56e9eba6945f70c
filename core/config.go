package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Env      string
	Debug    bool
	TestMode bool
	AppName  string
	Build    string

	// remote API
	APIBaseURL  string
	HTTPTimeout time.Duration

	// query cache freshness window
	CacheTTL time.Duration

	// dashboard polling; system health is the most volatile,
	// subscription data the least.
	HealthPollInterval       time.Duration
	DashboardPollInterval    time.Duration
	SubscriptionPollInterval time.Duration

	RollbarToken string
}

// NewConfig loads the configuration from the environment.
// An optional `config/.env.<env>` file is loaded first if it exists.
func NewConfig() *Config {
	conf := viper.New()

	// defaults
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("debug", true)
	conf.SetDefault("appName", "Shule")
	conf.SetDefault("build", "dev")
	conf.SetDefault("apiBaseUrl", "http://localhost:8000/api")
	conf.SetDefault("httpTimeout", 30*time.Second)
	conf.SetDefault("cacheTtl", 1*time.Minute)
	conf.SetDefault("healthPollInterval", 30*time.Second)
	conf.SetDefault("dashboardPollInterval", 2*time.Minute)
	conf.SetDefault("subscriptionPollInterval", 5*time.Minute)
	conf.SetDefault("rollbarToken", "")

	env := os.Getenv("ENV") // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		conf.SetDefault("testMode", true)
	}
	conf.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	if wd, err := os.Getwd(); err == nil {
		dotEnvPath := filepath.Join(wd, "config", ".env."+strings.ToLower(env))
		if _, err := os.Stat(dotEnvPath); err == nil {
			if err := godotenv.Load(dotEnvPath); err != nil {
				log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
			}
		}
	}
	conf.AutomaticEnv()

	return &Config{
		Env:                      env,
		Debug:                    conf.GetBool("debug"),
		TestMode:                 conf.GetBool("testMode"),
		AppName:                  conf.GetString("appName"),
		Build:                    conf.GetString("build"),
		APIBaseURL:               strings.TrimRight(conf.GetString("apiBaseUrl"), "/"),
		HTTPTimeout:              conf.GetDuration("httpTimeout"),
		CacheTTL:                 conf.GetDuration("cacheTtl"),
		HealthPollInterval:       conf.GetDuration("healthPollInterval"),
		DashboardPollInterval:    conf.GetDuration("dashboardPollInterval"),
		SubscriptionPollInterval: conf.GetDuration("subscriptionPollInterval"),
		RollbarToken:             conf.GetString("rollbarToken"),
	}
}
