package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"github.com/user/cloud-balance-monitor/internal/provider"
)

type Config struct {
	Accounts []provider.Account `yaml:"accounts" mapstructure:"accounts"`
	Notify   Notify             `yaml:"notify" mapstructure:"notify"`
	Settings Settings           `yaml:"settings" mapstructure:"settings"`
}

type Notify struct {
	Webhook string `yaml:"webhook" mapstructure:"webhook"`
	Secret  string `yaml:"secret" mapstructure:"secret"`
	Title   string `yaml:"title" mapstructure:"title"`
}

type Settings struct {
	Timeout  time.Duration `yaml:"timeout" mapstructure:"timeout"`
	APIPort  int           `yaml:"api_port" mapstructure:"api_port"`
	CacheTTL time.Duration `yaml:"cache_ttl" mapstructure:"cache_ttl"`
	LogLevel string        `yaml:"log_level" mapstructure:"log_level"`
}

func Load(configFile string) (*Config, error) {
	v := viper.New()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "balance-mon"))
		}
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	cfg := DefaultConfig()

	decodeHook := mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.TextUnmarshallerHookFunc(),
	)

	if err := v.Unmarshal(cfg, viper.DecodeHook(decodeHook)); err != nil {
		return nil, err
	}

	// Credential values and the webhook secret may reference environment
	// variables (e.g. sk: ${QINIU_SK}).
	for i := range cfg.Accounts {
		for key, value := range cfg.Accounts[i].Credentials {
			cfg.Accounts[i].Credentials[key] = ExpandEnvVars(value)
		}
	}
	cfg.Notify.Webhook = ExpandEnvVars(cfg.Notify.Webhook)
	cfg.Notify.Secret = ExpandEnvVars(cfg.Notify.Secret)

	return cfg, nil
}

func DefaultConfig() *Config {
	return &Config{
		Settings: Settings{
			Timeout:  10 * time.Second,
			APIPort:  3456,
			CacheTTL: 5 * time.Minute,
			LogLevel: "info",
		},
	}
}

func ExpandEnvVars(s string) string {
	return os.ExpandEnv(s)
}
