package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Store backends.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Config holds the CLI configuration.
type Config struct {
	Log   LogConfig   `mapstructure:"log"`
	HTTP  HTTPConfig  `mapstructure:"http"`
	Store StoreConfig `mapstructure:"store"`
	Redis RedisConfig `mapstructure:"redis"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type HTTPConfig struct {
	Addr string `mapstructure:"addr"`
}

type StoreConfig struct {
	Backend string `mapstructure:"backend"`
}

type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
	Prefix   string        `mapstructure:"prefix"`
}

// Load resolves the configuration from defaults, an optional file, DFA_* environment
// variables and the given flags, in increasing order of precedence.
// Flags are bound by name with dashes replaced by dots (e.g. "redis-addr" -> "redis.addr").
func Load(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("DFA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if flags != nil {
		var bindErr error
		flags.VisitAll(func(f *pflag.Flag) {
			key := strings.ReplaceAll(f.Name, "-", ".")
			if !knownKeys[key] {
				return
			}
			if err := v.BindPFlag(key, f); err != nil && bindErr == nil {
				bindErr = err
			}
		})
		if bindErr != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", bindErr)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("store.backend", BackendMemory)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", time.Duration(0))
	v.SetDefault("redis.prefix", "dfa:report:")
}

var knownKeys = map[string]bool{
	"log.level":      true,
	"http.addr":      true,
	"store.backend":  true,
	"redis.addr":     true,
	"redis.password": true,
	"redis.db":       true,
	"redis.ttl":      true,
	"redis.prefix":   true,
}

// Validate checks the resolved configuration.
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case BackendMemory, BackendRedis:
	default:
		return fmt.Errorf("store.backend must be %q or %q, got %q", BackendMemory, BackendRedis, c.Store.Backend)
	}
	if c.Store.Backend == BackendRedis && c.Redis.Addr == "" {
		return fmt.Errorf("redis.addr is required when store.backend is %q", BackendRedis)
	}
	if c.Redis.TTL < 0 {
		return fmt.Errorf("redis.ttl must not be negative")
	}
	return nil
}
