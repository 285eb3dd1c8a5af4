package config

import (
	"fmt"
	"time"
)

// Config holds the console service configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Upstream UpstreamConfig `mapstructure:"upstream"`
	Session  SessionConfig  `mapstructure:"session"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
}

func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// UpstreamConfig points at the external risk-scoring backend. All scoring,
// trust computation and persistence happen there.
type UpstreamConfig struct {
	BaseURL string `mapstructure:"base_url"`
	Timeout int    `mapstructure:"timeout"` // in seconds
}

func (c *UpstreamConfig) TimeoutDuration() time.Duration {
	if c.Timeout <= 0 {
		return 15 * time.Second
	}
	return time.Duration(c.Timeout) * time.Second
}

// SessionConfig controls server-side session storage. Store is "memory"
// (go-cache) or "redis".
type SessionConfig struct {
	Store        string      `mapstructure:"store"`
	TTL          int         `mapstructure:"ttl"` // in minutes, cap when token exp is absent
	CookieSecure bool        `mapstructure:"cookie_secure"`
	Redis        RedisConfig `mapstructure:"redis"`
}

func (c *SessionConfig) TTLDuration() time.Duration {
	if c.TTL <= 0 {
		return 60 * time.Minute
	}
	return time.Duration(c.TTL) * time.Minute
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// CacheConfig bounds the short-lived cache in front of the admin analytics
// endpoints, which are expensive aggregations upstream.
type CacheConfig struct {
	AnalyticsTTL int `mapstructure:"analytics_ttl"` // in seconds
}

func (c *CacheConfig) AnalyticsTTLDuration() time.Duration {
	if c.AnalyticsTTL <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.AnalyticsTTL) * time.Second
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Validate checks for essential configuration values.
func (c *Config) Validate() error {
	if c.Upstream.BaseURL == "" {
		return fmt.Errorf("upstream.base_url is required")
	}
	switch c.Session.Store {
	case "memory", "redis":
	default:
		return fmt.Errorf("session.store must be \"memory\" or \"redis\", got %q", c.Session.Store)
	}
	if c.Session.Store == "redis" && c.Session.Redis.Addr == "" {
		return fmt.Errorf("session.redis.addr is required when session.store is redis")
	}
	return nil
}
