package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

type Config struct {
	AppEnv        string
	BackendBase   string
	BotToken      string
	PrefsPath     string
	OpsAddr       string
	RedisAddr     string
	RedisPass     string
	RedisDB       int
	HTTPTimeout   time.Duration
	CacheTTL      time.Duration
	EnrichWorkers int
}

// fileConfig is the optional YAML form, pointed at by FLATLY_CONFIG.
// Environment variables override whatever the file sets.
type fileConfig struct {
	AppEnv             string `yaml:"app_env"`
	BackendBase        string `yaml:"backend_base"`
	BotToken           string `yaml:"bot_token"`
	PrefsPath          string `yaml:"prefs_path"`
	OpsAddr            string `yaml:"ops_addr"`
	RedisAddr          string `yaml:"redis_addr"`
	RedisPassword      string `yaml:"redis_password"`
	RedisDB            int    `yaml:"redis_db"`
	HTTPTimeoutSeconds int    `yaml:"http_timeout_seconds"`
	CacheTTLSeconds    int    `yaml:"cache_ttl_seconds"`
	EnrichWorkers      int    `yaml:"enrich_workers"`
}

func Load() Config {
	c := Config{
		AppEnv:        "prod",
		BackendBase:   "http://3.67.172.45:8080",
		PrefsPath:     "",
		HTTPTimeout:   20 * time.Second,
		CacheTTL:      15 * time.Minute,
		EnrichWorkers: 4,
	}

	if path := os.Getenv("FLATLY_CONFIG"); path != "" {
		applyFile(&c, path)
	}

	c.AppEnv = env("APP_ENV", c.AppEnv)
	c.BackendBase = env("FLATLY_BACKEND_URL", c.BackendBase)
	c.BotToken = env("TELEGRAM_BOT_TOKEN", c.BotToken)
	c.PrefsPath = env("FLATLY_PREFS_PATH", c.PrefsPath)
	c.OpsAddr = env("OPS_ADDR", c.OpsAddr)
	c.RedisAddr = env("REDIS_ADDR", c.RedisAddr)
	c.RedisPass = env("REDIS_PASSWORD", c.RedisPass)
	c.RedisDB = atoi("REDIS_DB", c.RedisDB)
	c.HTTPTimeout = time.Duration(atoi("HTTP_TIMEOUT_SECONDS", int(c.HTTPTimeout.Seconds()))) * time.Second
	c.CacheTTL = time.Duration(atoi("CACHE_TTL_SECONDS", int(c.CacheTTL.Seconds()))) * time.Second
	c.EnrichWorkers = atoi("ENRICH_WORKERS", c.EnrichWorkers)

	return c
}

func applyFile(c *Config, path string) {
	b, err := os.ReadFile(path)
	if err != nil {
		log.Warn().Str("path", path).Err(err).Msg("config file unreadable, using defaults")
		return
	}
	var fc fileConfig
	if err := yaml.Unmarshal(b, &fc); err != nil {
		log.Warn().Str("path", path).Err(err).Msg("config file unparsable, using defaults")
		return
	}
	if fc.AppEnv != "" {
		c.AppEnv = fc.AppEnv
	}
	if fc.BackendBase != "" {
		c.BackendBase = fc.BackendBase
	}
	if fc.BotToken != "" {
		c.BotToken = fc.BotToken
	}
	if fc.PrefsPath != "" {
		c.PrefsPath = fc.PrefsPath
	}
	if fc.OpsAddr != "" {
		c.OpsAddr = fc.OpsAddr
	}
	if fc.RedisAddr != "" {
		c.RedisAddr = fc.RedisAddr
	}
	if fc.RedisPassword != "" {
		c.RedisPass = fc.RedisPassword
	}
	if fc.RedisDB != 0 {
		c.RedisDB = fc.RedisDB
	}
	if fc.HTTPTimeoutSeconds > 0 {
		c.HTTPTimeout = time.Duration(fc.HTTPTimeoutSeconds) * time.Second
	}
	if fc.CacheTTLSeconds > 0 {
		c.CacheTTL = time.Duration(fc.CacheTTLSeconds) * time.Second
	}
	if fc.EnrichWorkers > 0 {
		c.EnrichWorkers = fc.EnrichWorkers
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func atoi(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
