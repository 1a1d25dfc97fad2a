package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config 儲存 HTTP API 及資料來源的執行設定。
type Config struct {
	HTTP HTTPConfig `yaml:"http"`
	Feed FeedConfig `yaml:"feed"`
	Sync SyncConfig `yaml:"sync"`
	CORS CORSConfig `yaml:"cors"`
}

type HTTPConfig struct {
	Addr string `yaml:"addr"`
}

type FeedConfig struct {
	BaseURL      string        `yaml:"base_url"`
	Timeout      time.Duration `yaml:"timeout"`
	UseSynthetic bool          `yaml:"use_synthetic"`
}

type SyncConfig struct {
	Interval time.Duration `yaml:"interval"`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// LoadFromFile 從 YAML 組態檔載入設定。
func LoadFromFile(path string) (Config, error) {
	// 嘗試載入 .env 檔案（如果存在）
	_ = godotenv.Load()

	var cfg Config
	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config yaml: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	cfg = applyDefaults(cfg)
	cfg = applyEnv(cfg)
	return cfg, nil
}

func applyDefaults(cfg Config) Config {
	if cfg.HTTP.Addr == "" {
		cfg.HTTP.Addr = ":8080"
	}
	if cfg.Feed.Timeout == 0 {
		cfg.Feed.Timeout = 10 * time.Second
	}
	if cfg.Sync.Interval == 0 {
		cfg.Sync.Interval = 30 * time.Second
	}
	if len(cfg.CORS.AllowedOrigins) == 0 {
		cfg.CORS.AllowedOrigins = []string{"*"}
	}
	return cfg
}

func applyEnv(cfg Config) Config {
	if val := os.Getenv("HTTP_ADDR"); val != "" {
		cfg.HTTP.Addr = val
	}
	if val := os.Getenv("PORT"); val != "" {
		cfg.HTTP.Addr = ":" + val
	}
	if val := os.Getenv("FEED_BASE_URL"); val != "" {
		cfg.Feed.BaseURL = val
	}
	if val := os.Getenv("FEED_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Feed.Timeout = d
		}
	}
	if val := os.Getenv("USE_SYNTHETIC"); val != "" {
		cfg.Feed.UseSynthetic = (val == "true")
	}
	if val := os.Getenv("SYNC_INTERVAL"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Sync.Interval = d
		}
	}
	if val := os.Getenv("CORS_ALLOWED_ORIGINS"); val != "" {
		cfg.CORS.AllowedOrigins = strings.Split(val, ",")
	}
	return cfg
}
