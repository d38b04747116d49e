package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

type Server struct {
	Port              string `json:"port"`
	RequestTimeoutSec int    `json:"request_timeout_sec"`
}

type Log struct {
	Level  string `json:"level"`
	Pretty bool   `json:"pretty"`
}

// CoinLore is the ticker price feed.
type CoinLore struct {
	Endpoint string `json:"endpoint"`
}

// News is the upstream news feed the news proxy forwards to.
type News struct {
	Endpoint string `json:"endpoint"`
	APIKey   string `json:"api_key"`
}

// Model is the upstream sentiment classification model the sentiment
// proxy forwards to.
type Model struct {
	Endpoint string `json:"endpoint"`
	APIKey   string `json:"api_key"`
}

// Sentiment configures the endpoints the sentiment provider itself calls.
// They default to this service's own proxy routes so upstream credentials
// stay in one place; point them elsewhere to bypass the proxies.
type Sentiment struct {
	NewsURL     string `json:"news_url"`
	ClassifyURL string `json:"classify_url"`
}

type ActivityLog struct {
	Path string `json:"path"`
}

type Config struct {
	Server      Server      `json:"server"`
	Log         Log         `json:"log"`
	CoinLore    CoinLore    `json:"coinlore"`
	News        News        `json:"news"`
	Model       Model       `json:"model"`
	Sentiment   Sentiment   `json:"sentiment"`
	ActivityLog ActivityLog `json:"activity_log"`
}

func Default() Config {
	return Config{
		Server:      Server{Port: "8080", RequestTimeoutSec: 15},
		Log:         Log{Level: "info", Pretty: false},
		CoinLore:    CoinLore{Endpoint: "https://api.coinlore.net/api/tickers/"},
		News:        News{Endpoint: "https://cryptopanic.com/api/v1/posts/"},
		Model:       Model{Endpoint: "https://api-inference.huggingface.co/models/distilbert-base-uncased-finetuned-sst-2-english"},
		ActivityLog: ActivityLog{Path: "logs.json"},
	}
}

// Load reads JSON config from path. If path is empty or the file does not
// exist, it returns defaults. Environment variables override select fields
// for secrecy.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		if _, err := os.Stat("config.json"); err == nil {
			path = "config.json"
		}
	}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err == nil {
			if err := json.Unmarshal(b, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config: %w", err)
			}
		}
	}
	applyEnv(&cfg)

	// The sentiment provider talks to our own proxy routes unless
	// configured otherwise.
	base := "http://localhost:" + cfg.Server.Port
	if cfg.Sentiment.NewsURL == "" {
		cfg.Sentiment.NewsURL = base + "/api/news"
	}
	if cfg.Sentiment.ClassifyURL == "" {
		cfg.Sentiment.ClassifyURL = base + "/api/sentiment"
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Port = v
	}
	if v := os.Getenv("REQUEST_TIMEOUT_SEC"); v != "" {
		var x int
		fmt.Sscanf(v, "%d", &x)
		if x > 0 {
			cfg.Server.RequestTimeoutSec = x
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_PRETTY"); v != "" {
		cfg.Log.Pretty = parseBool(v, cfg.Log.Pretty)
	}
	if v := os.Getenv("COINLORE_ENDPOINT"); v != "" {
		cfg.CoinLore.Endpoint = v
	}
	if v := os.Getenv("NEWS_ENDPOINT"); v != "" {
		cfg.News.Endpoint = v
	}
	if v := os.Getenv("NEWS_API_KEY"); v != "" {
		cfg.News.APIKey = v
	}
	if v := os.Getenv("HF_API_URL"); v != "" {
		cfg.Model.Endpoint = v
	}
	if v := os.Getenv("HF_API_TOKEN"); v != "" {
		cfg.Model.APIKey = v
	}
	if v := os.Getenv("SENTIMENT_NEWS_URL"); v != "" {
		cfg.Sentiment.NewsURL = v
	}
	if v := os.Getenv("SENTIMENT_CLASSIFY_URL"); v != "" {
		cfg.Sentiment.ClassifyURL = v
	}
	if v := os.Getenv("ACTIVITY_LOG_FILE"); v != "" {
		cfg.ActivityLog.Path = v
	}
}

func parseBool(s string, def bool) bool {
	switch strings.ToLower(s) {
	case "1", "true", "yes", "y":
		return true
	case "0", "false", "no", "n":
		return false
	}
	return def
}
