package config

import (
	"errors"
	"flag"
	"net"
	"os"
	"regexp"
	"strconv"
	"time"
)

type Config struct {
	Addr        string
	DBUrl       string
	TokenSecret string
	TokenTTL    time.Duration
	Debug       bool

	AIApiKey  string
	AIModel   string
	AIBaseUrl string
}

func ParseFlags() (cfg Config, err error) {
	var host string
	flag.StringVar(&host, "host", "0.0.0.0", "listen host name (default 0.0.0.0)")
	var port uint
	flag.UintVar(&port, "port", 80, "listen port number (default 80)")
	flag.StringVar(&cfg.DBUrl, "db-url", "formweaver.sqlite", "path to SQLite3 DB file (default formweaver.sqlite)")
	flag.StringVar(&cfg.TokenSecret, "token-secret", "", "secret key for token encryption and decryption")
	var ttl uint
	flag.UintVar(&ttl, "token-ttl", 120, "token TTL in seconds (default 120)")
	flag.BoolVar(&cfg.Debug, "debug", false, "log at DEBUG level")
	flag.StringVar(&cfg.AIApiKey, "ai-api-key", os.Getenv("OPENAI_API_KEY"), "API key for the draft generator (default $OPENAI_API_KEY; empty disables AI drafting)")
	flag.StringVar(&cfg.AIModel, "ai-model", envOr("OPENAI_MODEL", "gpt-4o-mini"), "default model for the draft generator (default $OPENAI_MODEL or gpt-4o-mini)")
	flag.StringVar(&cfg.AIBaseUrl, "ai-base-url", os.Getenv("OPENAI_BASE_URL"), "base URL of an OpenAI-compatible API (default $OPENAI_BASE_URL)")
	flag.Parse()

	cfg.Addr = net.JoinHostPort(host, strconv.Itoa(int(port)))
	cfg.TokenTTL = time.Duration(ttl) * time.Second

	if cfg.TokenSecret == "" {
		err = errors.New("missing parameter -token-secret")
	}

	return
}

func envOr(name, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return fallback
}

func (cfg Config) Url() (url string) {
	url = cfg.Addr
	url = regexp.MustCompile(`^0.0.0.0`).ReplaceAllString(url, "localhost")
	url = "http://" + url
	return
}
