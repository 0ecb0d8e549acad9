package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	BinanceAPIKey string
	BinanceSecret string
	BybitAPIKey   string
	BybitSecret   string
	OKXAPIKey     string
	OKXSecret     string
	OKXPassphrase string

	RedisURL       string
	CacheTTLSecs   int
	RequestDelayMs int

	DefaultCoins []string
	RefreshSecs  int

	FundingAlertThreshold float64
	MaxAlertsPerHour      int

	TelegramToken  string
	TelegramChatID int64

	SMTPServer     string
	SMTPPort       int
	EmailUser      string
	EmailPassword  string
	RecipientEmail string

	CryptoPanicAPIKey string

	DataSource      string
	WhaleSeed       int64
	LiquidationSeed int64

	Debug bool
}

func Load() *Config {
	cfg := &Config{
		BinanceAPIKey: os.Getenv("BINANCE_API_KEY"),
		BinanceSecret: os.Getenv("BINANCE_SECRET"),
		BybitAPIKey:   os.Getenv("BYBIT_API_KEY"),
		BybitSecret:   os.Getenv("BYBIT_SECRET"),
		OKXAPIKey:     os.Getenv("OKX_API_KEY"),
		OKXSecret:     os.Getenv("OKX_SECRET"),
		OKXPassphrase: os.Getenv("OKX_PASSPHRASE"),

		RedisURL: os.Getenv("REDIS_URL"),

		TelegramToken:     os.Getenv("TELEGRAM_TOKEN"),
		EmailUser:         os.Getenv("EMAIL_USER"),
		EmailPassword:     os.Getenv("EMAIL_PASSWORD"),
		RecipientEmail:    os.Getenv("RECIPIENT_EMAIL"),
		CryptoPanicAPIKey: os.Getenv("CRYPTOPANIC_API_KEY"),
	}

	if cfg.TelegramToken == "" {
		log.Println("Warning: TELEGRAM_TOKEN not set, Telegram alerts disabled")
	}
	if v := strings.TrimSpace(os.Getenv("TELEGRAM_CHAT_ID")); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.TelegramChatID = n
		} else {
			log.Printf("Warning: invalid TELEGRAM_CHAT_ID %q", v)
		}
	}

	cfg.CacheTTLSecs = 60
	if v := os.Getenv("CACHE_TTL_SECS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.CacheTTLSecs = n
		}
	}

	cfg.RequestDelayMs = 100
	if v := os.Getenv("REQUEST_DELAY_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.RequestDelayMs = n
		}
	}

	cfg.DefaultCoins = []string{"BTC", "ETH", "SOL"}
	if v := strings.TrimSpace(os.Getenv("DEFAULT_COINS")); v != "" {
		coins := []string{}
		for _, c := range strings.Split(v, ",") {
			if c = strings.ToUpper(strings.TrimSpace(c)); c != "" {
				coins = append(coins, c)
			}
		}
		if len(coins) > 0 {
			cfg.DefaultCoins = coins
		}
	}

	cfg.RefreshSecs = 60
	if v := os.Getenv("REFRESH_SECS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.RefreshSecs = n
		}
	}

	cfg.FundingAlertThreshold = 0.5
	if v := os.Getenv("FUNDING_ALERT_THRESHOLD"); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil && n > 0 {
			cfg.FundingAlertThreshold = n
		}
	}

	cfg.MaxAlertsPerHour = 10
	if v := os.Getenv("MAX_ALERTS_PER_HOUR"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxAlertsPerHour = n
		}
	}

	cfg.SMTPServer = os.Getenv("SMTP_SERVER")
	if cfg.SMTPServer == "" {
		cfg.SMTPServer = "smtp.gmail.com"
	}
	cfg.SMTPPort = 587
	if v := os.Getenv("SMTP_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.SMTPPort = n
		}
	}

	cfg.DataSource = strings.ToLower(strings.TrimSpace(os.Getenv("DATA_SOURCE")))
	if cfg.DataSource == "" {
		cfg.DataSource = "simulated"
	}
	if cfg.DataSource != "simulated" && cfg.DataSource != "live" {
		log.Printf("Warning: unsupported DATA_SOURCE=%q, defaulting to simulated", cfg.DataSource)
		cfg.DataSource = "simulated"
	}

	if v := os.Getenv("WHALE_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.WhaleSeed = n
		}
	}
	if v := os.Getenv("LIQ_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.LiquidationSeed = n
		}
	}

	cfg.Debug = strings.EqualFold(strings.TrimSpace(os.Getenv("DEBUG")), "true")

	return cfg
}
