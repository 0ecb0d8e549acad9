package config

import (
	"reflect"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"BINANCE_API_KEY", "BINANCE_SECRET", "BYBIT_API_KEY", "BYBIT_SECRET",
		"OKX_API_KEY", "OKX_SECRET", "OKX_PASSPHRASE", "REDIS_URL",
		"CACHE_TTL_SECS", "REQUEST_DELAY_MS", "DEFAULT_COINS", "REFRESH_SECS",
		"FUNDING_ALERT_THRESHOLD", "MAX_ALERTS_PER_HOUR", "TELEGRAM_TOKEN",
		"TELEGRAM_CHAT_ID", "SMTP_SERVER", "SMTP_PORT", "EMAIL_USER",
		"EMAIL_PASSWORD", "RECIPIENT_EMAIL", "CRYPTOPANIC_API_KEY",
		"DATA_SOURCE", "WHALE_SEED", "LIQ_SEED", "DEBUG",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()
	if cfg.CacheTTLSecs != 60 {
		t.Fatalf("cache TTL default: %d", cfg.CacheTTLSecs)
	}
	if cfg.RequestDelayMs != 100 {
		t.Fatalf("request delay default: %d", cfg.RequestDelayMs)
	}
	if !reflect.DeepEqual(cfg.DefaultCoins, []string{"BTC", "ETH", "SOL"}) {
		t.Fatalf("default coins: %v", cfg.DefaultCoins)
	}
	if cfg.RefreshSecs != 60 {
		t.Fatalf("refresh default: %d", cfg.RefreshSecs)
	}
	if cfg.FundingAlertThreshold != 0.5 {
		t.Fatalf("threshold default: %v", cfg.FundingAlertThreshold)
	}
	if cfg.MaxAlertsPerHour != 10 {
		t.Fatalf("alert cap default: %d", cfg.MaxAlertsPerHour)
	}
	if cfg.SMTPServer != "smtp.gmail.com" || cfg.SMTPPort != 587 {
		t.Fatalf("smtp defaults: %s:%d", cfg.SMTPServer, cfg.SMTPPort)
	}
	if cfg.DataSource != "simulated" {
		t.Fatalf("data source default: %s", cfg.DataSource)
	}
	if cfg.Debug {
		t.Fatal("debug should default off")
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("CACHE_TTL_SECS", "120")
	t.Setenv("DEFAULT_COINS", "btc, doge ,eth")
	t.Setenv("FUNDING_ALERT_THRESHOLD", "1.5")
	t.Setenv("TELEGRAM_CHAT_ID", "-100123")
	t.Setenv("DEBUG", "true")

	cfg := Load()
	if cfg.CacheTTLSecs != 120 {
		t.Fatalf("cache TTL override: %d", cfg.CacheTTLSecs)
	}
	if !reflect.DeepEqual(cfg.DefaultCoins, []string{"BTC", "DOGE", "ETH"}) {
		t.Fatalf("coins should be upcased and trimmed: %v", cfg.DefaultCoins)
	}
	if cfg.FundingAlertThreshold != 1.5 {
		t.Fatalf("threshold override: %v", cfg.FundingAlertThreshold)
	}
	if cfg.TelegramChatID != -100123 {
		t.Fatalf("chat ID: %d", cfg.TelegramChatID)
	}
	if !cfg.Debug {
		t.Fatal("debug should be on")
	}
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("CACHE_TTL_SECS", "not-a-number")
	t.Setenv("MAX_ALERTS_PER_HOUR", "-5")
	t.Setenv("DATA_SOURCE", "oracle")
	t.Setenv("TELEGRAM_CHAT_ID", "abc")

	cfg := Load()
	if cfg.CacheTTLSecs != 60 {
		t.Fatalf("bad TTL should fall back: %d", cfg.CacheTTLSecs)
	}
	if cfg.MaxAlertsPerHour != 10 {
		t.Fatalf("negative cap should fall back: %d", cfg.MaxAlertsPerHour)
	}
	if cfg.DataSource != "simulated" {
		t.Fatalf("unknown data source should fall back: %s", cfg.DataSource)
	}
	if cfg.TelegramChatID != 0 {
		t.Fatalf("bad chat ID should be ignored: %d", cfg.TelegramChatID)
	}
}
