package alert

import (
	"context"
	"fmt"
	"log"
	"net/smtp"
)

// EmailConfig holds the SMTP settings for email alerts.
type EmailConfig struct {
	Server    string
	Port      int
	User      string
	Password  string
	Recipient string
}

// EmailTransport sends alerts over SMTP with STARTTLS.
type EmailTransport struct {
	cfg EmailConfig
	// sendMail is swapped in tests to avoid a network dependency.
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewEmailTransport returns nil when credentials are incomplete; the
// dispatcher simply runs without it.
func NewEmailTransport(cfg EmailConfig) *EmailTransport {
	if cfg.User == "" || cfg.Password == "" || cfg.Recipient == "" {
		log.Println("Warning: email alerts not configured")
		return nil
	}
	if cfg.Server == "" {
		cfg.Server = "smtp.gmail.com"
	}
	if cfg.Port == 0 {
		cfg.Port = 587
	}
	return &EmailTransport{cfg: cfg, sendMail: smtp.SendMail}
}

func (t *EmailTransport) Name() string { return "email" }

func (t *EmailTransport) Send(_ context.Context, subject, body string) error {
	addr := fmt.Sprintf("%s:%d", t.cfg.Server, t.cfg.Port)
	auth := smtp.PlainAuth("", t.cfg.User, t.cfg.Password, t.cfg.Server)

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		t.cfg.User, t.cfg.Recipient, subject, body)

	return t.sendMail(addr, auth, t.cfg.User, []string{t.cfg.Recipient}, []byte(msg))
}
