package alert

import (
	"context"
	"net/smtp"
	"strings"
	"testing"
)

func TestNewEmailTransportIncompleteConfig(t *testing.T) {
	t.Parallel()

	if got := NewEmailTransport(EmailConfig{User: "a@b.c"}); got != nil {
		t.Fatal("missing password and recipient should disable email alerts")
	}
}

func TestNewEmailTransportDefaults(t *testing.T) {
	t.Parallel()

	tr := NewEmailTransport(EmailConfig{User: "a@b.c", Password: "pw", Recipient: "to@b.c"})
	if tr == nil {
		t.Fatal("complete config should build a transport")
	}
	if tr.cfg.Server != "smtp.gmail.com" || tr.cfg.Port != 587 {
		t.Fatalf("unexpected defaults: %s:%d", tr.cfg.Server, tr.cfg.Port)
	}
}

func TestEmailTransportSend(t *testing.T) {
	t.Parallel()

	tr := NewEmailTransport(EmailConfig{
		Server: "mail.example.com", Port: 2525,
		User: "bot@example.com", Password: "pw", Recipient: "ops@example.com",
	})

	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte
	tr.sendMail = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
		return nil
	}

	if err := tr.Send(context.Background(), "Funding Rate Alert - BTC", "body text"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAddr != "mail.example.com:2525" {
		t.Fatalf("unexpected addr: %s", gotAddr)
	}
	if gotFrom != "bot@example.com" || len(gotTo) != 1 || gotTo[0] != "ops@example.com" {
		t.Fatalf("unexpected envelope: from=%s to=%v", gotFrom, gotTo)
	}
	if !strings.Contains(string(gotMsg), "Subject: Funding Rate Alert - BTC") {
		t.Fatalf("message missing subject header:\n%s", gotMsg)
	}
	if !strings.Contains(string(gotMsg), "body text") {
		t.Fatalf("message missing body:\n%s", gotMsg)
	}
}
