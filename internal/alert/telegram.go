package alert

import (
	"context"
	"log"
	"time"

	tele "gopkg.in/telebot.v3"
)

// TelegramTransport posts alerts to a fixed chat.
type TelegramTransport struct {
	bot    *tele.Bot
	chatID int64
}

// NewTelegramTransport returns nil when the token or chat ID is missing;
// the dispatcher simply runs without it.
func NewTelegramTransport(token string, chatID int64) *TelegramTransport {
	if token == "" || chatID == 0 {
		log.Println("Warning: Telegram alerts not configured")
		return nil
	}
	bot, err := tele.NewBot(tele.Settings{
		Token:  token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		log.Printf("Warning: failed to create Telegram bot for alerts: %v", err)
		return nil
	}
	return &TelegramTransport{bot: bot, chatID: chatID}
}

func (t *TelegramTransport) Name() string { return "telegram" }

// Send posts the body to the configured chat; the subject is folded into
// the message since Telegram has no subject line.
func (t *TelegramTransport) Send(_ context.Context, _ string, body string) error {
	_, err := t.bot.Send(&tele.Chat{ID: t.chatID}, body)
	return err
}
