package bot

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"crypto-market-hub/internal/derivatives"
	"crypto-market-hub/internal/domain"

	tele "gopkg.in/telebot.v3"
)

// StartTelegramBot wires the command bot against the derivatives service.
// With no token configured the bot is skipped entirely.
func StartTelegramBot(token string, derivativesService *derivatives.Service) {
	if token == "" {
		log.Println("Telegram token not set, skipping Telegram bot startup")
		return
	}
	pref := tele.Settings{
		Token:  token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}
	b, err := tele.NewBot(pref)
	if err != nil {
		log.Printf("failed to create Telegram bot: %v", err)
		return
	}

	b.Handle("/ping", func(c tele.Context) error {
		return c.Send("pong")
	})

	b.Handle("/funding", func(c tele.Context) error {
		coin, errMsg := parseCoinArg(c.Args(), "/funding BTC")
		if errMsg != "" {
			return c.Send(errMsg)
		}
		rates, err := derivativesService.FundingRates(context.Background(), []string{coin})
		if err != nil {
			return c.Send(fmt.Sprintf("Error fetching funding rate for %s: %v", coin, err))
		}
		return c.Send(FormatFundingReply(coin, rates[coin]))
	})

	b.Handle("/oi", func(c tele.Context) error {
		coin, errMsg := parseCoinArg(c.Args(), "/oi ETH")
		if errMsg != "" {
			return c.Send(errMsg)
		}
		oi, err := derivativesService.OpenInterest(context.Background(), []string{coin})
		if err != nil {
			return c.Send(fmt.Sprintf("Error fetching open interest for %s: %v", coin, err))
		}
		return c.Send(FormatOpenInterestReply(coin, oi[coin]))
	})

	b.Handle("/basis", func(c tele.Context) error {
		coin, errMsg := parseCoinArg(c.Args(), "/basis SOL")
		if errMsg != "" {
			return c.Send(errMsg)
		}
		basis, err := derivativesService.BasisData(context.Background(), []string{coin})
		if err != nil {
			return c.Send(fmt.Sprintf("Error fetching basis for %s: %v", coin, err))
		}
		return c.Send(FormatBasisReply(coin, basis[coin]))
	})

	log.Println("Telegram bot started")
	go b.Start()
}

func parseCoinArg(args []string, usage string) (string, string) {
	supported := strings.Join(domain.SupportedCoins[:10], ", ") + ", ..."
	if len(args) == 0 {
		return "", fmt.Sprintf("Usage: %s\nSupported: %s", usage, supported)
	}
	coin := strings.ToUpper(args[0])
	if !domain.IsSupported(coin) {
		return "", fmt.Sprintf("Unknown coin: %s\nSupported: %s", coin, supported)
	}
	return coin, ""
}

// FormatFundingReply renders the /funding response.
func FormatFundingReply(coin string, rate float64) string {
	sentiment := "neutral"
	if rate > 0.01 {
		sentiment = "longs paying shorts"
	} else if rate < -0.01 {
		sentiment = "shorts paying longs"
	}
	return fmt.Sprintf("%s/USDT Funding\nRate: %.4f%%\nSentiment: %s", coin, rate, sentiment)
}

// FormatOpenInterestReply renders the /oi response.
func FormatOpenInterestReply(coin string, oiUSD float64) string {
	return fmt.Sprintf("%s Open Interest\nTotal: $%.1fM", coin, oiUSD/1_000_000)
}

// FormatBasisReply renders the /basis response.
func FormatBasisReply(coin string, basis float64) string {
	state := "contango"
	if basis < 0 {
		state = "backwardation"
	}
	return fmt.Sprintf("%s Basis\nPremium: %.4f%%\nState: %s", coin, basis, state)
}
