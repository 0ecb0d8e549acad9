package news

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"crypto-market-hub/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

const cryptoPanicBaseURL = "https://cryptopanic.com/api/v1"

// Provider fetches crypto news headlines from the CryptoPanic API.
// Without an auth token it reports no news rather than failing.
type Provider struct {
	client  *http.Client
	baseURL string
	tracer  trace.Tracer
	token   string
}

func NewProvider(tracer trace.Tracer, token string) *Provider {
	return &Provider{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: cryptoPanicBaseURL,
		tracer:  tracer,
		token:   token,
	}
}

// FetchLatest returns up to limit recent posts, newest first.
func (p *Provider) FetchLatest(ctx context.Context, limit int) ([]domain.NewsItem, error) {
	_, span := p.tracer.Start(ctx, "news.fetch-latest")
	defer span.End()

	if p.token == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = 15
	}

	url := fmt.Sprintf("%s/posts/?auth_token=%s&public=true", p.baseURL, p.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("cryptopanic API error %d: %s", resp.StatusCode, string(body))
	}

	var payload struct {
		Results []struct {
			Title       string    `json:"title"`
			URL         string    `json:"url"`
			PublishedAt time.Time `json:"published_at"`
			Source      struct {
				Title string `json:"title"`
			} `json:"source"`
			Currencies []struct {
				Code string `json:"code"`
			} `json:"currencies"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode cryptopanic response: %w", err)
	}

	items := make([]domain.NewsItem, 0, limit)
	for _, row := range payload.Results {
		if len(items) >= limit {
			break
		}
		item := domain.NewsItem{
			Title:       row.Title,
			URL:         row.URL,
			Source:      row.Source.Title,
			PublishedAt: row.PublishedAt,
		}
		for _, c := range row.Currencies {
			item.Currencies = append(item.Currencies, c.Code)
		}
		items = append(items, item)
	}
	return items, nil
}
