package pulsefeed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"marketpulse/internal/application/syncstore"
	"marketpulse/internal/domain/alert"
	"marketpulse/internal/domain/dashboard"
	"marketpulse/internal/domain/market"
	"marketpulse/internal/domain/news"
	"marketpulse/internal/domain/portfolio"
)

// Client 包裝 MarketPulse 後端的唯讀 REST API，每個資料來源一個 GET。
// 不做重試，重試策略屬於上層的同步策略。
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// 後端所有回應共用的封包格式。
type envelope struct {
	Data json.RawMessage `json:"data"`
}

// NewClient 建立 feed client。
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

var _ syncstore.FeedSource = (*Client)(nil)

func (c *Client) get(ctx context.Context, feed, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return &syncstore.FetchError{Feed: feed, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &syncstore.FetchError{Feed: feed, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return &syncstore.FetchError{
			Feed:   feed,
			Status: resp.StatusCode,
			Err:    fmt.Errorf("unexpected status: %s", strings.TrimSpace(string(body))),
		}
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return &syncstore.FetchError{Feed: feed, Err: fmt.Errorf("decode body: %w", err)}
	}
	if env.Data == nil {
		return &syncstore.FetchError{Feed: feed, Err: fmt.Errorf("missing data envelope")}
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return &syncstore.FetchError{Feed: feed, Err: fmt.Errorf("decode payload: %w", err)}
	}
	return nil
}

// FetchStocks 取得股票清單並標上資產類別（後端不帶 class 欄位）。
func (c *Client) FetchStocks(ctx context.Context) ([]market.Asset, error) {
	var assets []market.Asset
	if err := c.get(ctx, syncstore.FeedStocks, "/assets/stocks", &assets); err != nil {
		return nil, err
	}
	return withClass(assets, market.ClassStock), nil
}

// FetchCrypto 取得加密資產清單並標上資產類別。
func (c *Client) FetchCrypto(ctx context.Context) ([]market.Asset, error) {
	var assets []market.Asset
	if err := c.get(ctx, syncstore.FeedCrypto, "/assets/crypto", &assets); err != nil {
		return nil, err
	}
	return withClass(assets, market.ClassCrypto), nil
}

func (c *Client) FetchNews(ctx context.Context) ([]news.Article, error) {
	var articles []news.Article
	if err := c.get(ctx, syncstore.FeedNews, "/news", &articles); err != nil {
		return nil, err
	}
	return articles, nil
}

func (c *Client) FetchAlerts(ctx context.Context) ([]alert.Alert, error) {
	var alerts []alert.Alert
	if err := c.get(ctx, syncstore.FeedAlerts, "/alerts", &alerts); err != nil {
		return nil, err
	}
	return alerts, nil
}

func (c *Client) FetchPortfolio(ctx context.Context) (portfolio.Portfolio, error) {
	var p portfolio.Portfolio
	if err := c.get(ctx, syncstore.FeedPortfolio, "/portfolio", &p); err != nil {
		return portfolio.Portfolio{}, err
	}
	return p, nil
}

func (c *Client) FetchDashboard(ctx context.Context) (dashboard.Summary, error) {
	var d dashboard.Summary
	if err := c.get(ctx, syncstore.FeedDashboard, "/dashboard", &d); err != nil {
		return dashboard.Summary{}, err
	}
	return d, nil
}

func withClass(assets []market.Asset, class market.Class) []market.Asset {
	for i := range assets {
		if assets[i].Class == "" {
			assets[i].Class = class
		}
	}
	return assets
}
