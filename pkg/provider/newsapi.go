package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/umputun/newsinsight/pkg/domain"
)

// truncatedMarker matches the NewsAPI content cutoff, e.g. "[+1234 chars]"
var truncatedMarker = regexp.MustCompile(`\[\+\d+ chars\]\s*$`)

// NewsAPI fetches candidates from newsapi.org /v2/everything
type NewsAPI struct {
	client   *resty.Client
	key      string
	pageSize int
}

// NewsAPIParams holds NewsAPI client settings
type NewsAPIParams struct {
	Key      string
	Endpoint string // base URL, defaults to https://newsapi.org/v2
	PageSize int
	Timeout  time.Duration
}

// NewNewsAPI creates a NewsAPI provider
func NewNewsAPI(params NewsAPIParams) *NewsAPI {
	if params.Endpoint == "" {
		params.Endpoint = "https://newsapi.org/v2"
	}
	if params.PageSize <= 0 || params.PageSize > 100 {
		params.PageSize = 20
	}
	if params.Timeout <= 0 {
		params.Timeout = 20 * time.Second
	}
	return &NewsAPI{
		client: resty.New().
			SetBaseURL(params.Endpoint).
			SetTimeout(params.Timeout).
			SetHeader("User-Agent", "newsinsight/1.0"),
		key:      params.Key,
		pageSize: params.PageSize,
	}
}

// Name returns the provider name
func (n *NewsAPI) Name() string { return "newsapi" }

// newsAPIResponse is the wire shape of /v2/everything
type newsAPIResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Articles []struct {
		Source struct {
			Name string `json:"name"`
		} `json:"source"`
		Author      string `json:"author"`
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
		PublishedAt string `json:"publishedAt"`
		Content     string `json:"content"`
	} `json:"articles"`
}

// Fetch queries NewsAPI for the topic, newest first
func (n *NewsAPI) Fetch(ctx context.Context, topic string, limit int) ([]domain.RawArticle, error) {
	if n.key == "" {
		return nil, nil // provider not configured, not an error
	}
	pageSize := n.pageSize
	if limit > 0 && limit < pageSize {
		pageSize = limit
	}

	resp, err := n.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":        topic,
			"pageSize": fmt.Sprintf("%d", pageSize),
			"sortBy":   "publishedAt",
			"language": "en",
			"apiKey":   n.key,
		}).
		Get("/everything")
	if err != nil {
		return nil, fmt.Errorf("newsapi request: %w", err)
	}

	var body newsAPIResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("newsapi response: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		if body.Message != "" {
			return nil, fmt.Errorf("newsapi status %d: %s", resp.StatusCode(), body.Message)
		}
		return nil, fmt.Errorf("newsapi status %d", resp.StatusCode())
	}

	result := make([]domain.RawArticle, 0, len(body.Articles))
	for _, a := range body.Articles {
		if a.Title == "" {
			continue
		}
		raw := domain.RawArticle{
			Headline: a.Title,
			Body:     truncatedMarker.ReplaceAllString(a.Content, ""),
			Source:   a.Source.Name,
			URL:      a.URL,
			Author:   a.Author,
		}
		if raw.Body == "" {
			raw.Body = a.Description
		}
		if ts, err := time.Parse(time.RFC3339, a.PublishedAt); err == nil {
			raw.Published = ts
		}
		result = append(result, raw)
	}
	return result, nil
}
