package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/umputun/newsinsight/pkg/domain"
)

// Guardian fetches candidates from the Guardian open platform search API
type Guardian struct {
	client   *resty.Client
	key      string
	pageSize int
}

// GuardianParams holds Guardian client settings
type GuardianParams struct {
	Key      string
	Endpoint string // base URL, defaults to https://content.guardianapis.com
	PageSize int
	Timeout  time.Duration
}

// NewGuardian creates a Guardian provider
func NewGuardian(params GuardianParams) *Guardian {
	if params.Endpoint == "" {
		params.Endpoint = "https://content.guardianapis.com"
	}
	if params.PageSize <= 0 || params.PageSize > 200 {
		params.PageSize = 20
	}
	if params.Timeout <= 0 {
		params.Timeout = 20 * time.Second
	}
	return &Guardian{
		client: resty.New().
			SetBaseURL(params.Endpoint).
			SetTimeout(params.Timeout).
			SetHeader("User-Agent", "newsinsight/1.0"),
		key:      params.Key,
		pageSize: params.PageSize,
	}
}

// Name returns the provider name
func (g *Guardian) Name() string { return "guardian" }

// guardianResponse is the wire shape of /search
type guardianResponse struct {
	Response struct {
		Status  string `json:"status"`
		Message string `json:"message"`
		Results []struct {
			WebTitle           string `json:"webTitle"`
			WebURL             string `json:"webUrl"`
			WebPublicationDate string `json:"webPublicationDate"`
			Fields             struct {
				Headline  string `json:"headline"`
				TrailText string `json:"trailText"`
				BodyText  string `json:"bodyText"`
				Byline    string `json:"byline"`
			} `json:"fields"`
		} `json:"results"`
	} `json:"response"`
}

// Fetch queries the Guardian search API for the topic, newest first
func (g *Guardian) Fetch(ctx context.Context, topic string, limit int) ([]domain.RawArticle, error) {
	if g.key == "" {
		return nil, nil // provider not configured, not an error
	}
	pageSize := g.pageSize
	if limit > 0 && limit < pageSize {
		pageSize = limit
	}

	resp, err := g.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":           topic,
			"page-size":   fmt.Sprintf("%d", pageSize),
			"order-by":    "newest",
			"show-fields": "headline,trailText,bodyText,byline",
			"api-key":     g.key,
		}).
		Get("/search")
	if err != nil {
		return nil, fmt.Errorf("guardian request: %w", err)
	}

	var body guardianResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("guardian response: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		if body.Response.Message != "" {
			return nil, fmt.Errorf("guardian status %d: %s", resp.StatusCode(), body.Response.Message)
		}
		return nil, fmt.Errorf("guardian status %d", resp.StatusCode())
	}

	result := make([]domain.RawArticle, 0, len(body.Response.Results))
	for _, r := range body.Response.Results {
		headline := r.Fields.Headline
		if headline == "" {
			headline = r.WebTitle
		}
		if headline == "" {
			continue
		}
		raw := domain.RawArticle{
			Headline: headline,
			Body:     r.Fields.BodyText,
			Source:   "guardian",
			URL:      r.WebURL,
			Author:   r.Fields.Byline,
		}
		if raw.Body == "" {
			raw.Body = r.Fields.TrailText
		}
		if ts, err := time.Parse(time.RFC3339, r.WebPublicationDate); err == nil {
			raw.Published = ts
		}
		result = append(result, raw)
	}
	return result, nil
}
