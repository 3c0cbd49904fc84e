package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/umputun/newsinsight/pkg/config"
	"github.com/umputun/newsinsight/pkg/domain"
)

// Reasoner talks to an OpenAI-compatible model for article analysis,
// legitimacy classification and explanations
type Reasoner struct {
	client *openai.Client
	config config.LLMConfig
}

// NewReasoner creates a new LLM reasoner
func NewReasoner(cfg config.LLMConfig) *Reasoner {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}

	return &Reasoner{
		client: openai.NewClientWithConfig(clientConfig),
		config: cfg,
	}
}

// analysis system prompt, NRC-style emotion insights in strict JSON
const analysisPrompt = `You are an expert analyst producing NRC-style emotion insights. Return ONLY strict JSON (no markdown) with this schema:
{
  "overall_sentiment": one of ["very_negative","negative","neutral","positive","very_positive"],
  "emotions": {"anger": level, "anticipation": level, "disgust": level, "fear": level, "joy": level, "sadness": level, "surprise": level, "trust": level},
  "entities": [{"type": string, "text": string}],
  "summary": string
}
Each level must be one of ["high","medium","low","none"].
Keep summary to 3-5 concise bullet sentences joined by \n describing key takeaways and emotion drivers.
overall_sentiment reflects the dominant tone on a very_negative to very_positive continuum.
If unsure, use "neutral" and "none". Do not add extra fields.`

// legitimacy system prompt, classification in strict JSON
const legitimacyPrompt = `You evaluate whether content is genuine news reporting. Return ONLY strict JSON (no markdown) with this schema:
{
  "category": one of ["news_article","advertisement","opinion_piece","press_release","clickbait","low_quality","spam"],
  "quality_score": number 0-100,
  "recommendation": one of ["accept","review","reject"],
  "reasoning": brief explanation (max 100 chars)
}
Judge sourcing, attribution, factual tone and promotional language. Do not add extra fields.`

// Entity is a typed entity extracted from an article
type Entity struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Analysis is the model's per-article insight payload
type Analysis struct {
	OverallSentiment string            `json:"overall_sentiment"`
	Emotions         map[string]string `json:"emotions"`
	Entities         []Entity          `json:"entities"`
	Summary          string            `json:"summary"`
}

// Legitimacy is the model's verdict on whether content is genuine news
type Legitimacy struct {
	Category       string  `json:"category"`
	QualityScore   float64 `json:"quality_score"`
	Recommendation string  `json:"recommendation"`
	Reasoning      string  `json:"reasoning"`
}

// Analyze produces sentiment, emotion, entity and summary insights for the text.
// Retries up to 3 times when the model returns invalid JSON.
func (r *Reasoner) Analyze(ctx context.Context, text string) (*Analysis, error) {
	var analysis Analysis
	if err := r.completeJSON(ctx, analysisPrompt, "ARTICLE:\n"+truncate(text, 6000), &analysis); err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}
	return &analysis, nil
}

// CheckLegitimacy classifies a candidate as genuine news vs promotional content
func (r *Reasoner) CheckLegitimacy(ctx context.Context, article domain.RawArticle) (*Legitimacy, error) {
	prompt := fmt.Sprintf("Article Title: %s\nArticle Content: %s\nSource: %s",
		article.Headline, truncate(article.Body, 2000), article.Source)

	var verdict Legitimacy
	if err := r.completeJSON(ctx, legitimacyPrompt, prompt, &verdict); err != nil {
		return nil, fmt.Errorf("check legitimacy: %w", err)
	}
	return &verdict, nil
}

// completeJSON issues a completion and parses strict-JSON output,
// retrying up to 3 times on invalid JSON
func (r *Reasoner) completeJSON(ctx context.Context, system, user string, v interface{}) error {
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		content, err := r.complete(ctx, system, user)
		if err != nil {
			return err
		}

		if parseErr := unmarshalModelJSON(content, v); parseErr != nil {
			lastErr = parseErr
			continue
		}
		return nil
	}
	return fmt.Errorf("failed after 3 attempts: %w", lastErr)
}

// Explain produces a structured what/why/watch analysis of the text
func (r *Reasoner) Explain(ctx context.Context, text string) (string, error) {
	prompt := "Provide a crisp, structured analysis with:\n" +
		"1) **What happened** (2-3 bullets)\n" +
		"2) **Why it matters** (2-3 bullets)\n" +
		"3) **What to watch next** (2 bullets)\n\n" +
		"ARTICLE CONTEXT:\n" + truncate(text, 2000)

	content, err := r.complete(ctx, "You are a concise news analyst.", prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(content), nil
}

// complete issues a chat completion with the reasoner's model settings
func (r *Reasoner) complete(ctx context.Context, system, user string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.config.Timeout)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model:       r.config.Model,
		Temperature: float32(r.config.Temperature),
		MaxTokens:   r.config.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	}

	resp, err := r.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("llm request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from llm")
	}
	return resp.Choices[0].Message.Content, nil
}

// unmarshalModelJSON extracts the first JSON object from model output,
// tolerating markdown fences and prose around it
func unmarshalModelJSON(content string, v interface{}) error {
	content = strings.TrimSpace(content)
	content = strings.Trim(content, "`")

	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end == -1 || start >= end {
		return fmt.Errorf("no json object found in response")
	}

	if err := json.Unmarshal([]byte(content[start:end+1]), v); err != nil {
		return fmt.Errorf("failed to parse json: %w", err)
	}
	return nil
}

// truncate limits text to n runes
func truncate(text string, n int) string {
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n]) + "..."
}
