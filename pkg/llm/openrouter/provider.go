package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"ai-supportbot-be/pkg/llm"
)

const (
	// DefaultModel is the safe fallback when the account model list cannot
	// be fetched or comes back empty.
	DefaultModel = "openai/gpt-4o-mini"

	defaultBaseURL = "https://openrouter.ai/api/v1"

	completionTimeout = 60 * time.Second
	listTimeout       = 10 * time.Second
)

// preferredModels is walked in order against the account's model list; the
// first match wins.
var preferredModels = []string{
	"mistralai/mixtral-8x22b",
	"meta-llama/llama-3.1-70b-instruct",
	"anthropic/claude-3-haiku",
	"openai/gpt-4o-mini",
	"google/gemma-2-9b-it",
}

type Provider struct {
	apiKey    string
	baseURL   string
	modelName string // explicit override from config; skips auto-selection

	client     *http.Client
	listClient *http.Client

	selectOnce sync.Once
	selected   string
}

var _ llm.Provider = &Provider{}

func NewProvider(apiKey, modelName, baseURL string) *Provider {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Provider{
		apiKey:    apiKey,
		baseURL:   baseURL,
		modelName: modelName,
		client: &http.Client{
			Timeout: completionTimeout,
		},
		listClient: &http.Client{
			Timeout: listTimeout,
		},
	}
}

// --- Request/Response structs (internal to this package) ---

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []llm.Message `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

type modelListResponse struct {
	Data []struct {
		Id string `json:"id"`
	} `json:"data"`
}

// --- Model selection ---

// ResolveModel picks the completion model once per process: the configured
// name if set, otherwise the first preferred model the account can access,
// otherwise the first listed model, otherwise DefaultModel.
func (p *Provider) ResolveModel(ctx context.Context) string {
	p.selectOnce.Do(func() {
		if p.modelName != "" {
			p.selected = p.modelName
			return
		}

		models, err := p.listModels(ctx)
		if err != nil || len(models) == 0 {
			p.selected = DefaultModel
			return
		}

		available := make(map[string]bool, len(models))
		for _, m := range models {
			available[m] = true
		}
		for _, m := range preferredModels {
			if available[m] {
				p.selected = m
				return
			}
		}
		p.selected = models[0]
	})
	return p.selected
}

func (p *Provider) listModels(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/models", nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.listClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch model list: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("model list error: status %d", resp.StatusCode)
	}

	var listResp modelListResponse
	if err := json.NewDecoder(resp.Body).Decode(&listResp); err != nil {
		return nil, fmt.Errorf("decode model list: %w", err)
	}

	models := make([]string, 0, len(listResp.Data))
	for _, m := range listResp.Data {
		models = append(models, m.Id)
	}
	return models, nil
}

// --- Completion ---

func (p *Provider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	if p.apiKey == "" {
		return "", llm.ErrMissingAPIKey
	}

	options := &llm.Options{
		Temperature: 0.7,
		MaxTokens:   512,
	}
	for _, opt := range opts {
		opt(options)
	}

	model := options.Model
	if model == "" {
		model = p.ResolveModel(ctx)
	}

	reqPayload := chatRequest{
		Model:       model,
		Messages:    history,
		Temperature: options.Temperature,
		MaxTokens:   options.MaxTokens,
	}

	payloadBytes, err := json.Marshal(reqPayload)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := p.baseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(payloadBytes))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)
	req.Header.Set("HTTP-Referer", "http://localhost:8000")
	req.Header.Set("X-Title", "AI Customer Support Bot")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("openrouter request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("openrouter error: status %d, body: %s", resp.StatusCode, string(bodyBytes))
	}

	var chatResp chatResponse
	if err := json.Unmarshal(bodyBytes, &chatResp); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}

	if chatResp.Error != nil {
		return "", fmt.Errorf("openrouter returned error: %s", chatResp.Error.Message)
	}
	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("empty choices from openrouter")
	}

	return chatResp.Choices[0].Message.Content, nil
}
