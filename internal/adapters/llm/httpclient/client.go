package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/Arhan13/codegen/internal/domain"
	"github.com/Arhan13/codegen/internal/ports"
)

type Client struct {
	ProviderType string
	APIKey       string
	BaseURL      string
	Model        string
	http         *resty.Client
}

func New(providerType, apiKey, baseURL, model string) *Client {
	c := resty.New().SetTimeout(120 * time.Second)
	return &Client{ProviderType: strings.ToLower(providerType), APIKey: apiKey, BaseURL: baseURL, Model: model, http: c}
}

func (c *Client) TranslateBatch(ctx context.Context, items []ports.TranslateItem, p ports.TranslateParams) (ports.TranslateBatchResult, error) {
	var content string
	var err error
	switch c.ProviderType {
	case "openrouter":
		content, err = c.chatOpenRouter(ctx, p.SystemPrompt, p.UserPrompt, p.Model, p.Temperature, true)
	case "ollama":
		content, err = c.chatOllama(ctx, p.SystemPrompt, p.UserPrompt, p.Model, p.Temperature, true)
	default:
		return ports.TranslateBatchResult{}, fmt.Errorf("unsupported provider: %s", c.ProviderType)
	}
	if err != nil {
		return ports.TranslateBatchResult{}, err
	}
	sets, err := parseTranslations(content)
	if err != nil {
		return ports.TranslateBatchResult{}, err
	}
	return ports.TranslateBatchResult{Translations: sets, Raw: content}, nil
}

func (c *Client) Generate(ctx context.Context, p ports.GenerateParams) (ports.GenerateResult, error) {
	var content string
	var err error
	switch c.ProviderType {
	case "openrouter":
		content, err = c.chatOpenRouter(ctx, p.SystemPrompt, p.UserPrompt, p.Model, p.Temperature, false)
	case "ollama":
		content, err = c.chatOllama(ctx, p.SystemPrompt, p.UserPrompt, p.Model, p.Temperature, false)
	default:
		return ports.GenerateResult{}, fmt.Errorf("unsupported provider: %s", c.ProviderType)
	}
	if err != nil {
		return ports.GenerateResult{}, err
	}
	return ports.GenerateResult{Source: StripCodeFence(content), Raw: content}, nil
}

func (c *Client) ListModels(ctx context.Context) ([]ports.ModelInfo, error) {
	switch c.ProviderType {
	case "ollama":
		base := c.BaseURL
		if base == "" {
			base = "http://localhost:11434"
		}
		url := strings.TrimRight(base, "/") + "/api/tags"
		var resp struct {
			Models []struct {
				Name string `json:"name"`
			} `json:"models"`
		}
		r, err := c.http.R().SetContext(ctx).SetResult(&resp).Get(url)
		if err != nil {
			return nil, err
		}
		if r.IsError() {
			return nil, fmt.Errorf("ollama list models: %s; body: %s", r.Status(), r.String())
		}
		out := make([]ports.ModelInfo, 0, len(resp.Models))
		for _, m := range resp.Models {
			out = append(out, ports.ModelInfo{Name: m.Name})
		}
		return out, nil
	case "openrouter":
		base := c.BaseURL
		if base == "" {
			base = "https://openrouter.ai"
		}
		url := openRouterURL(base, "/models")
		var resp struct {
			Data []struct {
				ID            string `json:"id"`
				Name          string `json:"name"`
				ContextLength int    `json:"context_length"`
			} `json:"data"`
		}
		r := c.http.R().SetContext(ctx).
			SetHeader("Authorization", "Bearer "+c.APIKey).
			SetResult(&resp)
		rr, err := r.Get(url)
		if err != nil {
			return nil, err
		}
		if rr.IsError() {
			return nil, fmt.Errorf("openrouter list models: %s; body: %s", rr.Status(), rr.String())
		}
		out := make([]ports.ModelInfo, 0, len(resp.Data))
		for _, d := range resp.Data {
			label := d.Name
			if label == "" {
				label = d.ID
			}
			out = append(out, ports.ModelInfo{Name: d.ID, Description: label, ContextTokens: d.ContextLength})
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported provider: %s", c.ProviderType)
	}
}

func (c *Client) Test(ctx context.Context) error { _, err := c.ListModels(ctx); return err }

func (c *Client) chatOpenRouter(ctx context.Context, system, user, model string, temperature float64, wantJSON bool) (string, error) {
	base := c.BaseURL
	if base == "" {
		base = "https://openrouter.ai"
	}
	url := openRouterURL(base, "/chat/completions")
	if model == "" {
		model = c.Model
	}
	body := map[string]any{
		"model": model,
		"messages": []map[string]string{
			{"role": "system", "content": system},
			{"role": "user", "content": user},
		},
		"temperature": temperature,
	}
	if wantJSON {
		body["response_format"] = map[string]string{"type": "json_object"}
	}
	var resp struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	r := c.http.R().SetContext(ctx).
		SetHeader("Authorization", "Bearer "+c.APIKey).
		SetHeader("Content-Type", "application/json").
		SetBody(body).SetResult(&resp)
	rr, err := r.Post(url)
	if err != nil {
		return "", err
	}
	if rr.IsError() {
		// Some models reject response_format; retry without it
		if wantJSON && rr.StatusCode() == 400 {
			delete(body, "response_format")
			r = c.http.R().SetContext(ctx).
				SetHeader("Authorization", "Bearer "+c.APIKey).
				SetHeader("Content-Type", "application/json").
				SetBody(body).SetResult(&resp)
			rr2, err2 := r.Post(url)
			if err2 != nil {
				return "", err2
			}
			if rr2.IsError() {
				return "", fmt.Errorf("openrouter chat: %s; body: %s", rr2.Status(), rr2.String())
			}
		} else {
			return "", fmt.Errorf("openrouter chat: %s; body: %s", rr.Status(), rr.String())
		}
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices returned")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func (c *Client) chatOllama(ctx context.Context, system, user, model string, temperature float64, wantJSON bool) (string, error) {
	base := c.BaseURL
	if base == "" {
		base = "http://localhost:11434"
	}
	url := strings.TrimRight(base, "/") + "/api/chat"
	if model == "" {
		model = c.Model
	}
	body := map[string]any{
		"model": model,
		"messages": []map[string]string{
			{"role": "system", "content": system},
			{"role": "user", "content": user},
		},
		"stream":  false,
		"options": map[string]any{"temperature": temperature},
	}
	if wantJSON {
		body["format"] = "json"
	}
	var resp struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	}
	r := c.http.R().SetContext(ctx).SetHeader("Content-Type", "application/json").SetBody(body).SetResult(&resp)
	rr, err := r.Post(url)
	if err != nil {
		return "", err
	}
	if rr.IsError() {
		return "", fmt.Errorf("ollama chat: %s; body: %s", rr.Status(), rr.String())
	}
	return strings.TrimSpace(resp.Message.Content), nil
}

// parseTranslations extracts a key -> locale-set mapping from model output.
// Accepts a bare object, a {"translations": {...}} wrapper, and content
// wrapped in fenced code blocks or surrounding prose.
func parseTranslations(content string) (map[string]domain.TranslationSet, error) {
	s := strings.TrimSpace(content)
	if idx := strings.Index(s, "```"); idx >= 0 {
		rest := s[idx+3:]
		rest = strings.TrimPrefix(rest, "json")
		if j := strings.Index(rest, "```"); j >= 0 {
			s = strings.TrimSpace(rest[:j])
		}
	}
	if m, ok := decodeTranslationObject(s); ok {
		return m, nil
	}
	// Locate a JSON object within surrounding text
	if i := strings.Index(s, "{"); i >= 0 {
		if j := strings.LastIndex(s, "}"); j > i {
			if m, ok := decodeTranslationObject(s[i : j+1]); ok {
				return m, nil
			}
		}
	}
	return nil, fmt.Errorf("failed to parse translations JSON; content: %s", abbreviate(s, 2000))
}

func decodeTranslationObject(s string) (map[string]domain.TranslationSet, bool) {
	var wrapped struct {
		Translations map[string]domain.TranslationSet `json:"translations"`
	}
	if err := json.Unmarshal([]byte(s), &wrapped); err == nil && len(wrapped.Translations) > 0 {
		return wrapped.Translations, true
	}
	var direct map[string]domain.TranslationSet
	if err := json.Unmarshal([]byte(s), &direct); err == nil && len(direct) > 0 {
		return direct, true
	}
	return nil, false
}

// StripCodeFence removes a surrounding markdown code fence (with optional
// language token) from generated component source.
func StripCodeFence(content string) string {
	s := strings.TrimSpace(content)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = s[3:]
	// Strip language token like jsx, tsx, javascript
	if nl := strings.Index(s, "\n"); nl >= 0 {
		first := strings.TrimSpace(s[:nl])
		if first != "" && !strings.ContainsAny(first, " \t{(<") {
			s = s[nl+1:]
		}
	}
	if j := strings.LastIndex(s, "```"); j >= 0 {
		s = s[:j]
	}
	return strings.TrimSpace(s)
}

func abbreviate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}

// openRouterURL builds a URL for OpenRouter whether base contains /api/v1 or not.
func openRouterURL(base, tail string) string {
	b := strings.TrimRight(base, "/")
	if strings.Contains(b, "/api/v1") {
		idx := strings.Index(b, "/api/v1")
		b = b[:idx+len("/api/v1")]
		return b + tail
	}
	return b + "/api/v1" + tail
}
