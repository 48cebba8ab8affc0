package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/bryanwahyu/medscan/internal/domain/ai"
)

const (
	maxTokens = 8192

	// DefaultModel is used when no model is configured.
	DefaultModel = "gemini-1.5-flash"
	// DefaultBaseURL is Gemini's OpenAI-compatible endpoint.
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai"
)

// Messages the provider uses when it cannot find anything to analyze in the payload.
var unreadableMarkers = []string{
	"could not find image content",
	"unable to process input image",
	"provided image is not valid",
}

type Client struct {
	*openai.Client
	Model string
}

// NewClient builds a chat-completions client. Empty baseURL or model fall
// back to the Gemini defaults; timeout <= 0 leaves the HTTP client unbounded.
func NewClient(apiKey, baseURL, model string, timeout time.Duration) *Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(baseURL, "/")
	cfg.HTTPClient = &http.Client{Timeout: timeout}
	if model == "" {
		model = DefaultModel
	}
	return &Client{Client: openai.NewClientWithConfig(cfg), Model: model}
}

// Generate sends parts as one user message, text parts as text and inline
// parts as data URLs, preserving their order.
func (c *Client) Generate(ctx context.Context, parts []ai.Part) (string, error) {
	content := make([]openai.ChatMessagePart, 0, len(parts))
	for _, p := range parts {
		if p.IsInline() {
			content = append(content, openai.ChatMessagePart{
				Type: openai.ChatMessagePartTypeImageURL,
				ImageURL: &openai.ChatMessageImageURL{
					URL:    p.DataURL(),
					Detail: openai.ImageURLDetailAuto,
				},
			})
			continue
		}
		content = append(content, openai.ChatMessagePart{
			Type: openai.ChatMessagePartTypeText,
			Text: p.Text,
		})
	}

	req := openai.ChatCompletionRequest{
		Model: c.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, MultiContent: content},
		},
	}
	// For reasoning models (o1/o3/o4/gpt-5*) use MaxCompletionTokens instead of MaxTokens
	if isReasoningModel(c.Model) {
		req.MaxCompletionTokens = maxTokens
	} else {
		req.MaxTokens = maxTokens
	}

	resp, err := c.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", classify(err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

func isReasoningModel(model string) bool {
	for _, p := range []string{"o1", "o3", "o4", "gpt-5"} {
		if strings.HasPrefix(model, p) {
			return true
		}
	}
	return false
}

// classify maps provider failures onto the domain sentinels.
func classify(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("%w: %w", ai.ErrQuotaExceeded, err)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) && reqErr.HTTPStatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("%w: %w", ai.ErrQuotaExceeded, err)
	}

	msg := strings.ToLower(err.Error())
	for _, m := range unreadableMarkers {
		if strings.Contains(msg, m) {
			return fmt.Errorf("%w: %w", ai.ErrUnreadableContent, err)
		}
	}
	return fmt.Errorf("failed to create chat completion: %w", err)
}
