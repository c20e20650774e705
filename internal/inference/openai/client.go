package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/at-ishikawa/lingocard/internal/inference"
	"github.com/avast/retry-go"
	"resty.dev/v3"
)

const (
	DefaultBaseURL     = "https://api.openai.com/v1"
	DefaultModel       = "gpt-4o-mini"
	DefaultImageModel  = "dall-e-3"
	DefaultSpeechModel = "tts-1"
	DefaultVoice       = "alloy"
	DefaultTimeout     = 60 * time.Second
)

type Options struct {
	BaseURL          string
	Model            string
	ImageModel       string
	SpeechModel      string
	Voice            string
	Timeout          time.Duration
	MaxRetryAttempts uint
}

type Client struct {
	httpClient       *resty.Client
	model            string
	imageModel       string
	speechModel      string
	voice            string
	maxRetryAttempts uint
}

var _ inference.Client = (*Client)(nil)

func NewClient(apiKey string, options Options) *Client {
	if options.BaseURL == "" {
		options.BaseURL = DefaultBaseURL
	}
	if options.Model == "" {
		options.Model = DefaultModel
	}
	if options.ImageModel == "" {
		options.ImageModel = DefaultImageModel
	}
	if options.SpeechModel == "" {
		options.SpeechModel = DefaultSpeechModel
	}
	if options.Voice == "" {
		options.Voice = DefaultVoice
	}
	if options.Timeout == 0 {
		options.Timeout = DefaultTimeout
	}

	client := resty.New()
	client.SetBaseURL(options.BaseURL)
	client.SetHeader("Authorization", "Bearer "+apiKey)
	client.SetHeader("Content-Type", "application/json")
	client.SetTimeout(options.Timeout)

	return &Client{
		httpClient:       client,
		model:            options.Model,
		imageModel:       options.ImageModel,
		speechModel:      options.SpeechModel,
		voice:            options.Voice,
		maxRetryAttempts: options.MaxRetryAttempts,
	}
}

func (client *Client) Close() error {
	return client.httpClient.Close()
}

// GetModel returns the chat model name configured for this client
func (client *Client) GetModel() string {
	return client.model
}

type ChatCompletionRequest struct {
	Model          string          `json:"model"`
	Messages       []Message       `json:"messages"`
	Temperature    float32         `json:"temperature,omitempty"`
	ResponseFormat *ResponseFormat `json:"response_format,omitempty"`
}

// Message content is either a string or a list of ContentPart.
type Message struct {
	Role    Role `json:"role"`
	Content any  `json:"content"`
}

type ContentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *ImageURL `json:"image_url,omitempty"`
}

type ImageURL struct {
	URL string `json:"url"`
}

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type ResponseFormat struct {
	Type       string      `json:"type"`
	JSONSchema *JSONSchema `json:"json_schema,omitempty"`
}

type JSONSchema struct {
	Name   string          `json:"name"`
	Strict bool            `json:"strict"`
	Schema json.RawMessage `json:"schema"`
}

type ChatCompletionResponse struct {
	ID      string   `json:"id"`
	Object  string   `json:"object"`
	Created int64    `json:"created"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
	Usage   Usage    `json:"usage"`
}

type Choice struct {
	Index        int           `json:"index"`
	Message      ChoiceMessage `json:"message"`
	FinishReason string        `json:"finish_reason"`
}

type ChoiceMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
	Refusal string `json:"refusal,omitempty"`
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// do runs call under the retry policy. With the default of zero retry
// attempts, call runs exactly once.
func (client *Client) do(ctx context.Context, op string, call func() error) error {
	err := retry.Do(
		func() error {
			err := call()
			if err == nil {
				return nil
			}
			var backendErr *inference.BackendError
			if errors.As(err, &backendErr) && backendErr.Retryable() {
				return err
			}
			return retry.Unrecoverable(err)
		},
		retry.Context(ctx),
		retry.Attempts(client.maxRetryAttempts+1),
		retry.LastErrorOnly(true),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
		retry.OnRetry(func(n uint, err error) {
			slog.Default().Info("Retrying backend call",
				"op", op,
				"attempt", n+1,
				"error", err,
			)
		}),
	)
	if err == nil {
		return nil
	}
	var backendErr *inference.BackendError
	if !errors.As(err, &backendErr) {
		return inference.Unavailable(op, 0, err)
	}
	return err
}

func (client *Client) chatCompletion(ctx context.Context, op string, requestBody ChatCompletionRequest) (string, error) {
	var content string
	err := client.do(ctx, op, func() error {
		response, err := client.httpClient.R().
			SetContext(ctx).
			SetBody(requestBody).
			SetResult(&ChatCompletionResponse{}).
			Post("/chat/completions")
		if err != nil {
			return inference.Unavailable(op, 0, fmt.Errorf("httpClient.Post > %w", err))
		}
		if response.IsError() {
			return inference.Unavailable(op, response.StatusCode(), fmt.Errorf("response error: %s", response.String()))
		}

		responseBody, _ := response.Result().(*ChatCompletionResponse)
		if responseBody == nil || len(responseBody.Choices) == 0 {
			return inference.Malformed(op, fmt.Errorf("empty response body or choices: %s", response.String()))
		}
		message := responseBody.Choices[0].Message
		if message.Refusal != "" {
			return inference.Malformed(op, fmt.Errorf("request refused: %s", message.Refusal))
		}
		content = strings.TrimSpace(message.Content)
		if content == "" {
			return inference.Malformed(op, fmt.Errorf("empty response content: %s", response.String()))
		}

		slog.Default().Debug("chat completion response",
			"op", op,
			"model", requestBody.Model,
			"response", content,
		)
		return nil
	})
	return content, err
}

// structuredCompletion asks for a JSON document matching schema and decodes it into T.
func structuredCompletion[T any](
	ctx context.Context,
	client *Client,
	op string,
	schemaName string,
	schema string,
	systemPrompt string,
	userMessage string,
) (T, error) {
	var decoded T
	content, err := client.chatCompletion(ctx, op, ChatCompletionRequest{
		Model:       client.model,
		Temperature: 0.7,
		Messages: []Message{
			{Role: RoleSystem, Content: systemPrompt},
			{Role: RoleUser, Content: userMessage},
		},
		ResponseFormat: &ResponseFormat{
			Type: "json_schema",
			JSONSchema: &JSONSchema{
				Name:   schemaName,
				Strict: true,
				Schema: json.RawMessage(schema),
			},
		},
	})
	if err != nil {
		return decoded, err
	}

	if err := json.NewDecoder(strings.NewReader(content)).Decode(&decoded); err != nil {
		return decoded, inference.Malformed(op, fmt.Errorf("json.Unmarshal(%s) > %w", content, err))
	}
	return decoded, nil
}
