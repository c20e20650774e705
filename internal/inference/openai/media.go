package openai

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/at-ishikawa/lingocard/internal/inference"
)

type ImageGenerationRequest struct {
	Model          string `json:"model"`
	Prompt         string `json:"prompt"`
	N              int    `json:"n"`
	Size           string `json:"size"`
	ResponseFormat string `json:"response_format"`
}

type ImageGenerationResponse struct {
	Created int64       `json:"created"`
	Data    []ImageData `json:"data"`
}

type ImageData struct {
	B64JSON       string `json:"b64_json"`
	RevisedPrompt string `json:"revised_prompt,omitempty"`
}

type SpeechRequest struct {
	Model          string `json:"model"`
	Input          string `json:"input"`
	Voice          string `json:"voice"`
	ResponseFormat string `json:"response_format"`
}

const speechMIMEType = "audio/mpeg"

// GenerateImage implements the inference.Client interface
func (client *Client) GenerateImage(
	ctx context.Context,
	params inference.GenerateImageRequest,
) (inference.Image, error) {
	const op = "generateImage"
	requestBody := ImageGenerationRequest{
		Model:          client.imageModel,
		Prompt:         fmt.Sprintf(illustrationPromptTemplate, params.Prompt),
		N:              1,
		Size:           "1024x1024",
		ResponseFormat: "b64_json",
	}

	var image inference.Image
	err := client.do(ctx, op, func() error {
		response, err := client.httpClient.R().
			SetContext(ctx).
			SetBody(requestBody).
			SetResult(&ImageGenerationResponse{}).
			Post("/images/generations")
		if err != nil {
			return inference.Unavailable(op, 0, fmt.Errorf("httpClient.Post > %w", err))
		}
		if response.IsError() {
			return inference.Unavailable(op, response.StatusCode(), fmt.Errorf("response error: %s", response.String()))
		}

		responseBody, _ := response.Result().(*ImageGenerationResponse)
		if responseBody == nil || len(responseBody.Data) == 0 || responseBody.Data[0].B64JSON == "" {
			return inference.Malformed(op, fmt.Errorf("no inline image data in response"))
		}
		if _, err := base64.StdEncoding.DecodeString(responseBody.Data[0].B64JSON); err != nil {
			return inference.Malformed(op, fmt.Errorf("base64.DecodeString > %w", err))
		}

		image = inference.Image{
			MIMEType: "image/png",
			Data:     responseBody.Data[0].B64JSON,
		}
		slog.Default().Debug("image generated",
			"purpose", params.Purpose,
			"bytes", len(image.Data),
		)
		return nil
	})
	return image, err
}

// SynthesizeSpeech implements the inference.Client interface.
// It returns nil without an error when the backend declines to produce audio.
func (client *Client) SynthesizeSpeech(
	ctx context.Context,
	params inference.SynthesizeSpeechRequest,
) (*inference.Audio, error) {
	const op = "synthesizeSpeech"
	requestBody := SpeechRequest{
		Model:          client.speechModel,
		Input:          params.Text,
		Voice:          client.voice,
		ResponseFormat: "mp3",
	}

	var audio *inference.Audio
	err := client.do(ctx, op, func() error {
		response, err := client.httpClient.R().
			SetContext(ctx).
			SetBody(requestBody).
			Post("/audio/speech")
		if err != nil {
			return inference.Unavailable(op, 0, fmt.Errorf("httpClient.Post > %w", err))
		}
		if response.IsError() {
			return inference.Unavailable(op, response.StatusCode(), fmt.Errorf("response error: %s", response.String()))
		}

		body := response.Bytes()
		if response.StatusCode() == http.StatusNoContent || len(body) == 0 {
			slog.Default().Debug("speech declined by backend", "text", params.Text)
			audio = nil
			return nil
		}

		audio = &inference.Audio{
			Text:     params.Text,
			MIMEType: speechMIMEType,
			Data:     base64.StdEncoding.EncodeToString(body),
		}
		return nil
	})
	return audio, err
}

// AnalyzeImage implements the inference.Client interface
func (client *Client) AnalyzeImage(
	ctx context.Context,
	params inference.AnalyzeImageRequest,
) (string, error) {
	mimeType := params.Image.MIMEType
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	dataURI := fmt.Sprintf("data:%s;base64,%s", mimeType, params.Image.Data)

	return client.chatCompletion(ctx, "analyzeImage", ChatCompletionRequest{
		Model:       client.model,
		Temperature: 0.2,
		Messages: []Message{
			{Role: RoleSystem, Content: analyzeImageSystemPrompt},
			{
				Role: RoleUser,
				Content: []ContentPart{
					{Type: "text", Text: "What Chinese text is in this picture?"},
					{Type: "image_url", ImageURL: &ImageURL{URL: dataURI}},
				},
			},
		},
	})
}
