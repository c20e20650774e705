package openai

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/at-ishikawa/lingocard/internal/inference"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"resty.dev/v3"
)

func newTestClient(serverURL string, maxRetryAttempts uint) *Client {
	return &Client{
		httpClient:       resty.New().SetBaseURL(serverURL),
		model:            "gpt-4",
		imageModel:       "dall-e-3",
		speechModel:      "tts-1",
		voice:            "alloy",
		maxRetryAttempts: maxRetryAttempts,
	}
}

func writeChatCompletion(t *testing.T, w http.ResponseWriter, content string) {
	t.Helper()
	mockResponse := ChatCompletionResponse{
		ID:      "chatcmpl-123",
		Object:  "chat.completion",
		Created: 1677652288,
		Model:   "gpt-4",
		Choices: []Choice{
			{
				Index: 0,
				Message: ChoiceMessage{
					Role:    RoleAssistant,
					Content: content,
				},
				FinishReason: "stop",
			},
		},
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	require.NoError(t, json.NewEncoder(w).Encode(mockResponse))
}

func TestClient_RecommendVocabulary(t *testing.T) {
	tests := []struct {
		name              string
		request           inference.RecommendVocabularyRequest
		mockServerHandler func(t *testing.T, w http.ResponseWriter, r *http.Request)

		wantResponse []inference.Word
		wantErrorIs  error
	}{
		{
			name: "Success",
			request: inference.RecommendVocabularyRequest{
				NativeLanguage: inference.NativeLanguageEnglish,
				Level:          inference.LevelHSK3,
			},
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/chat/completions", r.URL.Path)

				var reqBody ChatCompletionRequest
				require.NoError(t, json.NewDecoder(r.Body).Decode(&reqBody))
				assert.Equal(t, "gpt-4", reqBody.Model)
				require.NotNil(t, reqBody.ResponseFormat)
				assert.Equal(t, "json_schema", reqBody.ResponseFormat.Type)
				require.NotNil(t, reqBody.ResponseFormat.JSONSchema)
				assert.True(t, reqBody.ResponseFormat.JSONSchema.Strict)
				require.Len(t, reqBody.Messages, 2)
				assert.Contains(t, reqBody.Messages[1].Content, "Native language: English")
				assert.Contains(t, reqBody.Messages[1].Content, "Level: HSK 3")
				assert.Contains(t, reqBody.Messages[1].Content, "Number of words: 5")

				writeChatCompletion(t, w, `{"words": [
					{"word": "咖啡", "pinyin": "kāfēi", "meaning": "coffee", "cultural_note": "", "proficiency": 40, "category": "food"},
					{"word": "地铁", "pinyin": "dìtiě", "meaning": "subway", "cultural_note": "Most big cities have one.", "proficiency": 25, "category": "travel"}
				]}`)
			},
			wantResponse: []inference.Word{
				{Text: "咖啡", Phonetic: "kāfēi", Meaning: "coffee", Proficiency: 40, Category: "food"},
				{Text: "地铁", Phonetic: "dìtiě", Meaning: "subway", CulturalNote: "Most big cities have one.", Proficiency: 25, Category: "travel"},
			},
		},
		{
			name: "Malformed JSON content",
			request: inference.RecommendVocabularyRequest{
				NativeLanguage: inference.NativeLanguageEnglish,
				Level:          inference.LevelHSK1,
			},
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				writeChatCompletion(t, w, `{"words": [`)
			},
			wantErrorIs: inference.ErrMalformedResponse,
		},
		{
			name: "Empty choices",
			request: inference.RecommendVocabularyRequest{
				NativeLanguage: inference.NativeLanguageEnglish,
				Level:          inference.LevelHSK1,
			},
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"id": "chatcmpl-1", "choices": []}`))
			},
			wantErrorIs: inference.ErrMalformedResponse,
		},
		{
			name: "Server error",
			request: inference.RecommendVocabularyRequest{
				NativeLanguage: inference.NativeLanguageEnglish,
				Level:          inference.LevelHSK1,
			},
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(`{"error": {"message": "internal"}}`))
			},
			wantErrorIs: inference.ErrBackendUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				tt.mockServerHandler(t, w, r)
			}))
			defer server.Close()

			client := newTestClient(server.URL, 0)

			gotResponse, gotErr := client.RecommendVocabulary(context.Background(), tt.request)
			if tt.wantErrorIs != nil {
				assert.ErrorIs(t, gotErr, tt.wantErrorIs)
				return
			}
			require.NoError(t, gotErr)
			assert.Equal(t, tt.wantResponse, gotResponse)
		})
	}
}

func TestClient_RetryPolicy(t *testing.T) {
	tests := []struct {
		name             string
		maxRetryAttempts uint
		statusCode       int
		wantCalls        int32
	}{
		{
			name:             "no retries by default",
			maxRetryAttempts: 0,
			statusCode:       http.StatusServiceUnavailable,
			wantCalls:        1,
		},
		{
			name:             "retries transient failures when enabled",
			maxRetryAttempts: 2,
			statusCode:       http.StatusServiceUnavailable,
			wantCalls:        3,
		},
		{
			name:             "client errors are not retried",
			maxRetryAttempts: 2,
			statusCode:       http.StatusBadRequest,
			wantCalls:        1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				w.WriteHeader(tt.statusCode)
			}))
			defer server.Close()

			client := newTestClient(server.URL, tt.maxRetryAttempts)

			_, err := client.ContinueDialogue(context.Background(), inference.ContinueDialogueRequest{Text: "你好"})
			assert.ErrorIs(t, err, inference.ErrBackendUnavailable)

			var backendErr *inference.BackendError
			require.ErrorAs(t, err, &backendErr)
			assert.Equal(t, tt.statusCode, backendErr.StatusCode)
			assert.Equal(t, tt.wantCalls, calls.Load())
		})
	}
}

func TestClient_DeconstructEtymology(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var reqBody ChatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&reqBody))
		assert.Equal(t, "Word: 好", reqBody.Messages[1].Content)

		writeChatCompletion(t, w, `{
			"components": [
				{"fragment": "女", "meaning": "woman"},
				{"fragment": "子", "meaning": "child"}
			],
			"cultural_context": "A woman with a child was considered good."
		}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL, 0)
	got, err := client.DeconstructEtymology(context.Background(), inference.DeconstructEtymologyRequest{Word: "好"})
	require.NoError(t, err)
	assert.Equal(t, inference.Etymology{
		Word: "好",
		Components: []inference.EtymologyComponent{
			{Fragment: "女", Meaning: "woman"},
			{Fragment: "子", Meaning: "child"},
		},
		CulturalContext: "A woman with a child was considered good.",
	}, got)
}

func TestClient_GenerateReviewDialogue(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var reqBody ChatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&reqBody))
		assert.Contains(t, reqBody.Messages[1].Content, `"word":"咖啡"`)
		assert.Contains(t, reqBody.Messages[1].Content, `"word":"地铁"`)

		writeChatCompletion(t, w, `{
			"scenario": "Ordering at a café",
			"dialogue": [
				{"speaker": "assistant", "text": "你想喝什么？", "pinyin": "nǐ xiǎng hē shénme?", "translation": "What would you like to drink?", "blank_word": "", "hint_image_prompt": ""},
				{"speaker": "user", "text": "我想喝____。", "pinyin": "wǒ xiǎng hē kāfēi.", "translation": "I'd like a coffee.", "blank_word": "咖啡", "hint_image_prompt": "a cup of coffee"}
			]
		}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL, 0)
	got, err := client.GenerateReviewDialogue(context.Background(), inference.GenerateReviewDialogueRequest{
		Words: []inference.Word{{Text: "咖啡"}, {Text: "地铁"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Ordering at a café", got.Scenario)
	require.Len(t, got.Lines, 2)
	assert.Equal(t, inference.SpeakerAssistant, got.Lines[0].Speaker)
	assert.False(t, got.Lines[0].IsExercise())
	assert.True(t, got.Lines[1].IsExercise())
	assert.Equal(t, "咖啡", got.Lines[1].Blank)
	assert.Equal(t, "a cup of coffee", got.Lines[1].HintPrompt)
	assert.Nil(t, got.Lines[1].HintImage)
}

func TestClient_ContinueDialogue(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var reqBody ChatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&reqBody))
		assert.Nil(t, reqBody.ResponseFormat)
		require.Len(t, reqBody.Messages, 4)
		assert.Equal(t, RoleSystem, reqBody.Messages[0].Role)
		assert.Equal(t, RoleUser, reqBody.Messages[1].Role)
		assert.Equal(t, "你好", reqBody.Messages[1].Content)
		assert.Equal(t, RoleAssistant, reqBody.Messages[2].Role)
		assert.Equal(t, RoleUser, reqBody.Messages[3].Role)
		assert.Equal(t, "我很好", reqBody.Messages[3].Content)

		writeChatCompletion(t, w, "  太好了！\n tài hǎo le!\n Great!  ")
	}))
	defer server.Close()

	client := newTestClient(server.URL, 0)
	got, err := client.ContinueDialogue(context.Background(), inference.ContinueDialogueRequest{
		History: []inference.ChatTurn{
			{Role: inference.RoleUser, Text: "你好"},
			{Role: inference.RoleAssistant, Text: "你好！你好吗？"},
		},
		Text: "我很好",
	})
	require.NoError(t, err)
	assert.Equal(t, "太好了！\n tài hǎo le!\n Great!", got)
}

func TestClient_AnnotateText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeChatCompletion(t, w, `{"translation": "I love you", "tokens": [
			{"text": "我", "pinyin": "wǒ", "meaning": "I"},
			{"text": "爱", "pinyin": "ài", "meaning": "love"},
			{"text": "你", "pinyin": "nǐ", "meaning": "you"}
		]}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL, 0)
	got, err := client.AnnotateText(context.Background(), inference.AnnotateTextRequest{
		Text:           "我爱你",
		NativeLanguage: inference.NativeLanguageEnglish,
	})
	require.NoError(t, err)
	assert.Equal(t, "我爱你", got.Text)
	assert.Equal(t, "I love you", got.Translation)
	assert.Len(t, got.Tokens, 3)
}

func TestClient_GenerateImage(t *testing.T) {
	pngData := base64.StdEncoding.EncodeToString([]byte("\x89PNG fake"))

	tests := []struct {
		name        string
		response    string
		wantErrorIs error
	}{
		{
			name:     "Success",
			response: `{"created": 1, "data": [{"b64_json": "` + pngData + `"}]}`,
		},
		{
			name:        "No image data",
			response:    `{"created": 1, "data": []}`,
			wantErrorIs: inference.ErrMalformedResponse,
		},
		{
			name:        "Invalid base64",
			response:    `{"created": 1, "data": [{"b64_json": "%%%"}]}`,
			wantErrorIs: inference.ErrMalformedResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/images/generations", r.URL.Path)
				var reqBody ImageGenerationRequest
				require.NoError(t, json.NewDecoder(r.Body).Decode(&reqBody))
				assert.Equal(t, "dall-e-3", reqBody.Model)
				assert.Equal(t, "b64_json", reqBody.ResponseFormat)
				assert.Contains(t, reqBody.Prompt, "a cup of coffee")

				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(tt.response))
			}))
			defer server.Close()

			client := newTestClient(server.URL, 0)
			got, err := client.GenerateImage(context.Background(), inference.GenerateImageRequest{Prompt: "a cup of coffee"})
			if tt.wantErrorIs != nil {
				assert.ErrorIs(t, err, tt.wantErrorIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, inference.Image{MIMEType: "image/png", Data: pngData}, got)
		})
	}
}

func TestClient_SynthesizeSpeech(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       []byte
		want       *inference.Audio
	}{
		{
			name:       "Audio returned",
			statusCode: http.StatusOK,
			body:       []byte("ID3 fake mp3"),
			want: &inference.Audio{
				Text:     "你好",
				MIMEType: "audio/mpeg",
				Data:     base64.StdEncoding.EncodeToString([]byte("ID3 fake mp3")),
			},
		},
		{
			name:       "Backend declines",
			statusCode: http.StatusNoContent,
			want:       nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/audio/speech", r.URL.Path)
				var reqBody SpeechRequest
				require.NoError(t, json.NewDecoder(r.Body).Decode(&reqBody))
				assert.Equal(t, "你好", reqBody.Input)
				assert.Equal(t, "alloy", reqBody.Voice)

				w.Header().Set("Content-Type", "audio/mpeg")
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write(tt.body)
			}))
			defer server.Close()

			client := newTestClient(server.URL, 0)
			got, err := client.SynthesizeSpeech(context.Background(), inference.SynthesizeSpeechRequest{Text: "你好"})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClient_AnalyzeImage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var reqBody struct {
			Messages []struct {
				Role    Role            `json:"role"`
				Content json.RawMessage `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&reqBody))
		require.Len(t, reqBody.Messages, 2)

		var parts []ContentPart
		require.NoError(t, json.Unmarshal(reqBody.Messages[1].Content, &parts))
		require.Len(t, parts, 2)
		assert.Equal(t, "image_url", parts[1].Type)
		require.NotNil(t, parts[1].ImageURL)
		assert.Equal(t, "data:image/png;base64,aGVsbG8=", parts[1].ImageURL.URL)

		writeChatCompletion(t, w, "Street sign: 出口 (chūkǒu) - Exit")
	}))
	defer server.Close()

	client := newTestClient(server.URL, 0)
	got, err := client.AnalyzeImage(context.Background(), inference.AnalyzeImageRequest{
		Image: inference.Image{MIMEType: "image/png", Data: "aGVsbG8="},
	})
	require.NoError(t, err)
	assert.Equal(t, "Street sign: 出口 (chūkǒu) - Exit", got)
}
