// Package gateway is the single entry point from the study session to the
// generative-model backend. Each method is one logical round trip: a primary
// call, plus for etymologies and review dialogues one dependent illustration
// call per item, made sequentially and allowed to fail on its own.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/at-ishikawa/lingocard/internal/inference"
	"github.com/go-playground/validator/v10"
)

var ErrEmptyInput = errors.New("empty input")

type Gateway struct {
	client              inference.Client
	validate            *validator.Validate
	logger              *slog.Logger
	recommendationCount int
}

type Option func(*Gateway)

func WithLogger(logger *slog.Logger) Option {
	return func(g *Gateway) {
		g.logger = logger
	}
}

func WithRecommendationCount(count int) Option {
	return func(g *Gateway) {
		g.recommendationCount = count
	}
}

func New(client inference.Client, options ...Option) *Gateway {
	g := &Gateway{
		client:              client,
		validate:            validator.New(validator.WithRequiredStructEnabled()),
		logger:              slog.Default(),
		recommendationCount: inference.DefaultRecommendationCount,
	}
	for _, option := range options {
		option(g)
	}
	return g
}

// RecommendVocabulary returns the backend's recommendations. A single invalid
// word rejects the whole response.
func (g *Gateway) RecommendVocabulary(
	ctx context.Context,
	nativeLanguage inference.NativeLanguage,
	level inference.Level,
) ([]inference.Word, error) {
	words, err := g.client.RecommendVocabulary(ctx, inference.RecommendVocabularyRequest{
		NativeLanguage: nativeLanguage,
		Level:          level,
		Count:          g.recommendationCount,
	})
	if err != nil {
		return nil, fmt.Errorf("client.RecommendVocabulary() > %w", err)
	}

	for i, word := range words {
		if err := g.validate.Struct(word); err != nil {
			return nil, inference.Malformed("recommendVocabulary", fmt.Errorf("word[%d] %q: %w", i, word.Text, err))
		}
	}
	return words, nil
}

func (g *Gateway) DeconstructEtymology(ctx context.Context, word string) (inference.Etymology, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return inference.Etymology{}, fmt.Errorf("word: %w", ErrEmptyInput)
	}

	etymology, err := g.client.DeconstructEtymology(ctx, inference.DeconstructEtymologyRequest{Word: word})
	if err != nil {
		return inference.Etymology{}, fmt.Errorf("client.DeconstructEtymology() > %w", err)
	}
	if err := g.validate.Struct(etymology); err != nil {
		return inference.Etymology{}, inference.Malformed("deconstructEtymology", err)
	}

	g.illustrate(ctx, "deconstructEtymology", componentIllustrations(&etymology))
	return etymology, nil
}

func (g *Gateway) GenerateReviewDialogue(ctx context.Context, words []inference.Word) (inference.ReviewDialogue, error) {
	if len(words) == 0 {
		return inference.ReviewDialogue{}, fmt.Errorf("words: %w", ErrEmptyInput)
	}

	dialogue, err := g.client.GenerateReviewDialogue(ctx, inference.GenerateReviewDialogueRequest{Words: words})
	if err != nil {
		return inference.ReviewDialogue{}, fmt.Errorf("client.GenerateReviewDialogue() > %w", err)
	}
	if err := g.validate.Struct(dialogue); err != nil {
		return inference.ReviewDialogue{}, inference.Malformed("generateReviewDialogue", err)
	}

	for i := range dialogue.Lines {
		line := &dialogue.Lines[i]
		line.Blank = strings.TrimSpace(line.Blank)
		if !line.IsExercise() {
			line.Blank = ""
			line.HintPrompt = ""
		}
	}

	g.illustrate(ctx, "generateReviewDialogue", hintIllustrations(&dialogue))
	return dialogue, nil
}

// SynthesizeSpeech returns nil audio when the backend declines.
func (g *Gateway) SynthesizeSpeech(ctx context.Context, text string) (*inference.Audio, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("text: %w", ErrEmptyInput)
	}

	audio, err := g.client.SynthesizeSpeech(ctx, inference.SynthesizeSpeechRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("client.SynthesizeSpeech() > %w", err)
	}
	return audio, nil
}

func (g *Gateway) ContinueDialogue(ctx context.Context, history []inference.ChatTurn, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("text: %w", ErrEmptyInput)
	}

	reply, err := g.client.ContinueDialogue(ctx, inference.ContinueDialogueRequest{
		History: append([]inference.ChatTurn(nil), history...),
		Text:    text,
	})
	if err != nil {
		return "", fmt.Errorf("client.ContinueDialogue() > %w", err)
	}
	return reply, nil
}

func (g *Gateway) AnalyzeImage(ctx context.Context, image inference.Image) (string, error) {
	if image.Data == "" {
		return "", fmt.Errorf("image: %w", ErrEmptyInput)
	}

	description, err := g.client.AnalyzeImage(ctx, inference.AnalyzeImageRequest{Image: image})
	if err != nil {
		return "", fmt.Errorf("client.AnalyzeImage() > %w", err)
	}
	return description, nil
}

func (g *Gateway) AnnotateText(
	ctx context.Context,
	text string,
	nativeLanguage inference.NativeLanguage,
) (inference.Annotation, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return inference.Annotation{}, fmt.Errorf("text: %w", ErrEmptyInput)
	}

	annotation, err := g.client.AnnotateText(ctx, inference.AnnotateTextRequest{
		Text:           text,
		NativeLanguage: nativeLanguage,
	})
	if err != nil {
		return inference.Annotation{}, fmt.Errorf("client.AnnotateText() > %w", err)
	}
	if err := g.validate.Struct(annotation); err != nil {
		return inference.Annotation{}, inference.Malformed("annotateText", err)
	}
	return annotation, nil
}
