package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/at-ishikawa/lingocard/internal/config"
	"github.com/at-ishikawa/lingocard/internal/gateway"
	"github.com/at-ishikawa/lingocard/internal/inference/openai"
	"github.com/at-ishikawa/lingocard/internal/session"
	"github.com/at-ishikawa/lingocard/internal/vocabulary"
)

// newMachine wires a session over the OpenAI backend. The returned func
// releases the backend client.
func newMachine(cfg *config.Config, flags *sessionFlags) (*session.Machine, func() error, error) {
	sessionConfig, err := flags.sessionConfig(cfg.Session)
	if err != nil {
		return nil, nil, err
	}
	words, err := vocabulary.Load(cfg.Session.SeedVocabularyFile)
	if err != nil {
		return nil, nil, fmt.Errorf("vocabulary.Load() > %w", err)
	}

	logger := slog.Default()
	openaiClient := openai.NewClient(cfg.OpenAI.APIKey, openai.Options{
		BaseURL:          cfg.OpenAI.BaseURL,
		Model:            cfg.OpenAI.Model,
		ImageModel:       cfg.OpenAI.ImageModel,
		SpeechModel:      cfg.OpenAI.SpeechModel,
		Voice:            cfg.OpenAI.Voice,
		Timeout:          cfg.OpenAI.Timeout,
		MaxRetryAttempts: cfg.OpenAI.MaxRetryAttempts,
	})
	logger.Debug("using OpenAI",
		"model", cfg.OpenAI.Model,
		"image_model", cfg.OpenAI.ImageModel,
		"speech_model", cfg.OpenAI.SpeechModel,
	)

	machine := session.NewMachine(
		gateway.New(openaiClient, gateway.WithLogger(logger)),
		sessionConfig,
		session.WithVocabulary(words),
		session.WithLogger(logger),
	)
	return machine, openaiClient.Close, nil
}

// runMachine returns a component running machine until ctx is done.
func runMachine(machine *session.Machine, recommendOnStart bool) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		if recommendOnStart {
			if err := machine.Dispatch(ctx, session.RefreshRecommendations{}); err != nil {
				return fmt.Errorf("machine.Dispatch() > %w", err)
			}
		}
		if err := machine.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("machine.Run() > %w", err)
		}
		return nil
	}
}
