package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/at-ishikawa/lingocard/internal/config"
	"github.com/at-ishikawa/lingocard/internal/inference"
	mock_session "github.com/at-ishikawa/lingocard/internal/mocks/session"
	"github.com/at-ishikawa/lingocard/internal/server"
	"github.com/at-ishikawa/lingocard/internal/session"
)

// setConfigFile sets the global configFile variable and registers a cleanup to restore it.
func setConfigFile(t *testing.T, cfgPath string) {
	t.Helper()
	oldConfigFile := configFile
	configFile = cfgPath
	t.Cleanup(func() { configFile = oldConfigFile })
}

func writeFile(t *testing.T, name string, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		debugMode bool
		wantLevel slog.Level
	}{
		{
			name:      "debug mode enabled",
			debugMode: true,
			wantLevel: slog.LevelDebug,
		},
		{
			name:      "debug mode disabled",
			debugMode: false,
			wantLevel: slog.LevelInfo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupLogger(tt.debugMode)
			logger := slog.Default()
			assert.NotNil(t, logger)
			assert.Equal(t, tt.wantLevel <= slog.LevelDebug, logger.Enabled(context.Background(), slog.LevelDebug))
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "test-key")

	t.Run("valid config file", func(t *testing.T) {
		setConfigFile(t, writeFile(t, "config.yml", "session:\n  level: HSK 5\n"))
		cfg, err := loadConfig()
		require.NoError(t, err)
		assert.Equal(t, "HSK 5", cfg.Session.Level)
	})

	t.Run("broken config file", func(t *testing.T) {
		setConfigFile(t, writeFile(t, "config.yml", "{{invalid yaml content"))
		_, err := loadConfig()
		assert.Error(t, err)
	})
}

func TestNewRootCommand(t *testing.T) {
	setConfigFile(t, configFile)
	cmd := newRootCommand()

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"serve", "study"}, names)
	for _, name := range []string{"config", "debug"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}

	cmd.SetArgs([]string{"study", "--unknown-flag"})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	assert.ErrorContains(t, cmd.Execute(), "unknown flag")
}

func TestNewServeCommand(t *testing.T) {
	cmd := newServeCommand()

	assert.Equal(t, "serve", cmd.Use)
	assert.NotNil(t, cmd.RunE)
	for _, name := range []string{"native-language", "level", "port"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
}

func TestNewStudyCommand(t *testing.T) {
	cmd := newStudyCommand()

	assert.Equal(t, "study", cmd.Use)
	assert.NotNil(t, cmd.RunE)
	for _, name := range []string{"native-language", "level", "server", "audio-dir"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
}

func TestStudyCommand_Server(t *testing.T) {
	ctrl := gomock.NewController(t)
	gateway := mock_session.NewMockGateway(ctrl)
	seed := inference.Word{Text: "茶", Phonetic: "chá", Meaning: "tea", Proficiency: 80}

	machine := session.NewMachine(gateway, session.Config{
		NativeLanguage: inference.NativeLanguageEnglish,
		Level:          inference.LevelHSK3,
	}, session.WithVocabulary([]inference.Word{seed}))
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- runMachine(machine, false)(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		assert.NoError(t, <-done)
	})

	handler, err := server.NewStudyHandler(machine, nil)
	require.NoError(t, err)
	srv := httptest.NewServer(server.NewHTTPHandler(handler, nil))
	t.Cleanup(srv.Close)

	cmd := newStudyCommand()
	var stdout bytes.Buffer
	cmd.SetIn(strings.NewReader(":view vocabulary\n:select 1\n:quit\n"))
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{"--server", srv.URL, "--audio-dir", t.TempDir()})
	require.NoError(t, cmd.ExecuteContext(context.Background()))

	assert.Contains(t, stdout.String(), "Vocabulary book")
	assert.Contains(t, stdout.String(), "1 selected for review")
	assert.Equal(t, []string{seed.Text}, wordTexts(machine.Snapshot().SelectedWords()))
}

func TestRunMachine(t *testing.T) {
	ctrl := gomock.NewController(t)
	gateway := mock_session.NewMockGateway(ctrl)
	recommended := []inference.Word{{Text: "咖啡", Phonetic: "kāfēi", Meaning: "coffee", Proficiency: 20}}
	gateway.EXPECT().
		RecommendVocabulary(gomock.Any(), inference.NativeLanguageKorean, inference.LevelHSK2).
		Return(recommended, nil).
		Times(1)

	machine := session.NewMachine(gateway, session.Config{
		NativeLanguage: inference.NativeLanguageKorean,
		Level:          inference.LevelHSK2,
	})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- runMachine(machine, true)(ctx)
	}()

	require.Eventually(t, func() bool {
		return len(machine.Snapshot().Recommendations) == 1
	}, 2*time.Second, time.Millisecond)
	cancel()
	assert.NoError(t, <-done)
}

func TestSessionFlags_SessionConfig(t *testing.T) {
	cfg := config.SessionConfig{
		NativeLanguage: "English",
		Level:          "HSK 3",
	}
	tests := []struct {
		name    string
		args    []string
		cfg     config.SessionConfig
		want    session.Config
		wantErr bool
	}{
		{
			name: "config file values",
			cfg:  cfg,
			want: session.Config{NativeLanguage: inference.NativeLanguageEnglish, Level: inference.LevelHSK3},
		},
		{
			name: "flags override the config file",
			args: []string{"--native-language", "Spanish", "--level", "6"},
			cfg:  cfg,
			want: session.Config{NativeLanguage: inference.NativeLanguageSpanish, Level: inference.LevelHSK6},
		},
		{
			name: "level name",
			args: []string{"--level", "HSK 1"},
			cfg:  cfg,
			want: session.Config{NativeLanguage: inference.NativeLanguageEnglish, Level: inference.LevelHSK1},
		},
		{
			name:    "invalid level in the config file",
			cfg:     config.SessionConfig{NativeLanguage: "English", Level: "HSK 9"},
			wantErr: true,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var flags sessionFlags
			flagSet := pflag.NewFlagSet(tc.name, pflag.ContinueOnError)
			flags.register(flagSet)
			require.NoError(t, flagSet.Parse(tc.args))

			got, err := flags.sessionConfig(tc.cfg)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNativeLanguageFlag_Set(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    NativeLanguageFlag
		wantErr bool
	}{
		{
			name:  "valid native language",
			value: "Japanese",
			want:  NativeLanguageFlag(inference.NativeLanguageJapanese),
		},
		{
			name:    "invalid native language",
			value:   "Klingon",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var flag NativeLanguageFlag
			err := flag.Set(tt.value)
			if tt.wantErr {
				assert.ErrorContains(t, err, "unknown native language")
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, flag)
			assert.Equal(t, tt.value, flag.String())
			assert.Equal(t, "NativeLanguage", flag.Type())
		})
	}
}

func TestLevelFlag_Set(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    LevelFlag
		wantErr bool
	}{
		{
			name:  "number",
			value: "4",
			want:  LevelFlag(inference.LevelHSK4),
		},
		{
			name:  "level name",
			value: "HSK 2",
			want:  LevelFlag(inference.LevelHSK2),
		},
		{
			name:    "out of range",
			value:   "0",
			wantErr: true,
		},
		{
			name:    "invalid level",
			value:   "beginner",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var flag LevelFlag
			err := flag.Set(tt.value)
			if tt.wantErr {
				assert.ErrorContains(t, err, "unknown level")
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, flag)
			assert.Equal(t, "Level", flag.Type())
		})
	}
}

func wordTexts(words []inference.Word) []string {
	texts := make([]string, 0, len(words))
	for _, word := range words {
		texts = append(texts, word.Text)
	}
	return texts
}
