package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/at-ishikawa/lingocard/internal/config"
	"github.com/at-ishikawa/lingocard/internal/inference"
	"github.com/at-ishikawa/lingocard/internal/session"
)

type NativeLanguageFlag inference.NativeLanguage

// Set implements pflag.Value.
func (f *NativeLanguageFlag) Set(v string) error {
	nativeLanguage, err := inference.ParseNativeLanguage(v)
	if err != nil {
		return err
	}
	*f = NativeLanguageFlag(nativeLanguage)
	return nil
}

// String implements pflag.Value.
func (f *NativeLanguageFlag) String() string {
	if f == nil {
		return ""
	}
	return string(*f)
}

// Type implements pflag.Value.
func (f *NativeLanguageFlag) Type() string {
	return "NativeLanguage"
}

// LevelFlag accepts "HSK 3" or just 3.
type LevelFlag inference.Level

// Set implements pflag.Value.
func (f *LevelFlag) Set(v string) error {
	if _, err := strconv.Atoi(v); err == nil {
		v = "HSK " + v
	}
	level, err := inference.ParseLevel(v)
	if err != nil {
		return err
	}
	*f = LevelFlag(level)
	return nil
}

// String implements pflag.Value.
func (f *LevelFlag) String() string {
	if f == nil {
		return ""
	}
	return string(*f)
}

// Type implements pflag.Value.
func (f *LevelFlag) Type() string {
	return "Level"
}

var (
	_ pflag.Value = (*NativeLanguageFlag)(nil)
	_ pflag.Value = (*LevelFlag)(nil)
)

// sessionFlags override the session section of the config file.
type sessionFlags struct {
	nativeLanguage NativeLanguageFlag
	level          LevelFlag
}

func (f *sessionFlags) register(flags *pflag.FlagSet) {
	flags.Var(&f.nativeLanguage, "native-language", fmt.Sprintf("Native language. Possible values are %v", inference.AllNativeLanguages))
	flags.Var(&f.level, "level", fmt.Sprintf("HSK level. Possible values are 1 to 6 or %v", inference.AllLevels))
}

func (f *sessionFlags) sessionConfig(cfg config.SessionConfig) (session.Config, error) {
	nativeLanguage, err := inference.ParseNativeLanguage(cfg.NativeLanguage)
	if err != nil {
		return session.Config{}, fmt.Errorf("inference.ParseNativeLanguage() > %w", err)
	}
	level, err := inference.ParseLevel(cfg.Level)
	if err != nil {
		return session.Config{}, fmt.Errorf("inference.ParseLevel() > %w", err)
	}
	if f.nativeLanguage != "" {
		nativeLanguage = inference.NativeLanguage(f.nativeLanguage)
	}
	if f.level != "" {
		level = inference.Level(f.level)
	}
	return session.Config{
		NativeLanguage: nativeLanguage,
		Level:          level,
	}, nil
}
