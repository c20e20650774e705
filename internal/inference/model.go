package inference

import (
	"fmt"
	"slices"
)

type NativeLanguage string

const (
	NativeLanguageEnglish    NativeLanguage = "English"
	NativeLanguageSpanish    NativeLanguage = "Spanish"
	NativeLanguageFrench     NativeLanguage = "French"
	NativeLanguageGerman     NativeLanguage = "German"
	NativeLanguageJapanese   NativeLanguage = "Japanese"
	NativeLanguageKorean     NativeLanguage = "Korean"
	NativeLanguageRussian    NativeLanguage = "Russian"
	NativeLanguagePortuguese NativeLanguage = "Portuguese"
)

var AllNativeLanguages = []NativeLanguage{
	NativeLanguageEnglish,
	NativeLanguageSpanish,
	NativeLanguageFrench,
	NativeLanguageGerman,
	NativeLanguageJapanese,
	NativeLanguageKorean,
	NativeLanguageRussian,
	NativeLanguagePortuguese,
}

func ParseNativeLanguage(s string) (NativeLanguage, error) {
	if slices.Contains(AllNativeLanguages, NativeLanguage(s)) {
		return NativeLanguage(s), nil
	}
	return "", fmt.Errorf("unknown native language %q, valid values are %v", s, AllNativeLanguages)
}

type Level string

const (
	LevelHSK1 Level = "HSK 1"
	LevelHSK2 Level = "HSK 2"
	LevelHSK3 Level = "HSK 3"
	LevelHSK4 Level = "HSK 4"
	LevelHSK5 Level = "HSK 5"
	LevelHSK6 Level = "HSK 6"
)

var AllLevels = []Level{LevelHSK1, LevelHSK2, LevelHSK3, LevelHSK4, LevelHSK5, LevelHSK6}

func ParseLevel(s string) (Level, error) {
	if slices.Contains(AllLevels, Level(s)) {
		return Level(s), nil
	}
	return "", fmt.Errorf("unknown level %q, valid values are %v", s, AllLevels)
}

// Word is one vocabulary entry. Favorite and Selected are client-side flags
// and are never sent by the backend.
type Word struct {
	Text         string `json:"word" yaml:"text" validate:"required"`
	Phonetic     string `json:"pinyin" yaml:"phonetic" validate:"required"`
	Meaning      string `json:"meaning" yaml:"meaning" validate:"required"`
	CulturalNote string `json:"cultural_note,omitempty" yaml:"cultural_note,omitempty"`
	Proficiency  int    `json:"proficiency" yaml:"proficiency" validate:"min=0,max=100"`
	Category     string `json:"category,omitempty" yaml:"category,omitempty"`
	Favorite     bool   `json:"favorite,omitempty" yaml:"-"`
	Selected     bool   `json:"selected,omitempty" yaml:"-"`
}

const (
	MinProficiency = 0
	MaxProficiency = 100
)

type Etymology struct {
	Word            string               `json:"word"`
	Components      []EtymologyComponent `json:"components" validate:"min=1,dive"`
	CulturalContext string               `json:"cultural_context"`
}

type EtymologyComponent struct {
	Fragment string `json:"fragment" validate:"required"`
	Meaning  string `json:"meaning"`
	Image    *Image `json:"image,omitempty"`
}

type Speaker string

const (
	SpeakerUser      Speaker = "user"
	SpeakerAssistant Speaker = "assistant"
)

type ReviewDialogue struct {
	Scenario string         `json:"scenario"`
	Lines    []DialogueLine `json:"dialogue" validate:"min=1,dive"`
}

// DialogueLine is one line of a review dialogue. A line with a non-empty
// Blank is an exercise: Text contains the sentence with the blank word removed.
type DialogueLine struct {
	Speaker     Speaker `json:"speaker" validate:"oneof=user assistant"`
	Text        string  `json:"text" validate:"required"`
	Phonetic    string  `json:"pinyin,omitempty"`
	Translation string  `json:"translation,omitempty"`
	Blank       string  `json:"blank_word,omitempty"`
	HintPrompt  string  `json:"hint_image_prompt,omitempty"`
	HintImage   *Image  `json:"hint_image,omitempty"`
}

func (line DialogueLine) IsExercise() bool {
	return line.Speaker == SpeakerUser && line.Blank != ""
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type ChatTurn struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// Image is an inline image. Data is base64 encoded.
type Image struct {
	MIMEType string `json:"mime_type"`
	Data     string `json:"data"`
}

// Audio is an inline audio payload. Data is base64 encoded.
type Audio struct {
	Text     string `json:"text"`
	MIMEType string `json:"mime_type"`
	Data     string `json:"data"`
}

type Annotation struct {
	Text        string            `json:"text"`
	Translation string            `json:"translation" validate:"required"`
	Tokens      []AnnotationToken `json:"tokens"`
}

type AnnotationToken struct {
	Text     string `json:"text"`
	Phonetic string `json:"pinyin"`
	Meaning  string `json:"meaning"`
}
