package session

import (
	"fmt"
	"maps"
	"slices"

	"github.com/at-ishikawa/lingocard/internal/inference"
)

type View string

const (
	ViewRecommendation View = "recommendation"
	ViewEtymology      View = "etymology"
	ViewVocabulary     View = "vocabulary"
	ViewDialogue       View = "dialogue"
	ViewTranslation    View = "translation"
	ViewRecognition    View = "recognition"
)

var AllViews = []View{
	ViewRecommendation,
	ViewEtymology,
	ViewVocabulary,
	ViewDialogue,
	ViewTranslation,
	ViewRecognition,
}

func ParseView(s string) (View, error) {
	if slices.Contains(AllViews, View(s)) {
		return View(s), nil
	}
	return "", fmt.Errorf("unknown view %q, valid values are %v", s, AllViews)
}

type DialogueMode string

const (
	DialogueModeChat   DialogueMode = "chat"
	DialogueModeReview DialogueMode = "review"
)

// Config holds the learner's settings. It only affects recommendation and
// annotation fetches started after it changes.
type Config struct {
	NativeLanguage inference.NativeLanguage
	Level          inference.Level
}

type Recognition struct {
	Image       inference.Image
	Description string
}

// State is everything a presentation needs to render the session.
// Values returned from Machine.Snapshot are copies and safe to keep.
type State struct {
	SessionID string
	// Revision counts processed events. It increases by one for every action
	// or completion the loop handles, including ignored actions that leave
	// the rest of the state unchanged, so it orders snapshots rather than
	// signalling a change.
	Revision uint64
	View     View
	Config   Config

	Recommendations []inference.Word
	Vocabulary      []inference.Word
	Etymology       *inference.Etymology

	DialogueMode DialogueMode
	Chat         []inference.ChatTurn
	Review       *ReviewSession

	Annotation  *inference.Annotation
	Recognition *Recognition
	Audio       *inference.Audio

	Loading   bool
	LastError string
}

func (s State) SelectedWords() []inference.Word {
	var selected []inference.Word
	for _, word := range s.Vocabulary {
		if word.Selected {
			selected = append(selected, word)
		}
	}
	return selected
}

func (s State) Clone() State {
	clone := s
	clone.Recommendations = slices.Clone(s.Recommendations)
	clone.Vocabulary = slices.Clone(s.Vocabulary)
	clone.Chat = slices.Clone(s.Chat)
	if s.Etymology != nil {
		etymology := *s.Etymology
		etymology.Components = slices.Clone(s.Etymology.Components)
		clone.Etymology = &etymology
	}
	if s.Review != nil {
		review := s.Review.clone()
		clone.Review = &review
	}
	if s.Annotation != nil {
		annotation := *s.Annotation
		annotation.Tokens = slices.Clone(s.Annotation.Tokens)
		clone.Annotation = &annotation
	}
	if s.Recognition != nil {
		recognition := *s.Recognition
		clone.Recognition = &recognition
	}
	if s.Audio != nil {
		audio := *s.Audio
		clone.Audio = &audio
	}
	return clone
}

func indexOfWord(words []inference.Word, text string) int {
	return slices.IndexFunc(words, func(word inference.Word) bool {
		return word.Text == text
	})
}

func (r ReviewSession) clone() ReviewSession {
	clone := r
	clone.Words = slices.Clone(r.Words)
	clone.Lines = slices.Clone(r.Lines)
	clone.Answers = maps.Clone(r.Answers)
	return clone
}
