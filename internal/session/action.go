package session

import (
	"github.com/at-ishikawa/lingocard/internal/inference"
)

// Action is a user intent dispatched to a Machine.
type Action interface {
	actionName() string
}

type Navigate struct {
	View View
}

type SetNativeLanguage struct {
	NativeLanguage inference.NativeLanguage
}

type SetLevel struct {
	Level inference.Level
}

type RefreshRecommendations struct{}

// ExploreWord fetches the etymology of Word and shows it once it arrives.
type ExploreWord struct {
	Word string
}

type ToggleFavorite struct {
	Word string
}

type ToggleSelected struct {
	Word string
}

// StartReview generates a review dialogue over the selected vocabulary words.
type StartReview struct{}

type SubmitAnswer struct {
	Word string
}

type ExitReview struct{}

type SendChat struct {
	Text string
}

type Speak struct {
	Text string
}

type Annotate struct {
	Text string
}

type Recognize struct {
	Image inference.Image
}

func (Navigate) actionName() string               { return "navigate" }
func (SetNativeLanguage) actionName() string      { return "setNativeLanguage" }
func (SetLevel) actionName() string               { return "setLevel" }
func (RefreshRecommendations) actionName() string { return "refreshRecommendations" }
func (ExploreWord) actionName() string            { return "exploreWord" }
func (ToggleFavorite) actionName() string         { return "toggleFavorite" }
func (ToggleSelected) actionName() string         { return "toggleSelected" }
func (StartReview) actionName() string            { return "startReview" }
func (SubmitAnswer) actionName() string           { return "submitAnswer" }
func (ExitReview) actionName() string             { return "exitReview" }
func (SendChat) actionName() string               { return "sendChat" }
func (Speak) actionName() string                  { return "speak" }
func (Annotate) actionName() string               { return "annotate" }
func (Recognize) actionName() string              { return "recognize" }

// ActionName returns the name an action is dispatched and logged under.
func ActionName(action Action) string {
	return action.actionName()
}
