package session

import (
	"context"

	"github.com/at-ishikawa/lingocard/internal/inference"
)

//go:generate mockgen -source=gateway.go -destination=../mocks/session/mock_gateway.go -package=mock_session

// Gateway is the set of backend operations the session drives.
// *gateway.Gateway implements it.
type Gateway interface {
	RecommendVocabulary(ctx context.Context, nativeLanguage inference.NativeLanguage, level inference.Level) ([]inference.Word, error)
	DeconstructEtymology(ctx context.Context, word string) (inference.Etymology, error)
	GenerateReviewDialogue(ctx context.Context, words []inference.Word) (inference.ReviewDialogue, error)
	SynthesizeSpeech(ctx context.Context, text string) (*inference.Audio, error)
	ContinueDialogue(ctx context.Context, history []inference.ChatTurn, text string) (string, error)
	AnalyzeImage(ctx context.Context, image inference.Image) (string, error)
	AnnotateText(ctx context.Context, text string, nativeLanguage inference.NativeLanguage) (inference.Annotation, error)
}
