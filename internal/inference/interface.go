package inference

import (
	"context"
)

//go:generate mockgen -source=interface.go -destination=../mocks/inference/mock_client.go -package=mock_inference

// Client interface defines the calls the generative-model backend accepts.
// Each method is exactly one request to the backend.
type Client interface {
	RecommendVocabulary(ctx context.Context, params RecommendVocabularyRequest) ([]Word, error)
	DeconstructEtymology(ctx context.Context, params DeconstructEtymologyRequest) (Etymology, error)
	GenerateReviewDialogue(ctx context.Context, params GenerateReviewDialogueRequest) (ReviewDialogue, error)
	GenerateImage(ctx context.Context, params GenerateImageRequest) (Image, error)
	SynthesizeSpeech(ctx context.Context, params SynthesizeSpeechRequest) (*Audio, error)
	ContinueDialogue(ctx context.Context, params ContinueDialogueRequest) (string, error)
	AnalyzeImage(ctx context.Context, params AnalyzeImageRequest) (string, error)
	AnnotateText(ctx context.Context, params AnnotateTextRequest) (Annotation, error)
}

type RecommendVocabularyRequest struct {
	NativeLanguage NativeLanguage
	Level          Level
	Count          int
}

type DeconstructEtymologyRequest struct {
	Word string
}

type GenerateReviewDialogueRequest struct {
	Words []Word
}

// GenerateImageRequest asks for one illustration. Purpose is only used for logging.
type GenerateImageRequest struct {
	Prompt  string
	Purpose string
}

type SynthesizeSpeechRequest struct {
	Text string
}

type ContinueDialogueRequest struct {
	History []ChatTurn
	Text    string
}

type AnalyzeImageRequest struct {
	Image Image
}

type AnnotateTextRequest struct {
	Text           string
	NativeLanguage NativeLanguage
}

const (
	DefaultRecommendationCount = 5
	DefaultMaxRetryAttempts    = 0
)
