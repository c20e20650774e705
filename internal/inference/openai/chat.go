package openai

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/at-ishikawa/lingocard/internal/inference"
)

// RecommendVocabulary implements the inference.Client interface
func (client *Client) RecommendVocabulary(
	ctx context.Context,
	params inference.RecommendVocabularyRequest,
) ([]inference.Word, error) {
	count := params.Count
	if count <= 0 {
		count = inference.DefaultRecommendationCount
	}
	userMessage := fmt.Sprintf(`Native language: %s
Level: %s
Number of words: %d`, params.NativeLanguage, params.Level, count)

	type payload struct {
		Words []inference.Word `json:"words"`
	}
	decoded, err := structuredCompletion[payload](
		ctx, client, "recommendVocabulary", "vocabulary_recommendation",
		recommendVocabularySchema, recommendVocabularySystemPrompt, userMessage,
	)
	if err != nil {
		return nil, err
	}

	for i := range decoded.Words {
		decoded.Words[i].Favorite = false
		decoded.Words[i].Selected = false
	}
	return decoded.Words, nil
}

// DeconstructEtymology implements the inference.Client interface.
// Component images are left empty; they are resolved by separate GenerateImage calls.
func (client *Client) DeconstructEtymology(
	ctx context.Context,
	params inference.DeconstructEtymologyRequest,
) (inference.Etymology, error) {
	decoded, err := structuredCompletion[inference.Etymology](
		ctx, client, "deconstructEtymology", "etymology",
		deconstructEtymologySchema, deconstructEtymologySystemPrompt, "Word: "+params.Word,
	)
	if err != nil {
		return inference.Etymology{}, err
	}

	decoded.Word = params.Word
	for i := range decoded.Components {
		decoded.Components[i].Image = nil
	}
	return decoded, nil
}

// GenerateReviewDialogue implements the inference.Client interface
func (client *Client) GenerateReviewDialogue(
	ctx context.Context,
	params inference.GenerateReviewDialogueRequest,
) (inference.ReviewDialogue, error) {
	type targetWord struct {
		Word    string `json:"word"`
		Pinyin  string `json:"pinyin"`
		Meaning string `json:"meaning"`
	}
	targets := make([]targetWord, 0, len(params.Words))
	for _, word := range params.Words {
		targets = append(targets, targetWord{
			Word:    word.Text,
			Pinyin:  word.Phonetic,
			Meaning: word.Meaning,
		})
	}
	targetsJSON, err := json.Marshal(targets)
	if err != nil {
		return inference.ReviewDialogue{}, fmt.Errorf("json.Marshal(targets) > %w", err)
	}

	decoded, err := structuredCompletion[inference.ReviewDialogue](
		ctx, client, "generateReviewDialogue", "review_dialogue",
		generateReviewDialogueSchema, generateReviewDialogueSystemPrompt, "Target words: "+string(targetsJSON),
	)
	if err != nil {
		return inference.ReviewDialogue{}, err
	}

	for i := range decoded.Lines {
		decoded.Lines[i].HintImage = nil
	}
	return decoded, nil
}

// AnnotateText implements the inference.Client interface
func (client *Client) AnnotateText(
	ctx context.Context,
	params inference.AnnotateTextRequest,
) (inference.Annotation, error) {
	userMessage := fmt.Sprintf(`Native language: %s
Text: %s`, params.NativeLanguage, params.Text)

	decoded, err := structuredCompletion[inference.Annotation](
		ctx, client, "annotateText", "annotation",
		annotateTextSchema, annotateTextSystemPrompt, userMessage,
	)
	if err != nil {
		return inference.Annotation{}, err
	}
	decoded.Text = params.Text
	return decoded, nil
}

// ContinueDialogue implements the inference.Client interface
func (client *Client) ContinueDialogue(
	ctx context.Context,
	params inference.ContinueDialogueRequest,
) (string, error) {
	messages := make([]Message, 0, len(params.History)+2)
	messages = append(messages, Message{Role: RoleSystem, Content: continueDialogueSystemPrompt})
	for _, turn := range params.History {
		role := RoleUser
		if turn.Role == inference.RoleAssistant {
			role = RoleAssistant
		}
		messages = append(messages, Message{Role: role, Content: turn.Text})
	}
	messages = append(messages, Message{Role: RoleUser, Content: params.Text})

	return client.chatCompletion(ctx, "continueDialogue", ChatCompletionRequest{
		Model:       client.model,
		Temperature: 0.8,
		Messages:    messages,
	})
}
