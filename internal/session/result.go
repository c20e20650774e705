package session

import (
	"github.com/at-ishikawa/lingocard/internal/inference"
)

// result is the payload of a successful fetch, merged by the event loop.
type result interface {
	merge(s *State)
}

type recommendationsLoaded struct {
	words []inference.Word
}

func (r recommendationsLoaded) merge(s *State) {
	words := make([]inference.Word, len(r.words))
	for i, word := range r.words {
		word.Favorite = indexOfWord(s.Vocabulary, word.Text) >= 0
		word.Selected = false
		words[i] = word
	}
	s.Recommendations = words
}

type etymologyLoaded struct {
	etymology inference.Etymology
}

func (r etymologyLoaded) merge(s *State) {
	etymology := r.etymology
	s.Etymology = &etymology
	s.View = ViewEtymology
}

type reviewLoaded struct {
	words    []string
	dialogue inference.ReviewDialogue
}

func (r reviewLoaded) merge(s *State) {
	s.Review = newReviewSession(r.words, r.dialogue)
	s.DialogueMode = DialogueModeReview
	s.View = ViewDialogue
}

type chatReplied struct {
	reply string
}

func (r chatReplied) merge(s *State) {
	s.Chat = append(s.Chat, inference.ChatTurn{Role: inference.RoleAssistant, Text: r.reply})
}

type speechLoaded struct {
	audio *inference.Audio
}

func (r speechLoaded) merge(s *State) {
	s.Audio = r.audio
}

type annotationLoaded struct {
	annotation inference.Annotation
}

func (r annotationLoaded) merge(s *State) {
	annotation := r.annotation
	s.Annotation = &annotation
}

type recognitionLoaded struct {
	image       inference.Image
	description string
}

func (r recognitionLoaded) merge(s *State) {
	if s.Recognition == nil || s.Recognition.Image != r.image {
		return
	}
	s.Recognition.Description = r.description
}
