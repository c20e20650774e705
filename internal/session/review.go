package session

import (
	"strings"

	"github.com/at-ishikawa/lingocard/internal/inference"
)

// ReviewSession is one targeted review over the words that were selected
// when it started.
//
// Step addresses Lines and only moves forward, one line per correct answer.
// A line without a blank target is acknowledged by submitting an empty answer.
type ReviewSession struct {
	Words     []string
	Scenario  string
	Lines     []inference.DialogueLine
	Step      int
	Answers   map[int]string
	Completed bool
}

func newReviewSession(words []string, dialogue inference.ReviewDialogue) *ReviewSession {
	return &ReviewSession{
		Words:    words,
		Scenario: dialogue.Scenario,
		Lines:    dialogue.Lines,
		Answers:  make(map[int]string),
	}
}

func (r *ReviewSession) CurrentLine() (inference.DialogueLine, bool) {
	if r.Step < 0 || r.Step >= len(r.Lines) {
		return inference.DialogueLine{}, false
	}
	return r.Lines[r.Step], true
}

// Submit records answer for the current line and reports whether it was correct.
// A correct answer advances Step by one, or completes the review on the last line.
func (r *ReviewSession) Submit(answer string) bool {
	line, ok := r.CurrentLine()
	if !ok {
		return false
	}

	answer = strings.TrimSpace(answer)
	if r.Answers == nil {
		r.Answers = make(map[int]string)
	}
	r.Answers[r.Step] = answer

	if answer != line.Blank {
		return false
	}
	if r.Step < len(r.Lines)-1 {
		r.Step++
	} else {
		r.Completed = true
	}
	return true
}
