package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/at-ishikawa/lingocard/internal/inference"
)

func TestReviewSession_Submit(t *testing.T) {
	tests := []struct {
		name          string
		step          int
		answer        string
		want          bool
		wantStep      int
		wantCompleted bool
	}{
		{name: "empty answer acknowledges a line without blank", step: 0, answer: "", want: true, wantStep: 1},
		{name: "answer to a line without blank is wrong", step: 0, answer: "咖啡", want: false, wantStep: 0},
		{name: "correct answer advances by one", step: 1, answer: "咖啡", want: true, wantStep: 2},
		{name: "answer is trimmed", step: 1, answer: "\t咖啡 ", want: true, wantStep: 2},
		{name: "wrong answer stays", step: 1, answer: "茶", want: false, wantStep: 1},
		{name: "correct answer on the last line completes", step: 2, answer: "地铁", want: true, wantStep: 2, wantCompleted: true},
		{name: "step out of range records nothing", step: 3, answer: "地铁", want: false, wantStep: 3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			review := newReviewSession([]string{"咖啡", "地铁"}, testDialogue)
			review.Step = tc.step

			got := review.Submit(tc.answer)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.wantStep, review.Step)
			assert.Equal(t, tc.wantCompleted, review.Completed)
		})
	}
}

func TestState_Clone(t *testing.T) {
	state := State{
		Vocabulary: []inference.Word{coffee},
		Chat:       []inference.ChatTurn{{Role: inference.RoleUser, Text: "你好"}},
		Etymology: &inference.Etymology{
			Word:       coffee.Text,
			Components: []inference.EtymologyComponent{{Fragment: "口"}},
		},
		Review: newReviewSession([]string{coffee.Text}, testDialogue),
	}

	clone := state.Clone()
	clone.Vocabulary[0].Selected = true
	clone.Chat[0].Text = "再见"
	clone.Etymology.Components[0].Fragment = "加"
	clone.Review.Answers[0] = "茶"
	clone.Review.Step = 2

	assert.False(t, state.Vocabulary[0].Selected)
	assert.Equal(t, "你好", state.Chat[0].Text)
	assert.Equal(t, "口", state.Etymology.Components[0].Fragment)
	assert.Empty(t, state.Review.Answers)
	assert.Equal(t, 0, state.Review.Step)
}
