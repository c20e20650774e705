package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/at-ishikawa/lingocard/internal/inference"
	"github.com/at-ishikawa/lingocard/internal/session"
)

// blankMarker marks the missing word in a review line.
const blankMarker = "____"

type renderer struct {
	w      io.Writer
	bold   *color.Color
	italic *color.Color
	green  *color.Color
	red    *color.Color
	faint  *color.Color
}

func newRenderer(w io.Writer) *renderer {
	return &renderer{
		w:      w,
		bold:   color.New(color.Bold),
		italic: color.New(color.Italic),
		green:  color.New(color.FgGreen),
		red:    color.New(color.FgRed),
		faint:  color.New(color.Faint),
	}
}

func (r *renderer) render(state session.State) {
	fmt.Fprintln(r.w)
	switch state.View {
	case session.ViewRecommendation:
		r.renderRecommendations(state)
	case session.ViewEtymology:
		r.renderEtymology(state)
	case session.ViewVocabulary:
		r.renderVocabulary(state)
	case session.ViewDialogue:
		if state.DialogueMode == session.DialogueModeReview && state.Review != nil {
			r.renderReview(*state.Review)
		} else {
			r.renderChat(state.Chat)
		}
	case session.ViewTranslation:
		r.renderAnnotation(state.Annotation)
	case session.ViewRecognition:
		r.renderRecognition(state.Recognition)
	}

	if state.Loading {
		_, _ = r.faint.Fprintln(r.w, "Loading...")
	}
	if state.LastError != "" {
		fmt.Fprint(r.w, "❌ ")
		_, _ = r.red.Fprintln(r.w, state.LastError)
	}
}

func (r *renderer) title(format string, args ...any) {
	_, _ = r.bold.Fprintf(r.w, "== "+format+" ==\n", args...)
}

func (r *renderer) renderRecommendations(state session.State) {
	r.title("Recommended words for %s speakers, %s", state.Config.NativeLanguage, state.Config.Level)
	if len(state.Recommendations) == 0 {
		fmt.Fprintln(r.w, "No recommendation yet. Type :refresh to get some.")
		return
	}
	for i, word := range state.Recommendations {
		r.renderWord(i+1, word, word.Favorite, "★")
	}
}

func (r *renderer) renderVocabulary(state session.State) {
	r.title("Vocabulary book")
	if len(state.Vocabulary) == 0 {
		fmt.Fprintln(r.w, "The vocabulary book is empty. Add recommended words with :fav.")
		return
	}
	for i, word := range state.Vocabulary {
		r.renderWord(i+1, word, word.Selected, "[x]")
	}
	fmt.Fprintf(r.w, "%d selected for review\n", len(state.SelectedWords()))
}

func (r *renderer) renderWord(n int, word inference.Word, marked bool, marker string) {
	if !marked {
		marker = strings.Repeat(" ", len([]rune(marker)))
	}
	fmt.Fprintf(r.w, "%2d. %s %s (%s) %s",
		n,
		marker,
		r.bold.Sprint(word.Text),
		word.Phonetic,
		word.Meaning,
	)
	if word.Category != "" {
		_, _ = r.faint.Fprintf(r.w, " [%s]", word.Category)
	}
	_, _ = r.faint.Fprintf(r.w, " proficiency %d\n", word.Proficiency)
	if word.CulturalNote != "" {
		fmt.Fprintf(r.w, "      %s\n", r.italic.Sprint(word.CulturalNote))
	}
}

func (r *renderer) renderEtymology(state session.State) {
	if state.Etymology == nil {
		r.title("Etymology")
		fmt.Fprintln(r.w, "No word explored yet. Type :explore <word>.")
		return
	}
	etymology := state.Etymology
	r.title("Etymology of %s", etymology.Word)
	for _, component := range etymology.Components {
		fmt.Fprintf(r.w, "  %s  %s", r.bold.Sprint(component.Fragment), component.Meaning)
		if component.Image != nil {
			_, _ = r.faint.Fprint(r.w, " (illustrated)")
		}
		fmt.Fprintln(r.w)
	}
	if etymology.CulturalContext != "" {
		fmt.Fprintln(r.w)
		fmt.Fprintln(r.w, r.italic.Sprint(etymology.CulturalContext))
	}
}

func (r *renderer) renderChat(turns []inference.ChatTurn) {
	r.title("Chat")
	if len(turns) == 0 {
		fmt.Fprintln(r.w, "Say something in Chinese to start the conversation.")
		return
	}
	for _, turn := range turns {
		switch turn.Role {
		case inference.RoleUser:
			fmt.Fprintf(r.w, "%s %s\n", r.bold.Sprint("You:"), turn.Text)
		default:
			fmt.Fprintf(r.w, "%s %s\n", r.bold.Sprint("Tutor:"), turn.Text)
		}
	}
}

func (r *renderer) renderReview(review session.ReviewSession) {
	r.title("Review: %s", review.Scenario)
	for i, line := range review.Lines {
		if i > review.Step {
			break
		}
		speaker := "Tutor:"
		if line.Speaker == inference.SpeakerUser {
			speaker = "You:"
		}

		text := line.Text
		answered := i < review.Step || review.Completed
		if line.IsExercise() && answered {
			text = strings.ReplaceAll(text, blankMarker, r.green.Sprint(line.Blank))
		}
		fmt.Fprintf(r.w, "%s %s\n", r.bold.Sprint(speaker), text)
		if line.Phonetic != "" && (answered || !line.IsExercise()) {
			_, _ = r.faint.Fprintf(r.w, "      %s\n", line.Phonetic)
		}
		if line.Translation != "" {
			fmt.Fprintf(r.w, "      %s\n", r.italic.Sprint(line.Translation))
		}
	}

	if review.Completed {
		fmt.Fprint(r.w, "✅ ")
		_, _ = r.green.Fprintln(r.w, "Review completed! Type :chat to go back to free chat.")
		return
	}

	line, ok := review.CurrentLine()
	if !ok {
		return
	}
	if answer, answered := review.Answers[review.Step]; answered && answer != line.Blank {
		fmt.Fprint(r.w, "❌ ")
		_, _ = r.red.Fprintf(r.w, "%q is not the missing word. Try again.\n", answer)
	}
	if line.HintImage != nil {
		_, _ = r.faint.Fprintln(r.w, "(a hint illustration is available)")
	}
	if line.IsExercise() {
		fmt.Fprintln(r.w, "Type the missing word.")
	} else {
		fmt.Fprintln(r.w, "Press enter to continue.")
	}
}

func (r *renderer) renderAnnotation(annotation *inference.Annotation) {
	r.title("Translation")
	if annotation == nil {
		fmt.Fprintln(r.w, "Type Chinese text to translate it.")
		return
	}
	fmt.Fprintln(r.w, r.bold.Sprint(annotation.Text))
	fmt.Fprintln(r.w, r.italic.Sprint(annotation.Translation))
	for _, token := range annotation.Tokens {
		fmt.Fprintf(r.w, "  %s (%s) %s\n", r.bold.Sprint(token.Text), token.Phonetic, token.Meaning)
	}
}

func (r *renderer) renderRecognition(recognition *session.Recognition) {
	r.title("Recognition")
	if recognition == nil {
		fmt.Fprintln(r.w, "Type :recognize <image file> to describe a photo.")
		return
	}
	if recognition.Description == "" {
		fmt.Fprintf(r.w, "Analyzing the %s image...\n", recognition.Image.MIMEType)
		return
	}
	fmt.Fprintln(r.w, recognition.Description)
}
