package cli

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/at-ishikawa/lingocard/internal/inference"
	"github.com/at-ishikawa/lingocard/internal/session"
)

type command struct {
	action session.Action
	quit   bool
	help   bool
	show   bool
}

const helpText = `Commands:
  :view <recommendation|etymology|vocabulary|dialogue|translation|recognition>
  :lang <language>         set your native language
  :level <1-6>             set your HSK level
  :refresh                 recommend new words
  :explore <word|number>   show the etymology of a word
  :fav <word|number>       add or remove a recommended word from the vocabulary book
  :select <word|number>    select a vocabulary word for review
  :review                  start a review dialogue over the selected words
  :chat                    leave the review and go back to free chat
  :speak [text]            synthesize speech, defaults to the word or line on screen
  :annotate <text>         translate and annotate Chinese text
  :recognize <image file>  describe a photo in Chinese
  :show                    show the current view again
  :help                    show this help
  :quit                    exit
In the dialogue view, other input is sent as a chat message or a review answer.
In the translation view, other input is annotated.`

var errUnknownInput = errors.New("unknown input, type :help for the commands")

func parseCommand(line string, state session.State) (command, error) {
	if !strings.HasPrefix(line, ":") {
		return parseText(line, state)
	}

	name, arg, _ := strings.Cut(strings.TrimPrefix(line, ":"), " ")
	arg = strings.TrimSpace(arg)
	switch name {
	case "q", "quit":
		return command{quit: true}, nil
	case "h", "help":
		return command{help: true}, nil
	case "show":
		return command{show: true}, nil
	case "view":
		view, err := session.ParseView(arg)
		if err != nil {
			return command{}, err
		}
		return command{action: session.Navigate{View: view}}, nil
	case "lang":
		nativeLanguage, err := inference.ParseNativeLanguage(arg)
		if err != nil {
			return command{}, err
		}
		return command{action: session.SetNativeLanguage{NativeLanguage: nativeLanguage}}, nil
	case "level":
		if _, err := strconv.Atoi(arg); err == nil {
			arg = "HSK " + arg
		}
		level, err := inference.ParseLevel(arg)
		if err != nil {
			return command{}, err
		}
		return command{action: session.SetLevel{Level: level}}, nil
	case "refresh":
		return command{action: session.RefreshRecommendations{}}, nil
	case "explore":
		word, err := resolveWord(arg, state)
		if err != nil {
			return command{}, err
		}
		return command{action: session.ExploreWord{Word: word}}, nil
	case "fav":
		word, err := resolveWord(arg, state)
		if err != nil {
			return command{}, err
		}
		return command{action: session.ToggleFavorite{Word: word}}, nil
	case "select":
		word, err := resolveWord(arg, state)
		if err != nil {
			return command{}, err
		}
		return command{action: session.ToggleSelected{Word: word}}, nil
	case "review":
		return command{action: session.StartReview{}}, nil
	case "chat":
		return command{action: session.ExitReview{}}, nil
	case "speak":
		if arg == "" {
			arg = textOnScreen(state)
		}
		if arg == "" {
			return command{}, errors.New("nothing to speak")
		}
		return command{action: session.Speak{Text: arg}}, nil
	case "annotate":
		if arg == "" {
			return command{}, errors.New("text is required")
		}
		return command{action: session.Annotate{Text: arg}}, nil
	case "recognize":
		image, err := readImage(arg)
		if err != nil {
			return command{}, err
		}
		return command{action: session.Recognize{Image: image}}, nil
	}
	return command{}, errUnknownInput
}

func parseText(line string, state session.State) (command, error) {
	switch state.View {
	case session.ViewDialogue:
		if state.DialogueMode == session.DialogueModeReview && state.Review != nil {
			return command{action: session.SubmitAnswer{Word: line}}, nil
		}
		if line == "" {
			return command{}, nil
		}
		return command{action: session.SendChat{Text: line}}, nil
	case session.ViewTranslation:
		if line == "" {
			return command{}, nil
		}
		return command{action: session.Annotate{Text: line}}, nil
	}
	if line == "" {
		return command{}, nil
	}
	return command{}, errUnknownInput
}

// resolveWord accepts a word or its 1-based number in the list on screen.
func resolveWord(arg string, state session.State) (string, error) {
	if arg == "" {
		return "", errors.New("word is required")
	}
	n, err := strconv.Atoi(arg)
	if err != nil {
		return arg, nil
	}

	words := state.Recommendations
	if state.View == session.ViewVocabulary {
		words = state.Vocabulary
	}
	if n < 1 || n > len(words) {
		return "", fmt.Errorf("no word numbered %d in the %s view", n, state.View)
	}
	return words[n-1].Text, nil
}

func textOnScreen(state session.State) string {
	switch state.View {
	case session.ViewEtymology:
		if state.Etymology != nil {
			return state.Etymology.Word
		}
	case session.ViewDialogue:
		if state.DialogueMode == session.DialogueModeReview && state.Review != nil {
			if line, ok := state.Review.CurrentLine(); ok {
				return strings.ReplaceAll(line.Text, blankMarker, line.Blank)
			}
		}
		if len(state.Chat) > 0 {
			return state.Chat[len(state.Chat)-1].Text
		}
	case session.ViewTranslation:
		if state.Annotation != nil {
			return state.Annotation.Text
		}
	case session.ViewRecognition:
		if state.Recognition != nil {
			return state.Recognition.Description
		}
	}
	return ""
}

func readImage(path string) (inference.Image, error) {
	if path == "" {
		return inference.Image{}, errors.New("image file is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return inference.Image{}, fmt.Errorf("os.ReadFile(%s) > %w", path, err)
	}
	mimeType := http.DetectContentType(data)
	if !strings.HasPrefix(mimeType, "image/") {
		return inference.Image{}, fmt.Errorf("%s is not an image: %s", path, mimeType)
	}
	return inference.Image{
		MIMEType: mimeType,
		Data:     base64.StdEncoding.EncodeToString(data),
	}, nil
}
