package server

import (
	"encoding/json"
	"fmt"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/at-ishikawa/lingocard/internal/inference"
	"github.com/at-ishikawa/lingocard/internal/session"
)

// stateMessage is the wire form of session.State.
type stateMessage struct {
	SessionID string        `json:"session_id"`
	Revision  uint64        `json:"revision"`
	View      string        `json:"view"`
	Config    configMessage `json:"config"`

	Recommendations []inference.Word     `json:"recommendations"`
	Vocabulary      []inference.Word     `json:"vocabulary"`
	Etymology       *inference.Etymology `json:"etymology,omitempty"`

	DialogueMode string               `json:"dialogue_mode"`
	Chat         []inference.ChatTurn `json:"chat"`
	Review       *reviewMessage       `json:"review,omitempty"`

	Annotation  *inference.Annotation `json:"annotation,omitempty"`
	Recognition *recognitionMessage   `json:"recognition,omitempty"`
	Audio       *inference.Audio      `json:"audio,omitempty"`

	Loading   bool   `json:"loading"`
	LastError string `json:"last_error,omitempty"`
}

type configMessage struct {
	NativeLanguage string `json:"native_language"`
	Level          string `json:"level"`
}

type reviewMessage struct {
	Words     []string                 `json:"words"`
	Scenario  string                   `json:"scenario"`
	Lines     []inference.DialogueLine `json:"lines"`
	Step      int                      `json:"step"`
	Answers   map[int]string           `json:"answers"`
	Completed bool                     `json:"completed"`
}

type recognitionMessage struct {
	Image       inference.Image `json:"image"`
	Description string          `json:"description"`
}

func newStateMessage(state session.State) stateMessage {
	message := stateMessage{
		SessionID: state.SessionID,
		Revision:  state.Revision,
		View:      string(state.View),
		Config: configMessage{
			NativeLanguage: string(state.Config.NativeLanguage),
			Level:          string(state.Config.Level),
		},
		Recommendations: state.Recommendations,
		Vocabulary:      state.Vocabulary,
		Etymology:       state.Etymology,
		DialogueMode:    string(state.DialogueMode),
		Chat:            state.Chat,
		Annotation:      state.Annotation,
		Audio:           state.Audio,
		Loading:         state.Loading,
		LastError:       state.LastError,
	}
	if review := state.Review; review != nil {
		message.Review = &reviewMessage{
			Words:     review.Words,
			Scenario:  review.Scenario,
			Lines:     review.Lines,
			Step:      review.Step,
			Answers:   review.Answers,
			Completed: review.Completed,
		}
	}
	if recognition := state.Recognition; recognition != nil {
		message.Recognition = &recognitionMessage{
			Image:       recognition.Image,
			Description: recognition.Description,
		}
	}
	return message
}

func (m stateMessage) state() session.State {
	state := session.State{
		SessionID: m.SessionID,
		Revision:  m.Revision,
		View:      session.View(m.View),
		Config: session.Config{
			NativeLanguage: inference.NativeLanguage(m.Config.NativeLanguage),
			Level:          inference.Level(m.Config.Level),
		},
		Recommendations: m.Recommendations,
		Vocabulary:      m.Vocabulary,
		Etymology:       m.Etymology,
		DialogueMode:    session.DialogueMode(m.DialogueMode),
		Chat:            m.Chat,
		Annotation:      m.Annotation,
		Audio:           m.Audio,
		Loading:         m.Loading,
		LastError:       m.LastError,
	}
	if review := m.Review; review != nil {
		state.Review = &session.ReviewSession{
			Words:     review.Words,
			Scenario:  review.Scenario,
			Lines:     review.Lines,
			Step:      review.Step,
			Answers:   review.Answers,
			Completed: review.Completed,
		}
	}
	if recognition := m.Recognition; recognition != nil {
		state.Recognition = &session.Recognition{
			Image:       recognition.Image,
			Description: recognition.Description,
		}
	}
	return state
}

type navigateMessage struct {
	View string `json:"view" validate:"required,view"`
}

type nativeLanguageMessage struct {
	NativeLanguage string `json:"native_language" validate:"required,native_language"`
}

type levelMessage struct {
	Level string `json:"level" validate:"required,level"`
}

type emptyMessage struct{}

type wordMessage struct {
	Word string `json:"word" validate:"required"`
}

type answerMessage struct {
	Word string `json:"word"`
}

type textMessage struct {
	Text string `json:"text" validate:"required"`
}

type imageMessage struct {
	Image inference.Image `json:"image" validate:"required"`
}

// DispatchRequest carries exactly one action, keyed by its name.
type DispatchRequest struct {
	Navigate               *navigateMessage       `json:"navigate,omitempty"`
	SetNativeLanguage      *nativeLanguageMessage `json:"set_native_language,omitempty"`
	SetLevel               *levelMessage          `json:"set_level,omitempty"`
	RefreshRecommendations *emptyMessage          `json:"refresh_recommendations,omitempty"`
	ExploreWord            *wordMessage           `json:"explore_word,omitempty"`
	ToggleFavorite         *wordMessage           `json:"toggle_favorite,omitempty"`
	ToggleSelected         *wordMessage           `json:"toggle_selected,omitempty"`
	StartReview            *emptyMessage          `json:"start_review,omitempty"`
	SubmitAnswer           *answerMessage         `json:"submit_answer,omitempty"`
	ExitReview             *emptyMessage          `json:"exit_review,omitempty"`
	SendChat               *textMessage           `json:"send_chat,omitempty"`
	Speak                  *textMessage           `json:"speak,omitempty"`
	Annotate               *textMessage           `json:"annotate,omitempty"`
	Recognize              *imageMessage          `json:"recognize,omitempty"`
}

// actions returns every action set in the request.
func (r *DispatchRequest) actions() []session.Action {
	var actions []session.Action
	if r.Navigate != nil {
		actions = append(actions, session.Navigate{View: session.View(r.Navigate.View)})
	}
	if r.SetNativeLanguage != nil {
		actions = append(actions, session.SetNativeLanguage{
			NativeLanguage: inference.NativeLanguage(r.SetNativeLanguage.NativeLanguage),
		})
	}
	if r.SetLevel != nil {
		actions = append(actions, session.SetLevel{Level: inference.Level(r.SetLevel.Level)})
	}
	if r.RefreshRecommendations != nil {
		actions = append(actions, session.RefreshRecommendations{})
	}
	if r.ExploreWord != nil {
		actions = append(actions, session.ExploreWord{Word: r.ExploreWord.Word})
	}
	if r.ToggleFavorite != nil {
		actions = append(actions, session.ToggleFavorite{Word: r.ToggleFavorite.Word})
	}
	if r.ToggleSelected != nil {
		actions = append(actions, session.ToggleSelected{Word: r.ToggleSelected.Word})
	}
	if r.StartReview != nil {
		actions = append(actions, session.StartReview{})
	}
	if r.SubmitAnswer != nil {
		actions = append(actions, session.SubmitAnswer{Word: r.SubmitAnswer.Word})
	}
	if r.ExitReview != nil {
		actions = append(actions, session.ExitReview{})
	}
	if r.SendChat != nil {
		actions = append(actions, session.SendChat{Text: r.SendChat.Text})
	}
	if r.Speak != nil {
		actions = append(actions, session.Speak{Text: r.Speak.Text})
	}
	if r.Annotate != nil {
		actions = append(actions, session.Annotate{Text: r.Annotate.Text})
	}
	if r.Recognize != nil {
		actions = append(actions, session.Recognize{Image: r.Recognize.Image})
	}
	return actions
}

func NewDispatchRequest(action session.Action) (*DispatchRequest, error) {
	var req DispatchRequest
	switch a := action.(type) {
	case session.Navigate:
		req.Navigate = &navigateMessage{View: string(a.View)}
	case session.SetNativeLanguage:
		req.SetNativeLanguage = &nativeLanguageMessage{NativeLanguage: string(a.NativeLanguage)}
	case session.SetLevel:
		req.SetLevel = &levelMessage{Level: string(a.Level)}
	case session.RefreshRecommendations:
		req.RefreshRecommendations = &emptyMessage{}
	case session.ExploreWord:
		req.ExploreWord = &wordMessage{Word: a.Word}
	case session.ToggleFavorite:
		req.ToggleFavorite = &wordMessage{Word: a.Word}
	case session.ToggleSelected:
		req.ToggleSelected = &wordMessage{Word: a.Word}
	case session.StartReview:
		req.StartReview = &emptyMessage{}
	case session.SubmitAnswer:
		req.SubmitAnswer = &answerMessage{Word: a.Word}
	case session.ExitReview:
		req.ExitReview = &emptyMessage{}
	case session.SendChat:
		req.SendChat = &textMessage{Text: a.Text}
	case session.Speak:
		req.Speak = &textMessage{Text: a.Text}
	case session.Annotate:
		req.Annotate = &textMessage{Text: a.Text}
	case session.Recognize:
		req.Recognize = &imageMessage{Image: a.Image}
	default:
		return nil, fmt.Errorf("unsupported action %T", action)
	}
	return &req, nil
}

// toStruct converts a wire message into the google.protobuf.Struct it is
// carried in.
func toStruct(message any) (*structpb.Struct, error) {
	data, err := json.Marshal(message)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal() > %w", err)
	}
	var s structpb.Struct
	if err := protojson.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("protojson.Unmarshal() > %w", err)
	}
	return &s, nil
}

func fromStruct(s *structpb.Struct, message any) error {
	data, err := protojson.Marshal(s)
	if err != nil {
		return fmt.Errorf("protojson.Marshal() > %w", err)
	}
	if err := json.Unmarshal(data, message); err != nil {
		return fmt.Errorf("json.Unmarshal() > %w", err)
	}
	return nil
}

func encodeState(state session.State) (*structpb.Struct, error) {
	return toStruct(newStateMessage(state))
}

func decodeState(s *structpb.Struct) (session.State, error) {
	var message stateMessage
	if err := fromStruct(s, &message); err != nil {
		return session.State{}, err
	}
	return message.state(), nil
}
