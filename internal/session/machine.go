// Package session holds the study session state and the single event loop
// that mutates it. User actions and backend completions arrive as events on
// one channel; presentations read copies through Snapshot or Subscribe.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/at-ishikawa/lingocard/internal/inference"
	"github.com/google/uuid"
)

var (
	ErrStopped        = errors.New("session machine is stopped")
	ErrAlreadyRunning = errors.New("session machine is already running")
)

const eventBufferSize = 64

type owner string

const (
	ownerRecommendations owner = "recommendations"
	ownerEtymology       owner = "etymology"
	ownerReview          owner = "review"
	ownerChat            owner = "chat"
	ownerSpeech          owner = "speech"
	ownerAnnotation      owner = "annotation"
	ownerRecognition     owner = "recognition"
)

// homeViews maps an owner to the view that renders its result.
var homeViews = map[owner]View{
	ownerRecommendations: ViewRecommendation,
	ownerEtymology:       ViewEtymology,
	ownerReview:          ViewDialogue,
	ownerAnnotation:      ViewTranslation,
	ownerRecognition:     ViewRecognition,
}

// ticket identifies one fetch. A completion is merged while its owner
// generation is current and the user either stayed on the view that started
// it or is looking at the owner's home view. Chat replies belong to the
// conversation rather than to a view.
type ticket struct {
	owner           owner
	view            View
	ownerGeneration uint64
	viewGeneration  uint64
}

type event interface {
	isEvent()
}

type actionEvent struct {
	action Action
}

type completion struct {
	ticket ticket
	result result
	err    error
}

func (actionEvent) isEvent() {}
func (completion) isEvent()  {}

type Machine struct {
	gateway Gateway
	logger  *slog.Logger
	events  chan event
	done    chan struct{}
	running atomic.Bool

	mu               sync.RWMutex
	state            State
	inFlight         int
	ownerGenerations map[owner]uint64
	viewGenerations  map[View]uint64

	subscribersMu sync.Mutex
	subscribers   map[chan State]struct{}
}

type Option func(*Machine)

func WithLogger(logger *slog.Logger) Option {
	return func(m *Machine) {
		m.logger = logger
	}
}

// WithVocabulary seeds the vocabulary book. Seeded words are favorites.
func WithVocabulary(words []inference.Word) Option {
	return func(m *Machine) {
		for _, word := range words {
			if indexOfWord(m.state.Vocabulary, word.Text) >= 0 {
				continue
			}
			word.Favorite = true
			word.Selected = false
			m.state.Vocabulary = append(m.state.Vocabulary, word)
		}
	}
}

func WithSessionID(id string) Option {
	return func(m *Machine) {
		m.state.SessionID = id
	}
}

func NewMachine(gateway Gateway, config Config, options ...Option) *Machine {
	m := &Machine{
		gateway: gateway,
		logger:  slog.Default(),
		events:  make(chan event, eventBufferSize),
		done:    make(chan struct{}),
		state: State{
			SessionID:    uuid.NewString(),
			View:         ViewRecommendation,
			Config:       config,
			DialogueMode: DialogueModeChat,
		},
		ownerGenerations: make(map[owner]uint64),
		viewGenerations:  make(map[View]uint64),
		subscribers:      make(map[chan State]struct{}),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// Run processes events until ctx is done. Fetches started by the loop use ctx,
// so cancelling it also cancels in-flight backend calls.
func (m *Machine) Run(ctx context.Context) error {
	if !m.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer close(m.done)

	m.logger.Debug("session started", "session_id", m.state.SessionID)
	for {
		select {
		case <-ctx.Done():
			m.closeSubscribers()
			return ctx.Err()
		case ev := <-m.events:
			m.handle(ctx, ev)
			m.publish()
		}
	}
}

// Dispatch enqueues action. It does not wait for the action to be processed.
func (m *Machine) Dispatch(ctx context.Context, action Action) error {
	if action == nil {
		return errors.New("action is nil")
	}
	select {
	case <-m.done:
		return ErrStopped
	default:
	}

	select {
	case m.events <- actionEvent{action: action}:
		return nil
	case <-m.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m *Machine) Snapshot() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state.Clone()
}

// Subscribe returns a channel that receives the latest snapshot after every
// processed event. A slow reader only misses intermediate snapshots.
// The channel is closed by unsubscribe or when Run returns.
func (m *Machine) Subscribe() (<-chan State, func()) {
	ch := make(chan State, 1)
	ch <- m.Snapshot()

	m.subscribersMu.Lock()
	m.subscribers[ch] = struct{}{}
	m.subscribersMu.Unlock()

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			m.subscribersMu.Lock()
			defer m.subscribersMu.Unlock()
			if _, ok := m.subscribers[ch]; ok {
				delete(m.subscribers, ch)
				close(ch)
			}
		})
	}
	return ch, unsubscribe
}

func (m *Machine) publish() {
	snapshot := m.Snapshot()

	m.subscribersMu.Lock()
	defer m.subscribersMu.Unlock()
	for ch := range m.subscribers {
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- snapshot:
		default:
		}
	}
}

func (m *Machine) closeSubscribers() {
	m.subscribersMu.Lock()
	defer m.subscribersMu.Unlock()
	for ch := range m.subscribers {
		delete(m.subscribers, ch)
		close(ch)
	}
}

func (m *Machine) handle(ctx context.Context, ev event) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.state.Revision++
	switch ev := ev.(type) {
	case actionEvent:
		m.logger.Debug("action", "action", ev.action.actionName())
		m.handleAction(ctx, ev.action)
	case completion:
		m.handleCompletion(ev)
	}
}

func (m *Machine) handleAction(ctx context.Context, action Action) {
	s := &m.state
	switch a := action.(type) {
	case Navigate:
		view, err := ParseView(string(a.View))
		if err != nil {
			m.reject(action, err)
			return
		}
		m.setView(view)

	case SetNativeLanguage:
		nativeLanguage, err := inference.ParseNativeLanguage(string(a.NativeLanguage))
		if err != nil {
			m.reject(action, err)
			return
		}
		s.Config.NativeLanguage = nativeLanguage

	case SetLevel:
		level, err := inference.ParseLevel(string(a.Level))
		if err != nil {
			m.reject(action, err)
			return
		}
		s.Config.Level = level

	case RefreshRecommendations:
		if m.gated(action) {
			return
		}
		config := s.Config
		m.start(ctx, ownerRecommendations, func(ctx context.Context) (result, error) {
			words, err := m.gateway.RecommendVocabulary(ctx, config.NativeLanguage, config.Level)
			if err != nil {
				return nil, fmt.Errorf("gateway.RecommendVocabulary() > %w", err)
			}
			return recommendationsLoaded{words: words}, nil
		})

	case ExploreWord:
		word := strings.TrimSpace(a.Word)
		if word == "" {
			m.reject(action, errors.New("word is empty"))
			return
		}
		if m.gated(action) {
			return
		}
		m.start(ctx, ownerEtymology, func(ctx context.Context) (result, error) {
			etymology, err := m.gateway.DeconstructEtymology(ctx, word)
			if err != nil {
				return nil, fmt.Errorf("gateway.DeconstructEtymology() > %w", err)
			}
			return etymologyLoaded{etymology: etymology}, nil
		})

	case ToggleFavorite:
		m.toggleFavorite(action, a.Word)

	case ToggleSelected:
		i := indexOfWord(s.Vocabulary, a.Word)
		if i < 0 {
			m.reject(action, fmt.Errorf("word %q is not in the vocabulary book", a.Word))
			return
		}
		s.Vocabulary[i].Selected = !s.Vocabulary[i].Selected

	case StartReview:
		if s.View != ViewVocabulary {
			m.ignore(action, "not on the vocabulary view")
			return
		}
		selected := s.SelectedWords()
		if len(selected) == 0 {
			m.ignore(action, "no word is selected")
			return
		}
		if m.gated(action) {
			return
		}
		texts := make([]string, 0, len(selected))
		for _, word := range selected {
			texts = append(texts, word.Text)
		}
		m.start(ctx, ownerReview, func(ctx context.Context) (result, error) {
			dialogue, err := m.gateway.GenerateReviewDialogue(ctx, selected)
			if err != nil {
				return nil, fmt.Errorf("gateway.GenerateReviewDialogue() > %w", err)
			}
			return reviewLoaded{words: texts, dialogue: dialogue}, nil
		})

	case SubmitAnswer:
		if s.DialogueMode != DialogueModeReview || s.Review == nil {
			m.ignore(action, "no review in progress")
			return
		}
		correct := s.Review.Submit(a.Word)
		m.logger.Debug("answer submitted",
			"step", s.Review.Step,
			"correct", correct,
			"completed", s.Review.Completed,
		)

	case ExitReview:
		s.Review = nil
		s.DialogueMode = DialogueModeChat
		m.ownerGenerations[ownerReview]++

	case SendChat:
		text := strings.TrimSpace(a.Text)
		if text == "" {
			m.ignore(action, "text is empty")
			return
		}
		if m.gated(action) {
			return
		}
		history := slices.Clone(s.Chat)
		s.Chat = append(s.Chat, inference.ChatTurn{Role: inference.RoleUser, Text: text})
		m.start(ctx, ownerChat, func(ctx context.Context) (result, error) {
			reply, err := m.gateway.ContinueDialogue(ctx, history, text)
			if err != nil {
				return nil, fmt.Errorf("gateway.ContinueDialogue() > %w", err)
			}
			return chatReplied{reply: reply}, nil
		})

	case Speak:
		text := strings.TrimSpace(a.Text)
		if text == "" {
			m.ignore(action, "text is empty")
			return
		}
		if m.gated(action) {
			return
		}
		m.start(ctx, ownerSpeech, func(ctx context.Context) (result, error) {
			audio, err := m.gateway.SynthesizeSpeech(ctx, text)
			if err != nil {
				return nil, fmt.Errorf("gateway.SynthesizeSpeech() > %w", err)
			}
			return speechLoaded{audio: audio}, nil
		})

	case Annotate:
		text := strings.TrimSpace(a.Text)
		if text == "" {
			m.ignore(action, "text is empty")
			return
		}
		if m.gated(action) {
			return
		}
		nativeLanguage := s.Config.NativeLanguage
		m.start(ctx, ownerAnnotation, func(ctx context.Context) (result, error) {
			annotation, err := m.gateway.AnnotateText(ctx, text, nativeLanguage)
			if err != nil {
				return nil, fmt.Errorf("gateway.AnnotateText() > %w", err)
			}
			return annotationLoaded{annotation: annotation}, nil
		})

	case Recognize:
		if a.Image.Data == "" {
			m.reject(action, errors.New("image is empty"))
			return
		}
		if m.gated(action) {
			return
		}
		image := a.Image
		s.Recognition = &Recognition{Image: image}
		m.start(ctx, ownerRecognition, func(ctx context.Context) (result, error) {
			description, err := m.gateway.AnalyzeImage(ctx, image)
			if err != nil {
				return nil, fmt.Errorf("gateway.AnalyzeImage() > %w", err)
			}
			return recognitionLoaded{image: image, description: description}, nil
		})

	default:
		m.logger.Warn("unknown action", "type", fmt.Sprintf("%T", action))
	}
}

func (m *Machine) handleCompletion(c completion) {
	m.inFlight--
	m.state.Loading = m.inFlight > 0

	if !m.current(c.ticket) {
		m.logger.Debug("discarded stale completion",
			"owner", c.ticket.owner,
			"view", c.ticket.view,
			"error", c.err,
		)
		return
	}
	if c.err != nil {
		m.logger.Error("fetch failed", "owner", c.ticket.owner, "error", c.err)
		m.state.LastError = c.err.Error()
		return
	}

	before := m.state.View
	c.result.merge(&m.state)
	if m.state.View != before {
		m.viewGenerations[before]++
	}
}

func (m *Machine) current(t ticket) bool {
	if m.ownerGenerations[t.owner] != t.ownerGeneration {
		return false
	}
	if t.owner == ownerChat {
		return true
	}
	if m.viewGenerations[t.view] == t.viewGeneration {
		return true
	}
	home, ok := homeViews[t.owner]
	return ok && m.state.View == home
}

func (m *Machine) start(ctx context.Context, owner owner, fetch func(context.Context) (result, error)) {
	m.ownerGenerations[owner]++
	t := ticket{
		owner:           owner,
		view:            m.state.View,
		ownerGeneration: m.ownerGenerations[owner],
		viewGeneration:  m.viewGenerations[m.state.View],
	}
	m.inFlight++
	m.state.Loading = true
	m.state.LastError = ""
	m.logger.Debug("fetch started", "owner", owner, "view", t.view)

	go func() {
		res, err := fetch(ctx)
		select {
		case m.events <- completion{ticket: t, result: res, err: err}:
		case <-ctx.Done():
		}
	}()
}

// setView leaves the current view, invalidating the fetches it started.
func (m *Machine) setView(view View) {
	if m.state.View == view {
		return
	}
	m.viewGenerations[m.state.View]++
	m.state.View = view
}

func (m *Machine) toggleFavorite(action Action, text string) {
	s := &m.state
	i := indexOfWord(s.Recommendations, text)
	j := indexOfWord(s.Vocabulary, text)
	if i < 0 && j < 0 {
		m.reject(action, fmt.Errorf("word %q is neither recommended nor in the vocabulary book", text))
		return
	}

	favorite := j < 0
	if i >= 0 {
		s.Recommendations[i].Favorite = favorite
	}
	if favorite {
		word := s.Recommendations[i]
		word.Selected = false
		s.Vocabulary = append(s.Vocabulary, word)
		return
	}
	s.Vocabulary = slices.Delete(s.Vocabulary, j, j+1)
}

func (m *Machine) gated(action Action) bool {
	if !m.state.Loading {
		return false
	}
	m.ignore(action, "a fetch is in flight")
	return true
}

func (m *Machine) ignore(action Action, reason string) {
	m.logger.Debug("action ignored", "action", action.actionName(), "reason", reason)
}

func (m *Machine) reject(action Action, err error) {
	m.logger.Warn("action rejected", "action", action.actionName(), "error", err)
	m.state.LastError = err.Error()
}
