package cli

import (
	"context"

	"github.com/at-ishikawa/lingocard/internal/session"
)

//go:generate mockgen -source=study_session.go -destination=../mocks/cli/mock_study_session.go -package=mock_cli StudySession

// StudySession is a study session driven by the CLI, either in this process
// or served by `lingocard serve`.
type StudySession interface {
	Dispatch(ctx context.Context, action session.Action) error
	Watch(ctx context.Context) (<-chan session.State, error)
}

type localSession struct {
	machine *session.Machine
}

func NewLocalSession(machine *session.Machine) StudySession {
	return localSession{machine: machine}
}

func (s localSession) Dispatch(ctx context.Context, action session.Action) error {
	return s.machine.Dispatch(ctx, action)
}

func (s localSession) Watch(ctx context.Context) (<-chan session.State, error) {
	updates, unsubscribe := s.machine.Subscribe()
	go func() {
		<-ctx.Done()
		unsubscribe()
	}()
	return updates, nil
}
