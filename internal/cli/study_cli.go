package cli

import (
	"bufio"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/at-ishikawa/lingocard/internal/session"
)

var (
	errEnd           = errors.New("end")
	errSessionClosed = errors.New("session closed")
)

// StudyCLI is a line-oriented terminal presentation of a study session.
type StudyCLI struct {
	session      StudySession
	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	renderer     *renderer
	audioDir     string

	updates    <-chan session.State
	state      session.State
	savedAudio string
}

// NewStudyCLI creates a CLI reading commands from stdin. Synthesized speech
// is written as mp3 files under audioDir.
func NewStudyCLI(studySession StudySession, audioDir string, stdin io.Reader, stdout io.Writer) *StudyCLI {
	return &StudyCLI{
		session:      studySession,
		stdinReader:  bufio.NewReader(stdin),
		stdoutWriter: stdout,
		renderer:     newRenderer(stdout),
		audioDir:     audioDir,
	}
}

func (cli *StudyCLI) Run(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(
		ctx,
		os.Interrupt,
	)
	defer cancel()

	updates, err := cli.session.Watch(ctx)
	if err != nil {
		return fmt.Errorf("session.Watch() > %w", err)
	}
	cli.updates = updates

	errCh := make(chan error)
	go func() {
		defer close(errCh)

		state, err := cli.settle(ctx, 0)
		if err != nil {
			errCh <- err
			return
		}
		cli.state = state
		cli.renderer.render(cli.state)
		fmt.Fprintln(cli.stdoutWriter, "Type :help for the commands.")

		for {
			if err := cli.Session(ctx); err != nil {
				if !errors.Is(err, errEnd) {
					errCh <- err
				}
				return
			}
		}
	}()
	select {
	case <-ctx.Done():
		fmt.Fprintln(cli.stdoutWriter, "Received interrupt signal, exiting...")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("error: %w", err)
		}
	}
	return nil
}

// Session reads and runs one command.
func (cli *StudyCLI) Session(ctx context.Context) error {
	_, _ = cli.renderer.bold.Fprintf(cli.stdoutWriter, "[%s] > ", cli.state.View)
	line, err := cli.stdinReader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && strings.TrimSpace(line) == "" {
			fmt.Fprintln(cli.stdoutWriter)
			return errEnd
		}
		if !errors.Is(err, io.EOF) {
			return fmt.Errorf("error reading input: %w", err)
		}
	}
	line = strings.TrimSpace(line)

	cmd, err := parseCommand(line, cli.state)
	if err != nil {
		fmt.Fprint(cli.stdoutWriter, "❌ ")
		_, _ = cli.renderer.red.Fprintln(cli.stdoutWriter, err.Error())
		return nil
	}
	switch {
	case cmd.quit:
		return errEnd
	case cmd.help:
		fmt.Fprintln(cli.stdoutWriter, helpText)
		return nil
	case cmd.show:
		cli.renderer.render(cli.state)
		return nil
	case cmd.action == nil:
		return nil
	}

	next := cli.state.Revision + 1
	if err := cli.session.Dispatch(ctx, cmd.action); err != nil {
		return fmt.Errorf("session.Dispatch() > %w", err)
	}
	state, err := cli.settle(ctx, next)
	if err != nil {
		return err
	}
	cli.state = state
	cli.renderer.render(cli.state)

	if err := cli.saveAudio(); err != nil {
		fmt.Fprint(cli.stdoutWriter, "❌ ")
		_, _ = cli.renderer.red.Fprintln(cli.stdoutWriter, err.Error())
	}
	return nil
}

// settle waits for the first idle state at minRevision or later.
func (cli *StudyCLI) settle(ctx context.Context, minRevision uint64) (session.State, error) {
	loadingShown := false
	for {
		select {
		case <-ctx.Done():
			return session.State{}, ctx.Err()
		case state, ok := <-cli.updates:
			if !ok {
				return session.State{}, errSessionClosed
			}
			if state.Revision < minRevision {
				continue
			}
			if !state.Loading {
				return state, nil
			}
			if !loadingShown {
				_, _ = cli.renderer.faint.Fprintln(cli.stdoutWriter, "Loading...")
				loadingShown = true
			}
		}
	}
}

func (cli *StudyCLI) saveAudio() error {
	audio := cli.state.Audio
	if audio == nil || audio.Data == cli.savedAudio {
		return nil
	}
	cli.savedAudio = audio.Data

	data, err := base64.StdEncoding.DecodeString(audio.Data)
	if err != nil {
		return fmt.Errorf("base64.StdEncoding.DecodeString() > %w", err)
	}
	if err := os.MkdirAll(cli.audioDir, 0o755); err != nil {
		return fmt.Errorf("os.MkdirAll(%s) > %w", cli.audioDir, err)
	}
	path := filepath.Join(cli.audioDir, fmt.Sprintf("speech-%s-%d.mp3", cli.state.SessionID, cli.state.Revision))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("os.WriteFile(%s) > %w", path, err)
	}
	fmt.Fprintf(cli.stdoutWriter, "🔊 %q was saved to %s\n", audio.Text, path)
	return nil
}
