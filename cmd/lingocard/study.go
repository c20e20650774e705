package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/at-ishikawa/lingocard/internal/cli"
	"github.com/at-ishikawa/lingocard/internal/server"
)

func newStudyCommand() *cobra.Command {
	var flags sessionFlags
	var serverURL string
	var audioDir string
	command := &cobra.Command{
		Use:   "study",
		Short: "Study interactively in the terminal",
		Long: `Study interactively in the terminal.
With --server, the session served by "lingocard serve" is driven instead of a local one.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if serverURL != "" {
				client := server.NewStudyServiceClient(http.DefaultClient, serverURL)
				studyCLI := cli.NewStudyCLI(client, audioDir, cmd.InOrStdin(), cmd.OutOrStdout())
				return studyCLI.Run(cmd.Context())
			}

			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("loadConfig() > %w", err)
			}
			machine, closeClient, err := newMachine(cfg, &flags)
			if err != nil {
				return fmt.Errorf("newMachine() > %w", err)
			}
			defer func() {
				_ = closeClient()
			}()

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			g, ctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				return runMachine(machine, cfg.Session.RecommendOnStart)(ctx)
			})
			g.Go(func() error {
				defer cancel()
				studyCLI := cli.NewStudyCLI(cli.NewLocalSession(machine), audioDir, cmd.InOrStdin(), cmd.OutOrStdout())
				return studyCLI.Run(ctx)
			})
			return g.Wait()
		},
	}
	flags.register(command.Flags())
	command.Flags().StringVar(&serverURL, "server", "", `URL of a "lingocard serve" server to connect to`)
	command.Flags().StringVar(&audioDir, "audio-dir", filepath.Join(os.TempDir(), "lingocard"), "directory to save synthesized speech")
	return command
}
