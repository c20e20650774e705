package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/lingocard/internal/bootstrap"
	"github.com/at-ishikawa/lingocard/internal/server"
)

const readHeaderTimeout = 10 * time.Second

func newServeCommand() *cobra.Command {
	var flags sessionFlags
	var port int
	command := &cobra.Command{
		Use:   "serve",
		Short: "Serve a study session over Connect RPC for a browser front-end",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("loadConfig() > %w", err)
			}
			if cmd.Flags().Changed("port") {
				cfg.Server.Port = port
			}

			machine, closeClient, err := newMachine(cfg, &flags)
			if err != nil {
				return fmt.Errorf("newMachine() > %w", err)
			}
			defer func() {
				_ = closeClient()
			}()

			handler, err := server.NewStudyHandler(machine, slog.Default())
			if err != nil {
				return fmt.Errorf("server.NewStudyHandler() > %w", err)
			}
			srv := &http.Server{
				Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
				Handler:           server.NewHTTPHandler(handler, cfg.Server.CORS.AllowedOrigins),
				ReadHeaderTimeout: readHeaderTimeout,
			}

			app := bootstrap.New()
			app.AddShutdownHook(srv.Shutdown)
			return app.Run(cmd.Context(),
				runMachine(machine, cfg.Session.RecommendOnStart),
				func(ctx context.Context) error {
					slog.Info("Starting server", "addr", srv.Addr)
					if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
						return fmt.Errorf("srv.ListenAndServe() > %w", err)
					}
					return nil
				},
			)
		},
	}
	flags.register(command.Flags())
	command.Flags().IntVar(&port, "port", 0, "port to listen on, overrides server.port")
	return command
}
