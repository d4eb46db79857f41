package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/cb-team-builder/pkg/httpapi"
)

const shutdownTimeout = 10 * time.Second

// ServeCmd creates the serve command
func ServeCmd(app *AppContext) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve roster lookups and dry-run lineup searches over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = app.Cfg.Server.Addr
			}

			srv := httpapi.NewServer(addr, httpapi.NewRouter(app.Players, app.Cfg, app.Logger))

			errCh := make(chan error, 1)
			go func() {
				app.Logger.Info("HTTP server listening", zap.String("addr", addr))
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return fmt.Errorf("failed to serve: %w", err)
			case <-app.Ctx.Done():
			}

			app.Logger.Info("Shutting down HTTP server")
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				return fmt.Errorf("failed to shut down: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (defaults to server.addr)")

	return cmd
}
