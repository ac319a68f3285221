package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dfryer1193/blogdesk/blog/application"
	"github.com/dfryer1193/blogdesk/internal/middleware"
	"github.com/dfryer1193/blogdesk/internal/rest"
	"github.com/dfryer1193/blogdesk/internal/web"
	"github.com/dfryer1193/blogdesk/shared/logging"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

// ServeOptions holds flags for the serve command.
type ServeOptions struct {
	*RootOptions
	Addr string
}

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ServeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the web UI and JSON API",
		Long: `Serve the web UI on / and the JSON API under /posts/v1.

The server stops gracefully on SIGINT or SIGTERM.

Example:
  blogdesk serve --addr :8080
  BLOGDESK_LOG_FORMAT=json blogdesk serve`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := logging.Setup(os.Stderr, opts.LogLevel, opts.LogFormat); err != nil {
				return err
			}
			if err := setGinMode(opts.config.GinMode); err != nil {
				return err
			}

			router, err := NewRouter(newPostService())
			if err != nil {
				return err
			}

			ln, err := net.Listen("tcp", opts.Addr)
			if err != nil {
				return fmt.Errorf("failed to listen on %s: %w", opts.Addr, err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, router, ln)
		},
	}

	cmd.Flags().StringVar(&opts.Addr, "addr", rootOpts.config.Addr, "address to listen on")

	return cmd
}

// NewRouter builds the gin engine with the middleware, the web views and the JSON API.
func NewRouter(service *application.PostService) (*gin.Engine, error) {
	router := gin.New()
	// Titles are free text; match routes on the escaped path so %2F stays inside :title.
	router.UseRawPath = true
	router.UnescapePathValues = true
	router.Use(middleware.LoggingMiddleware())
	router.Use(gin.CustomRecovery(middleware.HandlePanics()))

	rest.NewApi(router, service)
	if err := web.NewViews(service).Register(router); err != nil {
		return nil, err
	}

	return router, nil
}

func setGinMode(mode string) error {
	switch mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
		gin.SetMode(mode)
		return nil
	default:
		return fmt.Errorf("invalid GIN_MODE %q", mode)
	}
}

// serve runs handler on ln until ctx is done, then shuts the server down.
func serve(ctx context.Context, handler http.Handler, ln net.Listener) error {
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", ln.Addr().String()).Msg("Starting server")
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}
	<-errCh

	log.Info().Msg("Server stopped")
	return nil
}
