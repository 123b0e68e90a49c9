package guidctl

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/kart-io/logger"
	"github.com/spf13/cobra"

	"github.com/VitamPoc/VitamCommon/pkg/infra/config"
	infralogger "github.com/VitamPoc/VitamCommon/pkg/infra/logger"
)

// Server serves the identifier API until its context is cancelled.
type Server struct {
	env     *Env
	opts    *Options
	watcher *config.Watcher
	srv     *http.Server
}

// NewServer builds the HTTP server and registers the generator and the
// logger for configuration reloads. Setup must have succeeded.
func NewServer(env *Env, opts *Options) *Server {
	gin.SetMode(opts.HTTP.Mode)

	holder := env.Holder()
	router := NewRouter(holder.Generator, opts.GUID.MaxBatch)

	watcher := config.NewWatcher(env.Source())
	seed := env.Source().Snapshot()
	watcher.Subscribe("generator",
		config.NewReloadableSubscriber(holder, holder.Keys()...).Seed(seed).Handler())
	infralogger.NewReloadableLogger(opts.Log).RegisterWithWatcher(watcher, "logger", seed)

	return &Server{
		env:     env,
		opts:    opts,
		watcher: watcher,
		srv: &http.Server{
			Addr:         opts.HTTP.Addr,
			Handler:      router,
			ReadTimeout:  opts.HTTP.ReadTimeout,
			WriteTimeout: opts.HTTP.WriteTimeout,
			IdleTimeout:  opts.HTTP.IdleTimeout,
		},
	}
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// Watcher returns the configuration watcher.
func (s *Server) Watcher() *config.Watcher {
	return s.watcher
}

// Run listens on the configured address and blocks until ctx is done,
// then shuts down within the configured timeout.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is like Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	if s.env.Source().Viper().ConfigFileUsed() != "" {
		s.watcher.Start()
		defer s.watcher.Stop()
	}

	errCh := make(chan error, 1)
	go func() {
		gen, res := s.env.Holder().Current()
		logger.Infow("HTTP server listening",
			"addr", ln.Addr().String(),
			"machine_id", res.String(),
			"process_id", gen.ProcessID(),
		)
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Infow("Shutting down HTTP server", "timeout", s.opts.HTTP.ShutdownTimeout.String())
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.HTTP.ShutdownTimeout)
	defer cancel()
	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

func newServeCommand(env *Env, opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve identifiers over HTTP",
		Long: `Serve identifiers over HTTP.

The generator is rebuilt when guid.machine-id or guid.process-id change in
the configuration file, and log.* settings are applied without a restart.`,
		Args: cobra.NoArgs,
		RunE: env.Run(func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return NewServer(env, opts).Run(ctx)
		}),
	}
}
