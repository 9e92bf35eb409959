// Package server receives Slack slash commands and interactivity payloads
// over HTTP. Every request is signature-checked, acknowledged right away,
// and handled on a background goroutine.
package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/jhankim/slack-olapic/internal/command"
	"github.com/jhankim/slack-olapic/internal/interaction"
	"github.com/jhankim/slack-olapic/pkg/config"
	"github.com/jhankim/slack-olapic/pkg/logger"
	slackapi "github.com/slack-go/slack"
	"go.uber.org/fx"
)

const (
	maxBodyBytes   = 1 << 20
	handlerTimeout = 30 * time.Second
)

type Opts struct {
	fx.In

	Config      *config.Config
	Logger      logger.Logger
	Command     command.Client
	Interaction interaction.Client
}

type Server struct {
	cfg         *config.Config
	logger      logger.Logger
	command     command.Client
	interaction interaction.Client

	httpServer *http.Server
	wg         sync.WaitGroup
	// async starts a dispatched handler. Tests swap it for a synchronous call.
	async func(func())
}

func New(opts Opts) *Server {
	s := &Server{
		cfg:         opts.Config,
		logger:      opts.Logger.WithComponent("HTTPServer"),
		command:     opts.Command,
		interaction: opts.Interaction,
	}
	s.async = func(fn func()) {
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			fn()
		}()
	}
	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", opts.Config.App.Port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("POST /slack/commands", s.handleCommand)
	mux.HandleFunc("POST /slack/actions", s.handleActions)
	return mux
}

// Start binds the listener synchronously so a taken port fails startup.
func (s *Server) Start(context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.httpServer.Addr, err)
	}

	s.logger.Info("Starting server", "addr", s.httpServer.Addr, "command", s.cfg.CommandName())
	go func() {
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Server stopped unexpectedly", "error", err)
		}
	}()
	return nil
}

// Shutdown stops accepting requests and waits for in-flight handlers.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	if _, err := w.Write([]byte("ok")); err != nil {
		s.logger.Error("Failed to write response", "error", err)
	}
}

// verify checks the Slack signature and leaves the body readable again.
func (s *Server) verify(w http.ResponseWriter, r *http.Request) bool {
	sv, err := slackapi.NewSecretsVerifier(r.Header, s.cfg.Slack.SigningSecret)
	if err != nil {
		s.logger.Warn("Rejected unsigned request", "path", r.URL.Path, "error", err)
		w.WriteHeader(http.StatusUnauthorized)
		return false
	}

	body, err := io.ReadAll(io.TeeReader(http.MaxBytesReader(w, r.Body, maxBodyBytes), &sv))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return false
	}

	if err := sv.Ensure(); err != nil {
		s.logger.Warn("Rejected request with bad signature", "path", r.URL.Path, "error", err)
		w.WriteHeader(http.StatusUnauthorized)
		return false
	}

	r.Body = io.NopCloser(bytes.NewReader(body))
	return true
}

// dispatch runs fn off the request path on a context that outlives it.
func (s *Server) dispatch(r *http.Request, name string, fn func(ctx context.Context) error) {
	base := context.WithoutCancel(r.Context())

	s.async(func() {
		defer func() {
			if rec := recover(); rec != nil {
				s.logger.Error("Handler panicked", "handler", name, "panic", rec)
			}
		}()

		ctx, cancel := context.WithTimeout(base, handlerTimeout)
		defer cancel()

		if err := fn(ctx); err != nil {
			s.logger.Error("Handler failed", "handler", name, "error", err)
		}
	})
}
