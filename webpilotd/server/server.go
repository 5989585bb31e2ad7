package server

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path/filepath"

	"github.com/marover/webpilot/internals/assert"
	"github.com/marover/webpilot/internals/logbuf"
	"github.com/marover/webpilot/internals/timeouts"
	"github.com/marover/webpilot/sdk"
	"github.com/marover/webpilot/webpilotd/baseserver"
)

// Server is the local development backend. It implements the automation
// contract with a sqlite plan store and stubbed generation and execution;
// the real planner and browser engine live in the production backend.
type Server struct {
	Base       *baseserver.BaseServer
	Logger     *slog.Logger
	Logbuf     *logbuf.Logger
	plans      *planStore
	videosDir  string
	httpServer *http.Server
}

func New() *Server {
	base := baseserver.New()

	buffer := logbuf.New(
		slog.String("version", base.Config.Version),
		slog.Int("port", base.Env.PORT),
	)

	storePath := filepath.Join(base.Config.Server.DataDir, "plans.db")
	err := os.MkdirAll(filepath.Dir(storePath), 0o755)
	assert.AssertNil(err, "[SERVER] Failed to create data directory")

	plans, err := newPlanStore(storePath)
	assert.AssertNil(err, "[SERVER] Failed to initialize plan store")

	return &Server{
		Base:      base,
		Logger:    base.Logger,
		Logbuf:    buffer,
		plans:     plans,
		videosDir: base.Config.Videos.Dir,
	}
}

func (s *Server) SafeStart() error {
	if sdk.IsRunning(s.Base.Env.BASE_URL) {
		return nil
	}

	go func() {
		s.Logger.Info("starting webpilotd")
		if err := s.Start(); err != nil {
			log.Fatal("[Webpilot] Failed to start server: " + err.Error())
		}
	}()

	if sdk.WaitForStart(s.Base.Env.BASE_URL, s.Logger) {
		return nil
	}

	return errors.New("couldn't start webpilotd")
}

func (s *Server) Start() error {
	listener, err := net.Listen("tcp", s.Base.Env.LISTEN_ADDR)
	if err != nil {
		return err
	}
	server := &http.Server{
		Handler: s.Router(),
	}
	s.httpServer = server
	err = server.Serve(listener)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) Shutdown() {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeouts.SecondShort)
		defer cancel()
		if s.httpServer == nil {
			s.Logger.Error("shutdown failed", "error", errors.New("server not initialized"))
			return
		}
		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.Logger.Error("shutdown failed", "error", err)
		}
	}()
}
