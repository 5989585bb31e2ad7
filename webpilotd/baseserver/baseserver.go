package baseserver

import (
	"log/slog"

	"github.com/marover/webpilot/internals/conf"
	"github.com/marover/webpilot/internals/env"
	"github.com/marover/webpilot/webpilotd/core"
)

type BaseServer struct {
	Config *conf.Config
	Env    *env.EnvStruct
	Logger *slog.Logger
}

func New() *BaseServer {
	env := env.Get()
	config := conf.GetConfig()

	logger := core.InitLogger(config)

	return &BaseServer{
		Config: config,
		Env:    env,
		Logger: logger,
	}
}
