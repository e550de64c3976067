package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wpbuild/internal/adapters/cas"       //nolint:depguard // Wired in app layer
	"go.trai.ch/wpbuild/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/wpbuild/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/wpbuild/internal/adapters/reload"    //nolint:depguard // Wired in app layer
	"go.trai.ch/wpbuild/internal/adapters/sass"      //nolint:depguard // Wired in app layer
	"go.trai.ch/wpbuild/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/wpbuild/internal/core/ports"
	"go.trai.ch/wpbuild/internal/engine/pipeline"
	"go.trai.ch/wpbuild/internal/engine/scheduler"
	"go.trai.ch/wpbuild/internal/engine/watch"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			pipeline.NodeID,
			scheduler.NodeID,
			watch.NodeID,
			reload.NodeID,
			telemetry.TracerNodeID,
			cas.NodeID,
			sass.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: a, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	stages, err := graft.Dep[*pipeline.Pipeline](ctx)
	if err != nil {
		return nil, err
	}

	runner, err := graft.Dep[*scheduler.Runner](ctx)
	if err != nil {
		return nil, err
	}

	supervisor, err := graft.Dep[*watch.Supervisor](ctx)
	if err != nil {
		return nil, err
	}

	server, err := graft.Dep[ports.DevServer](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.CacheStore](ctx)
	if err != nil {
		return nil, err
	}

	compiler, err := graft.Dep[*sass.Compiler](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, log, stages, runner, supervisor, server, tracer, store).WithClosers(compiler), nil
}
