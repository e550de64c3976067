package pipeline

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wpbuild/internal/adapters/cas"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/wpbuild/internal/adapters/config"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/wpbuild/internal/adapters/esbuild"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/wpbuild/internal/adapters/gettext"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/wpbuild/internal/adapters/imaging"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/wpbuild/internal/adapters/logger"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/wpbuild/internal/adapters/metrics"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/wpbuild/internal/adapters/reload"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/wpbuild/internal/adapters/sass"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/wpbuild/internal/adapters/stylesheet" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/wpbuild/internal/core/ports"
)

// NodeID is the unique identifier for the pipeline Graft node.
const NodeID graft.ID = "engine.pipeline"

func init() {
	graft.Register(graft.Node[*Pipeline]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			metrics.NodeID,
			reload.NodeID,
			cas.NodeID,
			sass.NodeID,
			esbuild.NodeID,
			stylesheet.NodeID,
			imaging.NodeID,
			gettext.NodeID,
		},
		Run: func(ctx context.Context) (*Pipeline, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			recorder, err := graft.Dep[*metrics.Recorder](ctx)
			if err != nil {
				return nil, err
			}

			server, err := graft.Dep[ports.DevServer](ctx)
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

			engine, err := graft.Dep[*esbuild.Engine](ctx)
			if err != nil {
				return nil, err
			}

			transformer, err := graft.Dep[*stylesheet.Transformer](ctx)
			if err != nil {
				return nil, err
			}

			optimizer, err := graft.Dep[ports.ImageOptimizer](ctx)
			if err != nil {
				return nil, err
			}

			extractor, err := graft.Dep[ports.StringExtractor](ctx)
			if err != nil {
				return nil, err
			}

			return New(loader, log, recorder, server, store, Transforms{
				Styles:      compiler,
				Prefixer:    engine,
				Stylesheets: transformer,
				CSSMinifier: transformer,
				Scripts:     engine,
				Images:      optimizer,
				Strings:     extractor,
			}), nil
		},
	})
}
