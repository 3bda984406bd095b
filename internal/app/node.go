package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/weave/internal/adapters/cachestore" //nolint:depguard // Wired in app layer
	"go.trai.ch/weave/internal/adapters/config"     //nolint:depguard // Wired in app layer
	"go.trai.ch/weave/internal/adapters/fs"         //nolint:depguard // Wired in app layer
	"go.trai.ch/weave/internal/adapters/logger"     //nolint:depguard // Wired in app layer
	"go.trai.ch/weave/internal/adapters/watcher"    //nolint:depguard // Wired in app layer
	"go.trai.ch/weave/internal/core/ports"
	"go.trai.ch/weave/internal/engine/weaver"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			cachestore.NodeID,
			fs.FingerprinterNodeID,
			fs.WalkerNodeID,
			weaver.NodeID,
			watcher.NodeID,
			logger.NodeID,
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
	stores, err := graft.Dep[*cachestore.Factory](ctx)
	if err != nil {
		return nil, err
	}
	fingerprinter, err := graft.Dep[ports.Fingerprinter](ctx)
	if err != nil {
		return nil, err
	}
	walker, err := graft.Dep[*fs.Walker](ctx)
	if err != nil {
		return nil, err
	}
	w, err := graft.Dep[*weaver.Weaver](ctx)
	if err != nil {
		return nil, err
	}
	fileWatcher, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	return New(loader, stores, fingerprinter, w, walker, fileWatcher, log), nil
}
