// Package app wires together the logging router, the replicated entity
// simulation, and its websocket gateway into one runnable process, the way
// the teacher's app.go wired a logging.Router to a Hub.
package app

import (
	"context"
	"fmt"
	"log"
	nethttp "net/http"
	"os"
	"strconv"

	"sandboxcore/server/internal/animator"
	"sandboxcore/server/internal/engine"
	"sandboxcore/server/internal/entity"
	"sandboxcore/server/internal/gateway"
	"sandboxcore/server/internal/replication"
	"sandboxcore/server/internal/telemetry"
	"sandboxcore/server/logging"
	loggingSinks "sandboxcore/server/logging/sinks"
)

// Config configures a Run invocation. Addr defaults to ":8080" and Logger
// to a std-log-backed telemetry.Logger when left zero.
type Config struct {
	Logger telemetry.Logger
	Addr   string

	WorldWidth  float64
	WorldHeight float64
}

const (
	defaultAddr        = ":8080"
	defaultWorldWidth  = 2000
	defaultWorldHeight = 2000
)

// Run constructs the engine.Manager, binds it to an Arena and a
// replication.World, and serves the wire protocol over HTTP until ctx is
// cancelled or the HTTP server fails.
func Run(ctx context.Context, cfg Config) error {
	stdLogger := log.Default()
	logger := cfg.Logger
	if logger == nil {
		logger = telemetry.WrapLogger(stdLogger)
	}

	logConfig := logging.DefaultConfig()
	sinks := map[string]logging.Sink{
		"console": loggingSinks.NewConsole(os.Stdout),
	}
	router, err := logging.NewRouter(logConfig, logging.SystemClock{}, stdLogger, sinks)
	if err != nil {
		return fmt.Errorf("failed to construct logging router: %w", err)
	}
	defer func() {
		if cerr := router.Close(ctx); cerr != nil {
			logger.Printf("failed to close logging router: %v", cerr)
		}
	}()

	addr := cfg.Addr
	if addr == "" {
		addr = defaultAddr
	}
	width, height := cfg.WorldWidth, cfg.WorldHeight
	if width <= 0 {
		width = defaultWorldWidth
	}
	if height <= 0 {
		height = defaultWorldHeight
	}
	if raw := os.Getenv("SANDBOX_WORLD_WIDTH"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			width = v
		} else {
			logger.Printf("invalid SANDBOX_WORLD_WIDTH=%q: %v", raw, err)
		}
	}
	if raw := os.Getenv("SANDBOX_WORLD_HEIGHT"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			height = v
		} else {
			logger.Printf("invalid SANDBOX_WORLD_HEIGHT=%q: %v", raw, err)
		}
	}

	arena := engine.NewArena(width, height, nil)
	manager := engine.New(arena, router)
	arena.Bind(manager)

	repWorld := replication.NewWorld(manager, router)

	if err := seedBootstrapEntities(manager); err != nil {
		return fmt.Errorf("failed to seed bootstrap entities: %w", err)
	}

	gw := gateway.New(manager, repWorld, gateway.Config{Logger: logger})

	mux := nethttp.NewServeMux()
	mux.Handle("/ws", gw.Handler())

	srv := &nethttp.Server{Addr: addr, Handler: mux}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	errc := make(chan error, 2)
	go func() {
		errc <- gw.Run(runCtx)
	}()
	go func() {
		logger.Printf("server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != nethttp.ErrServerClosed {
			errc <- fmt.Errorf("server failed: %w", err)
			return
		}
		errc <- nil
	}()

	err = <-errc
	cancel()
	_ = srv.Close()
	if err != nil && err != context.Canceled {
		return err
	}
	return nil
}

// seedBootstrapEntities spawns the process's initial monster population so
// a freshly started world has something to replicate. A future world-file
// loader would replace this with designer-authored spawn data, the way the
// teacher's seeding.go replaced a hardcoded roster.
func seedBootstrapEntities(manager *engine.Manager) error {
	cfg := entity.Config{
		Kind:    entity.KindMonster,
		Monster: &entity.MonsterConfig{Type: "rat", Aggressive: true},
		Status: entity.StatusConfig{
			BaseStats: map[string]float64{"maxHealth": 20},
			Resources: []entity.ResourceEntryConfig{{Name: "health", Initial: 20, MaxStat: "maxHealth"}},
		},
		Animator: entity.AnimatorConfig{
			StateMachines: map[string]entity.StateMachineEntryConfig{
				"body": {States: map[string]animator.StateDef{"idle": {Frames: 1, Cycle: 1, Loop: true}}},
			},
			AnimationRate: 1,
		},
	}
	_, err := manager.Spawn("rat-1", cfg, entity.ModeMaster)
	return err
}
