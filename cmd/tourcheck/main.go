// tourcheck validates tour data and replays scripted walks without a window.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/Faultbox/xrtour/internal/config"
	"github.com/Faultbox/xrtour/internal/engine/scene"
	"github.com/Faultbox/xrtour/internal/game"
	"github.com/Faultbox/xrtour/internal/game/replay"
	"github.com/Faultbox/xrtour/internal/game/states"
	"github.com/Faultbox/xrtour/internal/logger"
)

var (
	flagWalk  = flag.String("walk", "", "Replay a walk script (YAML)")
	flagEvery = flag.Int("every", 30, "Print the rig position every N frames during a walk (0 = changes only)")
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	assets, err := game.LoadAssets(ctx, cfg.Data.Scene, cfg.Data.Registry)
	if err != nil {
		logger.Error("failed to load tour", zap.Error(err))
		os.Exit(1)
	}

	missing := report(cfg, assets)

	if *flagWalk != "" {
		if err := walk(ctx, cfg, assets, *flagWalk); err != nil {
			logger.Error("walk failed", zap.Error(err))
			os.Exit(1)
		}
	}

	if missing > 0 {
		os.Exit(2)
	}
}

// report prints what the tour contains and returns how many POIs have no
// scene node.
func report(cfg *config.Config, a game.Assets) int {
	g := a.Graph
	fmt.Printf("Scene:    %s (%s)\n", g.Name, cfg.Data.Scene)
	fmt.Printf("Nodes:    %d\n", g.Len())
	for _, k := range []scene.Kind{scene.KindCollision, scene.KindGlass, scene.KindSkyDecoration, scene.KindPlain} {
		nodes := g.NodesOfKind(k)
		if len(nodes) == 0 {
			continue
		}
		fmt.Printf("  %-16s %d\n", k, len(nodes))
		if k == scene.KindPlain {
			continue
		}
		for _, n := range nodes {
			fmt.Printf("    %s\n", n.Name)
		}
	}
	fmt.Println()

	surface := g.CollisionSurface()
	if surface.Empty() {
		fmt.Println("Collision: none (the rig will not move)")
	} else {
		b := surface.Bounds
		fmt.Printf("Collision: %s, %d triangles\n", surface.Name, len(surface.Triangles))
		fmt.Printf("  bounds   (%.2f, %.2f, %.2f) .. (%.2f, %.2f, %.2f)\n",
			b.Min.X(), b.Min.Y(), b.Min.Z(), b.Max.X(), b.Max.Y(), b.Max.Z())
	}
	if _, ok := g.Position(cfg.Proximity.BlockedMarker); ok {
		fmt.Printf("Blocked:  %s\n", cfg.Proximity.BlockedMarker)
	}
	fmt.Println()

	missing := 0
	fmt.Printf("POIs:     %d (%s)\n", a.Registry.Len(), cfg.Data.Registry)
	for _, name := range a.Registry.Names() {
		p, ok := g.Position(name)
		if !ok {
			missing++
			fmt.Printf("  %-24s MISSING NODE\n", name)
			continue
		}
		fmt.Printf("  %-24s (%.2f, %.2f, %.2f)\n", name, p.X(), p.Y(), p.Z())
	}
	if missing > 0 {
		fmt.Printf("%d POI(s) have no scene node and will never show\n", missing)
	}
	return missing
}

func walk(ctx context.Context, cfg *config.Config, a game.Assets, path string) error {
	script, err := replay.Load(path)
	if err != nil {
		return err
	}

	session := game.NewSession(cfg, nil)
	session.Start()
	session.InstallAssets(a)

	manager := states.NewManager()
	manager.Change(states.NewTouringState(session))
	defer manager.Close()

	frames := script.Frames()
	fmt.Printf("\nWalk: %s (%d frames)\n", script.Name, len(frames))

	host := replay.NewHost(frames, os.Stdout, *flagEvery)
	if err := game.New(session, manager, host, cfg.Locomotion.MaxFrameDelta).Run(ctx); err != nil {
		return err
	}

	p := session.Rig().Position
	fmt.Printf("Final:    (%.2f, %.2f, %.2f), mode %s\n", p.X(), p.Y(), p.Z(), session.Mode())
	return nil
}
