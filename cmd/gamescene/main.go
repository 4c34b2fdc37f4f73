package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/gamescene/config"
	"github.com/plus3/gamescene/debugui"
	debugui_ebiten "github.com/plus3/gamescene/debugui/ebiten"
	"github.com/plus3/gamescene/host"
	"github.com/plus3/gamescene/logging"
	"github.com/plus3/gamescene/scene"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML scene configuration.")
	variant := flag.String("variant", "", "Scene variant: free-camera or steer.")
	assets := flag.String("assets", "", "Directory textures and models are loaded from.")
	model := flag.String("model", "", "glTF model inside the assets directory; the built-in cube when empty.")
	seed := flag.Uint64("seed", 0, "Seed for the initial placement; random when zero.")
	debugText := flag.Bool("debug-text", false, "Print controller values on screen.")
	debugUI := flag.Bool("debug-ui", false, "Show the Dear ImGui inspector overlay.")
	report := flag.Bool("report", false, "Print a frame timing report on exit.")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "variant":
			cfg.Scene.Variant = *variant
		case "assets":
			cfg.Assets = *assets
		case "model":
			cfg.Scene.Model = *model
		case "seed":
			cfg.Scene.Seed = *seed
		case "debug-text":
			cfg.Scene.DebugText = *debugText
		case "debug-ui":
			cfg.DebugUI = *debugUI
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, closeLog, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	logging.SetRoot(logger)
	ctx := logging.With(context.Background(), logger.Named("gamescene"))

	err = run(ctx, cfg, *report)
	if err != nil {
		logging.From(ctx).Error("Scene failed", zap.Error(err))
	}
	if cerr := closeLog(); cerr != nil {
		log.Printf("Failed to close log: %v", cerr)
	}
	if err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, report bool) error {
	logger := logging.From(ctx)
	engine, err := host.NewEngine(ctx, host.EngineConfig{
		Assets:   cfg.Assets,
		Model:    cfg.Scene.Model,
		Bindings: cfg.Bindings,
	})
	if err != nil {
		return err
	}

	var overlay *debugui_ebiten.ImguiBackend
	var uiInput debugui.InputState
	deps := engine.Deps()
	if cfg.DebugUI {
		overlay = debugui_ebiten.NewImguiBackend(cfg.Window.Title, cfg.Window.Width, cfg.Window.Height)
		deps.Input = debugui.CaptureInput{Input: engine.Input, State: &uiInput}
	} else {
		ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
		ebiten.SetWindowTitle(cfg.Window.Title)
	}
	ebiten.SetTPS(cfg.Window.TPS)

	s := scene.New(deps, cfg.SceneOptions())
	if err := s.Initialize(); err != nil {
		return err
	}
	defer s.Close()

	game := &host.Game{
		Scene:  s,
		Device: engine.Device,
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		Times:  host.FrameTimes{Enabled: report},
	}

	if overlay != nil {
		s.AddSystem(&debugui.System{
			Items: []debugui.Item{
				debugui.NodeInspector(s),
				debugui.NewPerformanceStats(120).Item(s.Stats),
			},
			InputState: &uiInput,
		})
		game.Overlay = overlay
	}

	logger.Info("Running scene",
		zap.Stringer("variant", s.Options().Variant),
		zap.Int("tps", cfg.Window.TPS),
		zap.Bool("debugUI", cfg.DebugUI))

	start := time.Now()
	if err := ebiten.RunGame(game); err != nil {
		return err
	}

	if report {
		r := &Report{
			Variant:    s.Options().Variant.String(),
			TPS:        cfg.Window.TPS,
			TotalTime:  time.Since(start),
			UpdateTime: Stats{Samples: game.Times.Update},
			DrawTime:   Stats{Samples: game.Times.Draw},
			Scheduler:  s.Stats(),
		}
		r.UpdateTime.Finalize()
		r.DrawTime.Finalize()

		fmt.Println("\n--- Frame Report ---")
		if err := r.Generate(os.Stdout); err != nil {
			return err
		}
		fmt.Println("--- End of Report ---")
	}
	return nil
}
