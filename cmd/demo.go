package cmd

import (
	"math"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"dbgvis/internal/config"
	"dbgvis/internal/console"
	"dbgvis/internal/service"
	"dbgvis/internal/tui"
	"dbgvis/internal/vis"
	"dbgvis/pkg/logging"
)

func newDemoCmd() *cobra.Command {
	var (
		useConsole bool
		duration   time.Duration
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the visualizer with synthetic telemetry producers",
		Long: `demo starts the render service plus a handful of producer goroutines
publishing counters, graph samples and structure snapshots, so the
whole pipeline can be watched live without instrumenting a program.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}

			var backend service.Backend
			if useConsole {
				logging.InitForCLI(logging.LevelInfo, os.Stderr)
				backend = console.New(console.Options{
					FrameInterval:    cfg.Window.FrameInterval(),
					SnapshotInterval: cfg.Console.SnapshotInterval,
				})
			} else {
				// Route log entries away from the terminal; the demo has no
				// log pane, so they are dropped once the buffer fills.
				logging.InitForTUI(logging.LevelWarn)
				backend = tui.New(tui.Options{FrameInterval: cfg.Window.FrameInterval()})
			}

			svc := service.New(backend, service.Options{
				WindowTitle: cfg.Window.Title,
				MainTile:    cfg.Window.MainTile,
			})

			stop := make(chan struct{})
			var wg sync.WaitGroup
			startProducers(svc, cfg, &wg, stop)

			waitForExit(svc, duration)

			close(stop)
			wg.Wait()
			svc.Stop()
			return nil
		},
	}

	cmd.Flags().BoolVar(&useConsole, "console", false, "use the headless console presenter instead of the TUI")
	cmd.Flags().DurationVar(&duration, "duration", 0, "stop automatically after this long (0 runs until interrupted)")
	return cmd
}

// waitForExit blocks until a signal arrives, the optional duration elapses,
// or the user quits the UI (observed as the service stopping on its own).
func waitForExit(svc *service.Service, duration time.Duration) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	var timeout <-chan time.Time
	if duration > 0 {
		timeout = time.After(duration)
	}

	poll := time.NewTicker(200 * time.Millisecond)
	defer poll.Stop()

	sawRunning := false
	for {
		select {
		case <-sig:
			return
		case <-timeout:
			return
		case <-poll.C:
			switch svc.State() {
			case service.StateRunning:
				sawRunning = true
			case service.StateStopped:
				if sawRunning {
					return
				}
			}
		}
	}
}

// startProducers spawns the synthetic telemetry sources. Every update goes
// through the typed fire-and-forget surface from its own goroutine.
func startProducers(svc *service.Service, cfg config.Config, wg *sync.WaitGroup, stop <-chan struct{}) {
	every := func(interval time.Duration, fn func(i int)) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ticker := time.NewTicker(interval)
			defer ticker.Stop()
			for i := 0; ; i++ {
				select {
				case <-stop:
					return
				case <-ticker.C:
					fn(i)
				}
			}
		}()
	}

	svc.ConfigureGraph("", "fps", vis.GraphConfig{
		MaxSamples: cfg.Graph.DefaultMaxSamples,
		AutoScale:  true,
	})

	every(100*time.Millisecond, func(i int) {
		svc.SetInt("", "frame", int64(i))
		svc.SetFloat("", "load", 0.5+0.4*math.Sin(float64(i)/11))
		svc.SetBool("", "steady", i%20 < 15)
		svc.PushSample("", "fps", 60+6*math.Sin(float64(i)/7))
	})

	every(250*time.Millisecond, func(i int) {
		svc.UpdateStructure("", "player", func(b *vis.StructureBuilder) {
			b.Int("health", 97)
			b.Int("mana", int64(44+i%10))
			pos := b.Nested("position")
			pos.Float("x", math.Cos(float64(i)/5))
			pos.Float("y", math.Sin(float64(i)/5))
			pos.Float("z", 0)
		})
	})

	// A second window tile with its own tab, fed through raw commands.
	every(500*time.Millisecond, func(i int) {
		svc.Post(func(root *vis.Visualizer) {
			tile := root.Tile(cfg.Window.MainTile).AddTile("ai", "AI Debug")
			tab := tile.Tab("state")
			states := []string{"searching", "tracking", "idle"}
			tab.UpdateValue("state", vis.Text(states[i%len(states)]))
			tab.PushGraphSample("threat", 0.5+0.5*math.Sin(float64(i)/3))
		})
	})
}
