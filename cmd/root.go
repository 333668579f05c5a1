package cmd

import (
	"net/http"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/collide-sim/collide-sim/render"
	sim "github.com/collide-sim/collide-sim/sim"
	"github.com/collide-sim/collide-sim/sim/trace"
)

var (
	// CLI flags for the simulation run
	seed       int64   // Seed for random particle generation
	numRandom  int     // Number of random particles when no input file is given
	inputFile  string  // Particle configuration file (.txt 9-tuple format or .yaml scenario)
	horizon    float64 // Simulation-time limit for prediction and redraw
	redrawHz   float64 // Redraw ticks per simulated-time unit
	logLevel   string  // Log verbosity level
	traceLevel string  // Event trace level (none, events)
	serveAddr  string  // Optional address for the live WebSocket viewer
	framePause int     // Wall-clock pause per frame in milliseconds
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "collide-sim",
	Short: "Event-driven simulator for elastic particle collisions",
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the collision simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if !trace.IsValidLevel(traceLevel) {
			logrus.Fatalf("Invalid trace level: %s", traceLevel)
		}

		rng := sim.NewPartitionedRNG(sim.NewSimulationKey(seed))

		// Build the particle arena and run parameters: either a scenario /
		// particle file, or a seeded random population.
		cfg := sim.SimulationConfig{Horizon: horizon, RedrawHz: redrawHz}
		var particles []sim.Particle
		if inputFile != "" {
			scenario, err := LoadScenario(inputFile)
			if err != nil {
				logrus.Fatalf("unable to read particle configuration: %v", err)
			}
			particles, err = sim.ParticlesFromSpecs(scenario.Particles)
			if err != nil {
				logrus.Fatalf("malformed particle configuration: %v", err)
			}
			if horizon == 0 && scenario.Horizon != 0 {
				cfg.Horizon = scenario.Horizon
			}
			if redrawHz == 0 && scenario.RedrawHz != 0 {
				cfg.RedrawHz = scenario.RedrawHz
			}
		} else {
			particles, err = sim.RandomParticles(rng.ForSubsystem(sim.SubsystemParticles), numRandom)
			if err != nil {
				logrus.Fatalf("unable to generate particles: %v", err)
			}
			paintPalette(particles, rng)
		}

		logrus.Infof("Starting simulation with %d particles, horizon=%v, redrawHz=%v",
			len(particles), cfg.WithDefaults().Horizon, cfg.WithDefaults().RedrawHz)

		startTime := time.Now()

		// Initialize the simulator
		system, err := sim.NewCollisionSystem(particles, cfg)
		if err != nil {
			logrus.Fatalf("unable to initialize simulation: %v", err)
		}

		tr := trace.New(trace.Level(traceLevel))
		system.SetTrace(tr)

		// Wire the renderer: a live WebSocket viewer when --serve is set,
		// a headless logging renderer otherwise.
		pause := time.Duration(framePause) * time.Millisecond
		if serveAddr != "" {
			ws := render.NewWebSocket()
			ws.Pause = pause
			defer ws.Close()
			mux := http.NewServeMux()
			mux.HandleFunc("/ws", ws.Handler())
			go func() {
				logrus.Infof("Serving frames on ws://%s/ws", serveAddr)
				if err := http.ListenAndServe(serveAddr, mux); err != nil {
					logrus.Fatalf("viewer server failed: %v", err)
				}
			}()
			system.SetRenderer(ws)
		} else {
			system.SetRenderer(render.NewLog(pause))
		}

		system.Run()
		system.Metrics.Print(startTime)
		if tr.Level == trace.LevelEvents {
			logrus.Infof("Trace: %d events recorded, non-decreasing=%v",
				len(tr.Events), tr.TimesNonDecreasing())
		}

		logrus.Info("Simulation complete.")
	},
}

// paintPalette assigns random display colors to a generated population.
// Colors are opaque to the physics; drawing them from their own RNG
// subsystem keeps the particle stream stable across palette changes.
func paintPalette(particles []sim.Particle, rng *sim.PartitionedRNG) {
	colors := rng.ForSubsystem(sim.SubsystemColors)
	for i := range particles {
		particles[i].Color = sim.Color{
			R: uint8(colors.Intn(256)),
			G: uint8(colors.Intn(256)),
			B: uint8(colors.Intn(256)),
		}
	}
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for random particle generation")
	runCmd.Flags().IntVar(&numRandom, "n", 50, "Number of random particles when no --input is given")
	runCmd.Flags().StringVar(&inputFile, "input", "", "Particle configuration file (.txt 9-tuple format or .yaml scenario)")
	runCmd.Flags().Float64Var(&horizon, "horizon", 0, "Simulation horizon (0 = scenario value or 10000)")
	runCmd.Flags().Float64Var(&redrawHz, "hz", 0, "Redraw ticks per simulated-time unit (0 = scenario value or 0.5)")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&traceLevel, "trace", "none", "Event trace level (none, events)")
	runCmd.Flags().StringVar(&serveAddr, "serve", "", "Address for the live WebSocket viewer (e.g. localhost:8080)")
	runCmd.Flags().IntVar(&framePause, "frame-pause", 20, "Wall-clock pause per redraw frame in milliseconds")

	rootCmd.AddCommand(runCmd)
}
