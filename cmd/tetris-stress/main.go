// Command tetris-stress drives many headless sessions with random input and
// reports tick timings.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/tetris/game"
)

var commands = []game.Command{
	game.MoveLeft, game.MoveRight, game.MoveDown, game.MoveDown,
	game.Rotate, game.RotateClockwise, game.RotateCounterclockwise,
	game.Drop, game.ToggleRotateDirection,
}

// RandomInputSystem queues one random command per frame and restarts
// finished games.
type RandomInputSystem struct {
	rng        *rand.Rand
	restarting bool
	Finished   int
}

func (s *RandomInputSystem) Execute(frame *game.UpdateFrame) {
	if frame.Session.State().Over {
		if !s.restarting {
			s.restarting = true
			s.Finished++
			frame.Session.Enqueue(game.Restart)
		}
		return
	}
	s.restarting = false
	frame.Session.Enqueue(commands[s.rng.IntN(len(commands))])
}

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	sessionCount := flag.Int("sessions", 8, "The number of sessions ticked each update.")
	seed := flag.Int64("seed", 1, "Base seed for the sessions and their input.")
	height := flag.Int("height", 20, "Visible board rows.")
	width := flag.Int("width", 10, "Board columns.")
	frame := flag.Duration("frame", 16*time.Millisecond, "Simulated time per update.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Println("Starting Tetris stress test...")

	// 1. Setup sessions with a random input system each
	cfg := game.DefaultConfig()
	cfg.Height, cfg.Width = *height, *width

	sessions := make([]*game.Session, *sessionCount)
	inputs := make([]*RandomInputSystem, *sessionCount)
	for i := range sessions {
		cfg.Seed = *seed + int64(i)*1000
		session, err := game.NewSession(cfg)
		if err != nil {
			log.Fatalf("Failed to create session %d: %v", i, err)
		}
		inputs[i] = &RandomInputSystem{rng: rand.New(rand.NewPCG(uint64(cfg.Seed), uint64(i)))}
		session.Scheduler().Register(inputs[i])
		sessions[i] = session
	}
	log.Printf("Created %d sessions of %dx%d.\n", *sessionCount, *height, *width)

	// 2. Run the simulation loop
	report := &Report{
		Duration:       *duration,
		Sessions:       *sessionCount,
		Height:         *height,
		Width:          *width,
		Seed:           *seed,
		Frame:          *frame,
		GCPauseMetrics: *gcPauseMetrics,
		TickTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalUpdates int64

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			tickStart := time.Now()
			for _, s := range sessions {
				s.Tick(*frame)
			}
			report.TickTime.Samples = append(report.TickTime.Samples, time.Since(tickStart))
			totalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = totalUpdates
	report.TickTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	for i, s := range sessions {
		report.Collect(s, inputs[i].Finished)
	}

	log.Println("Simulation finished.")

	// 3. Generate Report to Console
	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}
