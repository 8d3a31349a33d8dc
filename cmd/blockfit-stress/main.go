package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/plus3/blockfit/board"
	"github.com/plus3/blockfit/engine"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	width := flag.Int("width", 8, "Board width in cells.")
	height := flag.Int("height", 8, "Board height in cells.")
	seed := flag.Uint64("seed", 0, "Random seed. Zero picks one.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if *seed == 0 {
		*seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(*seed, *seed>>1))

	log.WithField("seed", *seed).Info("Starting blockfit stress test...")

	report := &Report{
		Duration:       *duration,
		Width:          *width,
		Height:         *height,
		Seed:           *seed,
		GCPauseMetrics: *gcPauseMetrics,
		DropTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	// Game logging is silenced so it does not dominate the timings.
	quiet := logrus.New()
	quiet.SetLevel(logrus.WarnLevel)

	session, err := engine.NewSession(*width, *height, engine.Options{
		Rand:   rng,
		Logger: quiet,
		Listener: engine.ListenerFuncs{
			Cleared: func(r board.ClearReport) {
				report.LinesCleared += int64(r.Lines())
			},
			GameOver: func() {
				report.Games++
			},
		},
	})
	if err != nil {
		log.WithError(err).Fatal("failed to create session")
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Infof("Running simulation for %s...", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	bot := &Bot{session: session, rng: rng}
	startTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			if session.Over() {
				if err := session.StartLevel(*width, *height); err != nil {
					log.WithError(err).Fatal("restart failed")
				}
				continue
			}

			dropStart := time.Now()
			placed, err := bot.Move()
			dropDuration := time.Since(dropStart)
			if err != nil {
				log.WithError(err).Fatal("bot move failed")
			}
			if placed {
				report.Placements++
			}
			report.DropTime.Samples = append(report.DropTime.Samples, dropDuration)
		}
	}

	report.TotalTime = time.Since(startTime)
	report.DropTime.Finalize()
	report.Pipeline = session.Stats()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Info("Simulation finished.")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.WithError(err).Fatal("failed to generate report")
	}
	fmt.Println("--- End of Report ---")
}
