package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/automoto/solar-sprint/shared/leveldata"
	"github.com/automoto/solar-sprint/shared/replay"
	"github.com/automoto/solar-sprint/shared/sim"
	"github.com/automoto/solar-sprint/shared/tuning"
)

func main() {
	scriptPath := flag.String("script", "", "YAML input script to replay (required)")
	levelPath := flag.String("level", "", "TMX level file (empty = built-in solar facility)")
	tuningPath := flag.String("tuning", "", "YAML tuning overrides")
	quiet := flag.Bool("quiet", false, "Only print the final result")
	flag.Parse()

	if *scriptPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	script, err := replay.Load(*scriptPath)
	if err != nil {
		log.Fatalf("Failed to load script: %v", err)
	}

	level := leveldata.SolarFacility()
	if *levelPath != "" {
		level, err = leveldata.LoadLevel(os.DirFS(filepath.Dir(*levelPath)), filepath.Base(*levelPath))
		if err != nil {
			log.Fatalf("Failed to load level: %v", err)
		}
	}

	tn := sim.DefaultTuning()
	if *tuningPath != "" {
		tn, err = tuning.Load(*tuningPath, tn)
		if err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
	}

	world, err := sim.New(level, tn)
	if err != nil {
		log.Fatalf("Failed to build world: %v", err)
	}

	var onEvent func(replay.FrameEvent)
	if !*quiet {
		onEvent = func(fe replay.FrameEvent) {
			fmt.Printf("%5d  %8s  %s\n", fe.Frame, sim.FormatTime(fe.Now), replay.Describe(fe.Events))
		}
	}

	res := replay.Run(world, script, onEvent)

	fmt.Printf("level %s, %d frames at %v\n", level.Name, res.Frames, script.Delta())
	if res.Finished {
		fmt.Printf("finished in %s seconds\n", sim.FormatTime(res.Elapsed))
	} else {
		fmt.Printf("not finished (state %s)\n", res.State)
	}
	fmt.Printf("boosts %d, hazard resets %d\n", res.Boosts, res.Failures)
	b := res.Final
	fmt.Printf("body x=%.1f y=%.1f vx=%.1f vy=%.1f grounded=%t charge=%d\n",
		b.X, b.Y, b.VX, b.VY, b.Grounded, b.Charge)
}
