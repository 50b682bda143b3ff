package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/lixenwraith/lensing/config"
	"github.com/lixenwraith/lensing/parameter"
)

var (
	configFlag  = flag.String("config", "", "Path to a TOML config file")
	framesFlag  = flag.Int("frames", 3600, "Number of frames to simulate")
	dtFlag      = flag.Float64("dt", parameter.BenchFrameDelta, "Seconds per frame")
	modelFlag   = flag.String("model", "", "Physics model: newtonian, geodesic")
	patternFlag = flag.String("pattern", "", "Spawn pattern: left-edge, four-edges, radial, spiral")
	policyFlag  = flag.String("policy", "", "Population policy: recycle, cull")
	seedFlag    = flag.Uint64("seed", 0, "Random seed (0 keeps the configured seed)")
	workersFlag = flag.Int("workers", 0, "Worker goroutines for ray stepping (0 keeps the configured count)")
	parMinFlag  = flag.Int("parallel-min", -1, "Ray count at which workers take over (-1 keeps the configured threshold)")
	widthFlag   = flag.Int("width", 72, "Chart width in columns")
	heightFlag  = flag.Int("height", 12, "Chart height in rows")
	dumpFlag    = flag.Bool("dump-config", false, "Print the effective config as TOML and exit")
)

func loadConfig() (config.Config, error) {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return cfg, err
	}
	if *modelFlag != "" {
		cfg.Physics.Model = *modelFlag
	}
	if *patternFlag != "" {
		cfg.Population.Pattern = *patternFlag
	}
	if *policyFlag != "" {
		cfg.Population.Policy = *policyFlag
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if *workersFlag > 0 {
		cfg.Population.Workers = *workersFlag
	}
	if *parMinFlag >= 0 {
		cfg.Population.ParallelMin = *parMinFlag
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("flags: %w", err)
	}
	cfg.Clamp()
	return cfg, nil
}

func main() {
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("lensing-bench: ")

	cfg, err := loadConfig()
	if err != nil {
		log.Fatal(err)
	}

	if *dumpFlag {
		if err := config.Write(os.Stdout, cfg); err != nil {
			log.Fatal(err)
		}
		return
	}

	if *framesFlag < 0 || *dtFlag <= 0 {
		log.Fatalf("frames must be >= 0 and dt > 0, got %d and %g", *framesFlag, *dtFlag)
	}

	log.Printf("running %d frames, model=%s pattern=%s policy=%s workers=%d parallel-min=%d",
		*framesFlag, cfg.Model(), cfg.Pattern(), cfg.Population.Policy, cfg.Population.Workers, cfg.Population.ParallelMin)

	res := run(cfg, *framesFlag, *dtFlag)
	fmt.Println(render(res, *widthFlag, *heightFlag))
}
