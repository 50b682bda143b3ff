package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/lensing/audio"
	"github.com/lixenwraith/lensing/config"
	"github.com/lixenwraith/lensing/engine"
)

var (
	configFlag  = flag.String("config", "", "Path to a TOML config file")
	debugFlag   = flag.Bool("debug", false, "Write logs to logs/lensing.log")
	modelFlag   = flag.String("model", "", "Physics model: newtonian, geodesic")
	patternFlag = flag.String("pattern", "", "Spawn pattern: left-edge, four-edges, radial, spiral")
	policyFlag  = flag.String("policy", "", "Population policy: recycle, cull")
	seedFlag    = flag.Uint64("seed", 0, "Random seed (0 keeps the configured seed)")
	audioFlag   = flag.Bool("audio", false, "Enable the absorption chime")
)

// handleCrash restores the terminal before printing the panic and stack
func handleCrash(screen tcell.Screen, r any) {
	if screen != nil {
		screen.Fini()
	}
	fmt.Fprintf(os.Stderr, "\n\x1b[31mLENSING CRASHED: %v\x1b[0m\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
	os.Exit(1)
}

// loadConfig layers command-line flags over the file and environment config
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
	if *audioFlag {
		cfg.Audio.Enabled = true
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("flags: %w", err)
	}
	cfg.Clamp()
	return cfg, nil
}

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "lensing: %v\n", err)
		os.Exit(2)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	// Ensure terminal is reset even if the viewer crashes
	defer func() {
		if r := recover(); r != nil {
			handleCrash(screen, r)
		}
	}()
	defer screen.Fini()

	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault)

	sim := engine.NewSimulation(cfg)
	defer sim.Close()

	if sound, err := audio.NewEngine(cfg.SoundConfig()); err != nil {
		log.Printf("audio: %v (continuing without audio)", err)
	} else if err := sound.Start(); err != nil {
		log.Printf("audio: %v (continuing without audio)", err)
	} else {
		defer sound.Stop()
		sim.SetAbsorbHandler(func(n int) { sound.PlayAbsorb(n) })
	}

	log.Printf("lensing: model=%s pattern=%s policy=%s seed=%d",
		cfg.Model(), cfg.Pattern(), cfg.Population.Policy, cfg.Seed)

	clock := engine.NewFrameClock(engine.NewMonotonicTimeProvider())
	NewViewer(screen, sim, clock).run()
}
