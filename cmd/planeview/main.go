//go:build ebiten

package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"

	"planar/internal/app"
	"planar/internal/core"
	_ "planar/internal/sims/briansbrain"
	_ "planar/internal/sims/elementary"
	_ "planar/internal/sims/life"
)

func main() {
	cfg := app.NewConfig()
	configPath := flag.String("config", "", "YAML file of defaults; flags override it")
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if *configPath != "" {
		if err := cfg.LoadFile(*configPath); err != nil {
			log.Fatal(err)
		}
		flag.Parse()
	}

	params, err := cfg.SimParams()
	if err != nil {
		log.Fatal(err)
	}
	sim, err := core.New(cfg.Sim, params)
	if err != nil {
		log.Fatal(err)
	}
	if err := sim.Reset(cfg.Seed); err != nil {
		log.Fatalf("reset %s: %v", sim.Name(), err)
	}

	game := app.New(sim, cfg)

	ebiten.SetWindowTitle("planeview: " + sim.Name())
	ebiten.SetTPS(60)
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
