//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"fonsters/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	configPath := flag.String("config", "", "optional YAML settings file")
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if *configPath != "" {
		if err := cfg.ApplyFile(flag.CommandLine, *configPath); err != nil {
			log.Fatalf("load config: %v", err)
		}
	}

	game := app.New(cfg.Seed, cfg.Scale, cfg.HUD, cfg.Overlay)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("fonsters")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
