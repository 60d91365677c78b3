//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"eca/internal/app"
	"eca/internal/automaton"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	auto, err := automaton.New(cfg.Rows, cfg.Rule)
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(auto, cfg.Scale, cfg.Seed)
	size := auto.Grid().Size()

	ebiten.SetWindowTitle(fmt.Sprintf("eca — rule %d", auto.Rule()))
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
