package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"eca/internal/automaton"
	"eca/internal/render"
)

func main() {
	rule := flag.Int("rule", 30, "Wolfram code in [0, 255]")
	rows := flag.Int("rows", 16, "number of generations to compute")
	zero := flag.String("zero", "0", "symbol for inactive cells in text output")
	one := flag.String("one", "1", "symbol for active cells in text output")
	pngPath := flag.String("png", "", "write a PNG to this path instead of printing text")
	block := flag.Int("block", 8, "pixel size of one cell in PNG output")
	flag.Parse()

	auto, err := automaton.New(*rows, *rule)
	if err != nil {
		log.Fatal(err)
	}

	if *pngPath != "" {
		f, err := os.Create(*pngPath)
		if err != nil {
			log.Fatal(err)
		}
		if err := render.WritePNG(f, auto.Grid(), *block); err != nil {
			f.Close()
			log.Fatal(err)
		}
		if err := f.Close(); err != nil {
			log.Fatal(err)
		}
		return
	}

	fmt.Println(auto.RenderWith(symbol(*zero, '0'), symbol(*one, '1')))
}

// symbol picks the first rune of s, falling back when the flag is empty.
func symbol(s string, fallback rune) rune {
	for _, r := range s {
		return r
	}
	return fallback
}
