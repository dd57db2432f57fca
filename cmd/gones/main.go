// Package main implements the gones command-line NES emulator, a thin
// ebiten display shell around the internal/console core.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/nescore/gones/internal/console"
)

func main() {
	var (
		romFile = flag.String("rom", "", "Path to an iNES (.nes) ROM image")
		nogui   = flag.Bool("nogui", false, "Run headless: advance a fixed number of frames and exit")
		frames  = flag.Int("frames", 60, "Frame count for -nogui mode")
	)
	flag.Parse()

	if *romFile == "" {
		log.Fatal("a -rom file is required")
	}

	f, err := os.Open(*romFile)
	if err != nil {
		log.Fatalf("opening ROM: %v", err)
	}
	defer f.Close()

	con, err := console.Load(f, console.Config{})
	if err != nil {
		log.Fatalf("loading ROM: %v", err)
	}

	if *nogui {
		runHeadless(con, *frames)
		return
	}

	game := newGame(con)
	ebiten.SetWindowSize(256*3, 240*3)
	ebiten.SetWindowTitle(fmt.Sprintf("gones - %s", *romFile))
	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("ebiten run failed: %v", err)
	}
}

// runHeadless drives the console for a fixed number of frames with no
// display backend, for scripted smoke tests and CI. It stops early once
// the CPU reports a jam.
func runHeadless(con *console.Console, frames int) {
	ran := 0
	for i := 0; i < frames; i++ {
		con.RunFrame()
		ran++
		if con.Jammed() {
			fmt.Printf("CPU jammed after frame %d\n", i)
			break
		}
	}
	fmt.Printf("ran %d frames\n", ran)
}
