package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/glitchknight/prefabs"
)

func main() {
	arenaFile := flag.String("spec", prefabs.ArenaFile, "arena spec under prefabs/")
	debug := flag.Bool("debug", false, "enable debug drawing and combat logs")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	mute := flag.Bool("mute", false, "disable cue sounds")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("glitchknight arena")

	game, err := NewGame(*arenaFile, *debug, !*mute)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil && err != ebiten.Termination {
		log.Fatal(err)
	}
}
