// Command combatsim runs an arena headless, driven by a tengo script, and
// logs what happened.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/milk9111/glitchknight/prefabs"
)

func main() {
	arenaFile := flag.String("spec", prefabs.ArenaFile, "arena spec under prefabs/")
	scriptName := flag.String("script", "duel.tengo", "input script under prefabs/scripts/")
	ticks := flag.Int("ticks", 60*60, "maximum ticks to run; 0 runs until the fight ends")
	realtime := flag.Bool("realtime", false, "pace ticks at 60 per second")
	metricsAddr := flag.String("metrics", "", "serve Prometheus metrics on this address, e.g. 127.0.0.1:9090")
	watch := flag.Bool("watch", false, "reload specs and the script when they change")
	debug := flag.Bool("debug", false, "log state changes and combat resolution")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	r, err := NewRunner(Options{
		ArenaFile:   *arenaFile,
		Script:      *scriptName,
		Ticks:       *ticks,
		Realtime:    *realtime,
		MetricsAddr: *metricsAddr,
		Watch:       *watch,
		Debug:       *debug,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer r.Close()

	summary, err := r.Run(ctx)
	if err != nil && err != context.Canceled {
		log.Fatal(err)
	}
	summary.Log()
}
