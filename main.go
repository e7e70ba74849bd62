/*
Headless turntable demo. Renders a spinning wireframe scene to PNG
frames while watching its settings file for live edits.
*/
package main

import (
	"context"
	"flag"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/cartesio/core"
	"github.com/spaghettifunk/cartesio/testbed"
)

func main() {
	configPath := flag.String("config", "testbed/settings.toml", "path to the settings file")
	flag.Parse()

	// capture sigterm and other system calls here
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	game, err := testbed.NewGame(*configPath)
	if err != nil {
		core.LogFatal(err.Error())
	}

	if err := game.Run(ctx); err != nil {
		core.LogFatal(err.Error())
	}
}
