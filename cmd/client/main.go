package main

import (
	"context"

	"github.com/dalesbridge/chronicle/internal/client/cli"
	"github.com/dalesbridge/chronicle/internal/client/config"
)

func main() {
	ctx := context.Background()
	cfg := config.LoadConfig()
	app := cli.NewApp(cfg)
	app.Run(ctx)
}
