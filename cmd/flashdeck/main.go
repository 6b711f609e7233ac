package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/flashdeck/flashdeck/internal/client"
	"github.com/flashdeck/flashdeck/internal/client/cli"
)

func main() {
	defaultAddr := os.Getenv("SERVER_ADDR")
	if defaultAddr == "" {
		defaultAddr = "http://localhost:3000"
	}
	addr := flag.String("addr", defaultAddr, "flashdeck server base URL")
	flag.Parse()

	app := cli.NewApp(client.New(*addr, nil))
	if err := app.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "flashdeck: %v\n", err)
		os.Exit(1)
	}
}
