package main

import (
	"flag"
	"log"

	"jackbridge/internal/app"
	"jackbridge/internal/tui"
)

func main() {
	configPath := flag.String("config", "", "Path to the daemon config file")
	flag.Parse()

	controller := app.New(app.Options{ConfigPath: *configPath})
	if err := tui.Run(controller); err != nil {
		log.Fatalf("tui exited with error: %v", err)
	}
}
