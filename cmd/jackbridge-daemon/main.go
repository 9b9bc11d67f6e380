package main

import (
	"context"
	"flag"
	"log"
	"os"

	"jackbridge/internal/app"
	"jackbridge/internal/daemon"
)

func main() {
	configPath := flag.String("config", "", "Path to the daemon config file")
	force := flag.Bool("force", false, "Stop an existing daemon before starting")
	flag.Parse()

	controller := app.New(app.Options{ConfigPath: *configPath})

	if daemon.IsRunning() {
		if !*force {
			log.Printf("Daemon is already running. Use --force to restart.")
			return
		}
		log.Printf("Stopping existing daemon...")
		if err := controller.StopDaemon(true); err != nil {
			log.Fatalf("failed to stop running daemon: %v", err)
		}
	}

	log.Printf("Daemon starting (pid %d).", os.Getpid())
	if err := controller.RunDaemon(context.Background()); err != nil {
		log.Fatalf("daemon exited with error: %v", err)
	}
	log.Printf("Daemon stopped.")
}
