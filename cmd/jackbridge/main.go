package main

import (
	"log"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jackbridge [command]",
	Short: "jackbridge: Bluetooth audio bridge supervisor",
	Long:  `jackbridge watches for remote Bluetooth audio endpoints and supervises the relay processes that bridge them into the local audio server.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
