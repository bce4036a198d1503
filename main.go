package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/secmon-lab/repodeck/pkg/cli"
)

func main() {
	// Optional .env for local development
	_ = godotenv.Load()

	if err := cli.New().Run(os.Args); err != nil {
		os.Exit(1)
	}
}
