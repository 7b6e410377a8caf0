package main

import (
	"log"
	"os"

	"favorites-conformance/cmd/cli"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file, best-effort.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	os.Exit(cli.Execute())
}
