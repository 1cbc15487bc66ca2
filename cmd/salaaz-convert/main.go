package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/SalaazMarket/Converter/cmd/salaaz-convert/commands"
)

func main() {
	// Local overrides for taxonomy paths, log level, etc.
	_ = godotenv.Load()

	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
