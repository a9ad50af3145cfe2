// Package main provides the entry point for the dispatchctl CLI.
package main

import (
	"fmt"
	"os"

	"dispatch_service/internal/cli"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
