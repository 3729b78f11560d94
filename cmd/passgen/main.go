package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/vaultpass/passgen-go/internal/cli"
)

var version = "dev"

func main() {
	// AUTH_SECRET for `passgen token` may live in .env next to the API config.
	_ = godotenv.Load()

	if err := cli.NewRootCommand(cli.Options{Version: version}).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
