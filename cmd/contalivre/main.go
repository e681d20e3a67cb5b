package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/gonzalo891751/contalivre-sub007/internal/commands"
)

func main() {
	// Optional .env for CONTALIVRE_DIR and friends; absence is fine.
	_ = godotenv.Load()

	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
