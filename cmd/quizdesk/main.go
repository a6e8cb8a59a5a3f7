package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/quizdesk/quizdesk/internal/cli"
)

func main() {
	if os.Getenv("APP_ENV") != "production" {
		// Optional local overrides; absence is not an error.
		_ = godotenv.Load(".env")
	}

	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
