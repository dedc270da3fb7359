package main

import (
	"os"

	"github.com/nazma5979/moodlog/internal/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
