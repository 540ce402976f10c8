package main

import (
	"os"

	"github.com/moodtrack/moodtrack/internal/cli"
)

func main() {
	err := cli.Execute()
	if err != nil {
		os.Exit(1)
	}
}
