// Command gaze-stars generates a categorized README of a user's starred
// GitHub repositories.
package main

import (
	"os"

	"github.com/adnahmed/gaze-stars/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
