// Package main is the entry point for the voicequery CLI binary.
package main

import (
	"os"

	cli "voicequery/pkg/cli"
)

func main() {
	os.Exit(cli.Execute())
}
