package main

import (
	"github.com/versync-dev/versync/cmd"
)

// main is the entry point for the versync CLI. All command-line parsing,
// configuration and execution happens in the cmd package.
func main() {
	cmd.Execute()
}
