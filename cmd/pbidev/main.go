package main

import (
	"os"

	"github.com/steven3002/pbi-go/internal/devcli/commands"
)

// Entry point for the pbidev CLI.
func main() {
	os.Exit(commands.Execute())
}
