package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"altkey/internal/cmd"
	"altkey/internal/version"
)

func main() {
	// Parse CLI arguments with Kong
	var cli cmd.CLI
	ctx := kong.Parse(&cli, append(cmd.Options("altkey", version.Tagline), kong.Bind(&cli.Globals))...)

	// Execute the selected command
	if err := ctx.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
