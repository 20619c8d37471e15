package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"altkey/internal/cmd"
)

func main() {
	var tool cmd.StripTool
	ctx := kong.Parse(&tool, cmd.Options("keybindings-remove-comments", "Read JSONC from stdin and print it as JSON with comments removed.")...)

	if err := ctx.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
