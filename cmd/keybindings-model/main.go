package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"altkey/internal/cmd"
)

func main() {
	var tool cmd.ModelTool
	ctx := kong.Parse(&tool, cmd.Options("keybindings-model", "Generate a JSON array of keybinding objects. Each command is the key followed by 4 hex characters.")...)

	if err := ctx.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
