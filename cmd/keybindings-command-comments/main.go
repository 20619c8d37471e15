package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"altkey/internal/cmd"
)

func main() {
	var tool cmd.CommentsTool
	ctx := kong.Parse(&tool, cmd.Options("keybindings-command-comments", "Add placeholder command comments above each \"command\" in a keybindings.json, keeping a .bak backup when writing in place.")...)

	if err := ctx.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
