package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"altkey/internal/cmd"
)

func main() {
	var tool cmd.LintTool
	ctx := kong.Parse(&tool, cmd.Options("keybindings-lint-comments", "Lint comments for keybinding \"key\" attributes. Never modifies the file.")...)

	if err := ctx.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
