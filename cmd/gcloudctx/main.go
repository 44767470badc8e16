package main

import (
	"fmt"
	"os"

	"github.com/oliverisaac/gcloudctx/internal/app"
	"github.com/oliverisaac/gcloudctx/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(app.ExitCode(err))
	}
}
