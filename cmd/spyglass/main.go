package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/spyglass/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	prefsPath := flag.String("prefs", "", "override preferences path (optional)")
	maxLines := flag.Int("max-lines", 0, "override retained line cap (optional)")
	noStdout := flag.Bool("no-stdout", false, "do not capture stdout")
	noStderr := flag.Bool("no-stderr", false, "do not capture stderr")
	demo := flag.Bool("demo", true, "emit sample output")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		PrefsPath:  *prefsPath,
		MaxLines:   *maxLines,
		NoStdout:   *noStdout,
		NoStderr:   *noStderr,
	}
	// Only a flag the user actually passed overrides the config file.
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "demo" {
			opts.Demo = demo
		}
	})

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "spyglass: %v\n", err)
		return 1
	}
	return 0
}
