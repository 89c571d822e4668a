package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/emotional-mirror/internal/config"
	"github.com/iburimskiy/emotional-mirror/internal/emotion"
	"github.com/iburimskiy/emotional-mirror/internal/term"
)

func main() {
	cfg := config.Load()
	// the terminal belongs to tcell, so logs go to stderr only when asked
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: max(cfg.LogLevel, slog.LevelWarn)})))

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	store := emotion.NewStore()
	app, err := term.New(screen, store, cfg)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		os.Exit(1)
	}
	app.Run(30)
	app.Close()
	store.Close()
	screen.Fini()
}
