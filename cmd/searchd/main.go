package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/leengari/mini-search/internal/engine"
	"github.com/leengari/mini-search/internal/index"
	"github.com/leengari/mini-search/internal/logging"
	"github.com/leengari/mini-search/internal/network"
)

func main() {
	indexPath := flag.String("index", "indexes/demo", "path to the index directory")
	port := flag.Int("port", 7700, "TCP port to listen on")
	maxConns := flag.Int("max-conns", 64, "maximum concurrent connections")
	flag.Parse()

	logger, closeFn := logging.SetupLogger()
	defer closeFn()

	slog.SetDefault(logger)
	slog.Info("Starting searchd...")

	// Load index
	idx, err := index.Load(*indexPath, logger)
	if err != nil {
		slog.Error("failed to load index", "error", err)
		closeFn()
		os.Exit(1)
	}

	// Build engine
	eng, err := engine.New(idx)
	if err != nil {
		slog.Error("failed to create engine", "error", err)
		closeFn()
		os.Exit(1)
	}

	// Register logging observer for lifecycle tracing
	eng.AddObserver(engine.NewLoggingObserver())

	network.Start(*port, *maxConns, eng)
}
