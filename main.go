package main

import (
	"flag"
	"os"

	"github.com/leengari/mini-search/internal/engine"
	"github.com/leengari/mini-search/internal/index"
	"github.com/leengari/mini-search/internal/logging"
	"github.com/leengari/mini-search/internal/repl"
)

func main() {
	indexPath := flag.String("index", "indexes/demo", "path to the index directory")
	flag.Parse()

	logger, closeFn := logging.SetupLogger()
	defer closeFn()

	logger.Info("Starting mini-search...")

	// 1. Load index
	idx, err := index.Load(*indexPath, logger)
	if err != nil {
		logger.Error("failed to load index", "error", err)
		closeFn()
		os.Exit(1)
	}

	// 2. Build engine
	eng, err := engine.New(idx)
	if err != nil {
		logger.Error("failed to create engine", "error", err)
		closeFn()
		os.Exit(1)
	}

	// 3. Interactive query loop
	repl.Start(eng)
}
