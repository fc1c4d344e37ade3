package network

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"

	"github.com/panjf2000/ants/v2"

	"github.com/leengari/mini-search/internal/engine"
	"github.com/leengari/mini-search/internal/executor"
)

type Request struct {
	Query string `json:"query"`

	// Strict defaults to true when omitted; Explain defaults to false.
	Strict  *bool `json:"strict,omitempty"`
	Explain bool  `json:"explain,omitempty"`
}

func (r *Request) options() engine.Options {
	opts := engine.Options{Strict: true, Explain: r.Explain}
	if r.Strict != nil {
		opts.Strict = *r.Strict
	}
	return opts
}

// Start starts the TCP query server. Each connection is handled on a worker
// from a bounded pool; one engine is shared, which is safe because every
// query plans and executes over its own tree.
func Start(port int, maxConns int, eng *engine.Engine) {
	addr := fmt.Sprintf(":%d", port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		slog.Error("Failed to bind to port", "port", port, "error", err)
		return
	}
	defer listener.Close()

	connPool, err := ants.NewPool(maxConns, ants.WithPanicHandler(func(v any) {
		slog.Error("connection handler panicked", "panic", v)
	}))
	if err != nil {
		slog.Error("Failed to create connection pool", "error", err)
		return
	}
	defer connPool.Release()

	slog.Info("Running on port", "port", port, "max_connections", maxConns)

	for {
		conn, err := listener.Accept()
		if err != nil {
			slog.Error("Failed to accept connection", "error", err)
			continue
		}
		if err := connPool.Submit(func() { handleConnection(conn, eng) }); err != nil {
			slog.Warn("rejecting connection, pool exhausted", "error", err)
			conn.Close()
		}
	}
}

func handleConnection(conn net.Conn, eng *engine.Engine) {
	defer conn.Close()

	// Use Decoder instead of Scanner for network streams
	decoder := json.NewDecoder(conn)
	encoder := json.NewEncoder(conn)

	for {
		var req Request
		// Decode directly from the connection
		if err := decoder.Decode(&req); err != nil {
			if err == io.EOF {
				return // Connection closed gracefully
			}
			slog.Error("decode error", "error", err)

			// Send error back to client
			errResult := &executor.Result{
				Error: fmt.Sprintf("Invalid request format: %v", err),
			}
			_ = encoder.Encode(errResult)
			return
		}

		if req.Query == "exit" || req.Query == "\\q" {
			return
		}

		result, err := eng.ExecuteWith(req.Query, req.options())
		if err != nil {
			// Return error as a Result object
			errResult := &executor.Result{
				Error: err.Error(),
			}
			if err := encoder.Encode(errResult); err != nil {
				slog.Error("encode error", "error", err)
				return
			}
			continue
		}

		if err := encoder.Encode(result); err != nil {
			slog.Error("encode error", "error", err)
			return
		}
	}
}
