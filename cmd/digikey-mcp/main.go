// Package main provides the entry point for the DigiKey MCP server.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/partstack/digikey-mcp/pkg/config"
	"github.com/partstack/digikey-mcp/pkg/digikey"
	"github.com/partstack/digikey-mcp/pkg/server"
	"github.com/partstack/digikey-mcp/pkg/tools"
)

const version = "0.1.0"

func main() {
	cfg, err := config.LoadServer()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// zap's production config writes to stderr; stdout carries the stdio
	// transport.
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting DigiKey MCP server",
		zap.String("version", version),
		zap.String("transport", cfg.Transport),
		zap.Bool("sandbox", cfg.UseSandbox))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("Received signal, shutting down", zap.String("signal", sig.String()))
		cancel()
	}()

	client := digikey.NewClientWithLogger(&cfg.Config, logger)

	// Authenticate once at startup; tool handlers reuse the cached token.
	if err := client.EnsureAuthenticated(ctx); err != nil {
		logger.Fatal("Authentication failed", zap.Error(err))
	}

	srv := server.New(version, logger)
	srv.Setup()

	tools.RegisterAll(srv.MCPServer(), &tools.Dependencies{
		Client: client,
		Logger: logger,
	})

	logger.Info("Server ready")

	switch cfg.Transport {
	case config.TransportHTTP:
		err = srv.ListenAndServe(ctx, ":"+cfg.Port)
	default:
		err = srv.Run(ctx)
	}
	if err != nil && ctx.Err() == nil {
		logger.Fatal("Server error", zap.Error(err))
	}

	logger.Info("Server stopped")
}
