package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/gahoccode/vnprices-mcp/internal/config"
	"github.com/gahoccode/vnprices-mcp/internal/logging"
	"github.com/gahoccode/vnprices-mcp/internal/mcp"
)

func main() {
	root := &cobra.Command{
		Use:   "vnprices-mcp",
		Short: "Vietnamese stock market data MCP server",
		RunE:  run,
	}

	root.PersistentFlags().String("transport", "stdio", "MCP transport: stdio or http")
	root.PersistentFlags().String("http-host", "0.0.0.0", "HTTP host (http transport)")
	root.PersistentFlags().Int("http-port", 8000, "HTTP port (http transport)")
	root.PersistentFlags().String("vci-chart-url", "", "Override the VCI chart endpoint base URL")
	root.PersistentFlags().String("vci-finance-url", "", "Override the VCI finance endpoint base URL")
	root.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")

	config.Init(root)

	if err := root.Execute(); err != nil {
		log.Fatalf("command failed: %v", err)
	}
}

func run(cmd *cobra.Command, args []string) error {
	logger := logging.New(logging.DefaultLogger(config.LogLevel())).WithName("vnprices")
	srv := mcp.New(mcp.DefaultConfig())

	transport, _ := cmd.Flags().GetString("transport")
	switch transport {
	case "stdio":
		logger.Info("serving MCP over stdio")
		return srv.ServeStdio()
	case "http":
		host, _ := cmd.Flags().GetString("http-host")
		port, _ := cmd.Flags().GetInt("http-port")
		return serveHTTP(srv, logger, host+":"+strconv.Itoa(port))
	default:
		return fmt.Errorf("unknown transport %q (want stdio or http)", transport)
	}
}

func serveHTTP(srv *mcp.Server, logger logging.Logger, addr string) error {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	// The streamable server routes on its own endpoint path, so register it
	// without prefix stripping.
	router.Handle(config.MCPEndpointPath(), srv.Handler)

	httpServer := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("MCP server listening", "addr", addr, "endpoint", config.MCPEndpointPath())
		errCh <- httpServer.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		ctx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout())
		defer cancel()
		return httpServer.Shutdown(ctx)
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	}
}
