package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	httpAdapter "github.com/aretw0/splice/pkg/adapters/http"
	redisAdapter "github.com/aretw0/splice/pkg/adapters/redis"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the stateless HTTP server",
	Long: `Starts the splice engine in server mode, exposing a JSON API over HTTP:
POST /api/solve, GET /healthz and GET /metrics. With --redis, solved
completions are cached by trace.`,
	Run: func(cmd *cobra.Command, args []string) {
		port, _ := cmd.Flags().GetString("port")
		redisAddr, _ := cmd.Flags().GetString("redis")
		redisTTL, _ := cmd.Flags().GetDuration("redis-ttl")

		engine, err := newEngine(cmd)
		if err != nil {
			fmt.Printf("Error initializing splice: %v\n", err)
			os.Exit(1)
		}

		opts := []httpAdapter.ServerOption{}
		if redisAddr != "" {
			cache := redisAdapter.New(redisAddr, "", 0, redisAdapter.WithTTL(redisTTL))
			defer cache.Close()
			opts = append(opts, httpAdapter.WithCache(cache))
		}

		srv := &http.Server{
			Addr:    ":" + port,
			Handler: httpAdapter.NewHandler(engine, opts...),
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting splice server on %s\n", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("splice server stopped gracefully")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	serveCmd.Flags().String("redis", "", "Redis address for the result cache (disabled when empty)")
	serveCmd.Flags().Duration("redis-ttl", time.Hour, "TTL for cached completions (0 = no expiration)")
}
