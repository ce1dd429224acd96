// Copyright 2024 Google, LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package main is the entry point for the media insights backend server.
//
// This application sets up and runs a web server using the Gin framework. It
// provides a REST API over an in-memory video metadata catalog: channel
// statistics, tag/topic analysis, multi-keyword tracking, geographic
// coverage, and a browsable video listing. The server is instrumented with
// OpenTelemetry for logging, tracing, and metrics.
//
// The main function initializes the application's configuration, sets up
// logging and telemetry, loads the CSV dataset into the immutable catalog,
// registers the API routes, and handles graceful shutdown.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/jaycherian/go-media-insights/internal/api"
	"github.com/jaycherian/go-media-insights/internal/telemetry"
)

// main is the primary entry point for the application. It orchestrates the
// setup of logging, telemetry, configuration, the catalog load, the web
// server, and graceful shutdown on interrupt.
func main() {
	// Optional .env file for local development; a missing file is fine.
	_ = godotenv.Load()

	// Initialize structured logging for the application.
	telemetry.SetupLogging()
	slog.Info("Logging initialized")

	// Root context for the application, cancelled when main exits.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load application configuration from TOML files.
	cfg := GetConfig()

	// Initialize OpenTelemetry for distributed tracing and metrics.
	otelShutdown, err := telemetry.SetupOpenTelemetry(ctx, cfg)
	if err != nil {
		slog.Error("Failed to setup OpenTelemetry", "error", err)
		log.Fatal(err)
	}
	defer func() {
		if err := otelShutdown(context.Background()); err != nil {
			slog.Error("Telemetry shutdown failed", "error", err)
		}
	}()
	slog.Info("Tracing initialized")

	// Load the dataset and wire the analytics services.
	InitState(ctx)
	slog.Info("Initialized State", "records", state.catalog.Size(), "years", state.catalog.Years())

	// Set up the Gin web server with default middleware.
	r := gin.Default()

	// Trace incoming requests with OpenTelemetry spans.
	r.Use(otelgin.Middleware(cfg.Application.Name))

	// Permissive CORS, suitable for a read-only API consumed by browsers.
	r.Use(cors.Default())

	// Shed excess load before it reaches the full-scan handlers.
	r.Use(api.RateLimit(cfg.Server.RequestsPerSecond, cfg.Server.RequestBurst))

	// Group routes under the "/api/v1" prefix.
	apiV1 := r.Group("/api/v1")
	{
		state.handler.Register(apiV1)
	}

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSecs) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSecs) * time.Second,
	}

	// Start the HTTP server in a separate goroutine so it doesn't block.
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("failed to listen: ", "error", err)
		}
	}()
	slog.Info("Server Ready", "addr", addr)

	// Block until an OS interrupt signal is received.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutdown Server ...")

	// Give active requests 5 seconds to complete.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server Shutdown Failed:", "error", err)
	}

	log.Println("Server exiting")
}
