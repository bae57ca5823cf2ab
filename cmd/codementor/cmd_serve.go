// Copyright (C) 2026 CodeMentor Authors (maintainers@codementor.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/codementor-ai/codementor/services/review"
)

// runServe starts the HTTP API server.
func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Server.Port = servePort
	}

	logger := newLogger(cfg, false)
	defer logger.Close()

	svc, cleanup, err := buildService(cfg, logger, false)
	if err != nil {
		return err
	}
	defer cleanup()

	if serveDebug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	// Unknown JSON keys in request bodies are rejected, not ignored.
	gin.EnableJsonDecoderDisallowUnknownFields()

	router := gin.New()
	router.Use(gin.Recovery())
	if serveDebug {
		router.Use(gin.Logger())
	}

	v1 := router.Group("/v1")
	review.RegisterRoutes(v1, review.NewHandlers(svc))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	printBanner(cfg.Server.Port, svc.Ready())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func printBanner(port int, llmReady bool) {
	llmLine := "LLM backend:  ready"
	if !llmReady {
		llmLine = "LLM backend:  NOT CONFIGURED (check still works)"
	}
	fmt.Printf(`
╔══════════════════════════════════════════════════════════╗
║                   CODEMENTOR API SERVER                  ║
╚══════════════════════════════════════════════════════════╝

  %s

  Quick start:
    curl http://localhost:%d/v1/review/health
    curl -X POST http://localhost:%d/v1/review/check \
      -H "Content-Type: application/json" \
      -d '{"code": "x=1\n"}'

  Endpoints:
    POST /v1/review/check      local style check
    POST /v1/review/review     LLM review with score
    POST /v1/review/refactor   LLM refactor
    GET  /v1/review/history    recent runs
    GET  /metrics              Prometheus metrics

  Press Ctrl+C to stop

`, llmLine, port, port)
}
