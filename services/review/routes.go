// Copyright (C) 2026 CodeMentor Authors (maintainers@codementor.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package review

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all review routes with the router.
//
// Description:
//
//	Registers all /v1/review/* endpoints with the given Gin router
//	group. The router group should already have any required middleware
//	applied.
//
// Inputs:
//
//	rg - Gin router group (typically /v1)
//	handlers - The handlers instance
//
// Endpoints:
//
//	POST /v1/review/check - Run the local style checker
//	POST /v1/review/review - Style check plus LLM review with score
//	POST /v1/review/refactor - LLM refactor of a listing
//	GET  /v1/review/history - List recent run summaries
//	GET  /v1/review/history/:id - Fetch one run summary
//	GET  /v1/review/health - Health check
//	GET  /v1/review/ready - Readiness check
//
// Example:
//
//	svc := review.NewService(review.ServiceConfig{LLM: client})
//	handlers := review.NewHandlers(svc)
//
//	v1 := router.Group("/v1")
//	review.RegisterRoutes(v1, handlers)
func RegisterRoutes(rg *gin.RouterGroup, handlers *Handlers) {
	r := rg.Group("/review")
	{
		// Local checking
		r.POST("/check", handlers.HandleCheck)

		// LLM-backed operations
		r.POST("/review", handlers.HandleReview)
		r.POST("/refactor", handlers.HandleRefactor)

		// Run history
		r.GET("/history", handlers.HandleHistory)
		r.GET("/history/:id", handlers.HandleHistoryByID)

		// Health checks
		r.GET("/health", handlers.HandleHealth)
		r.GET("/ready", handlers.HandleReady)
	}
}
