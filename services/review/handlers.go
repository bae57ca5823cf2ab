// Copyright (C) 2026 CodeMentor Authors (maintainers@codementor.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package review

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/codementor-ai/codementor/pkg/stylecheck"
	"github.com/codementor-ai/codementor/services/review/history"
)

// Handlers holds the HTTP handlers for the review service.
type Handlers struct {
	svc *Service
}

// NewHandlers creates the HTTP handlers for a service.
//
// Inputs:
//
//	svc - The review service. Must not be nil.
//
// Outputs:
//
//	*Handlers - The configured handlers.
func NewHandlers(svc *Service) *Handlers {
	return &Handlers{svc: svc}
}

// HandleCheck handles POST /v1/review/check.
//
// Description:
//
//	Runs the local style checker over the submitted listing and returns
//	the ordered diagnostics. Purely local, no LLM involved.
//
// Response:
//
//	200 OK: CheckResponse
//	400 Bad Request: Missing code, unknown config key, or non-text source
func (h *Handlers) HandleCheck(c *gin.Context) {
	requestID := getOrCreateRequestID(c)

	var req CheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.svc.logger.Warn("invalid check request", "request_id", requestID, "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	diags, err := h.svc.Check(c.Request.Context(), []byte(req.Code), req.Config.Resolve())
	if err != nil {
		if errors.Is(err, stylecheck.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	if diags == nil {
		diags = []stylecheck.Diagnostic{}
	}
	c.JSON(http.StatusOK, CheckResponse{Diagnostics: diags})
}

// HandleReview handles POST /v1/review/review.
//
// Description:
//
//	Runs the style checker, then asks the configured LLM for a full
//	review with a quality score. When the LLM half fails, the response
//	is 502 but still carries the local diagnostics.
//
// Response:
//
//	200 OK: ReviewResponse
//	400 Bad Request: Missing code or non-text source
//	502 Bad Gateway: LLM unavailable or request failed
func (h *Handlers) HandleReview(c *gin.Context) {
	requestID := getOrCreateRequestID(c)

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.svc.logger.Warn("invalid review request", "request_id", requestID, "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	result, err := h.svc.Review(c.Request.Context(), req.Code, req.Config.Resolve())
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyCode), errors.Is(err, stylecheck.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, ErrLLMUnavailable), errors.Is(err, ErrLLMRequest):
			resp := ErrorResponse{Error: err.Error()}
			if result != nil {
				resp.Diagnostics = result.Diagnostics
			}
			c.JSON(http.StatusBadGateway, resp)
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, ReviewResponse{
		ID:          result.ID,
		Diagnostics: result.Diagnostics,
		Review:      result.Review,
		Score:       result.Score,
	})
}

// HandleRefactor handles POST /v1/review/refactor.
//
// Response:
//
//	200 OK: RefactorResponse
//	400 Bad Request: Missing code
//	502 Bad Gateway: LLM unavailable or request failed
func (h *Handlers) HandleRefactor(c *gin.Context) {
	requestID := getOrCreateRequestID(c)

	var req RefactorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.svc.logger.Warn("invalid refactor request", "request_id", requestID, "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	result, err := h.svc.Refactor(c.Request.Context(), req.Code)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyCode):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, ErrLLMUnavailable), errors.Is(err, ErrLLMRequest):
			c.JSON(http.StatusBadGateway, ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, RefactorResponse{
		ID:         result.ID,
		Refactored: result.Refactored,
	})
}

// HandleHistory handles GET /v1/review/history.
//
// Query Parameters:
//
//	limit - Maximum entries to return (default 50).
//
// Response:
//
//	200 OK: {"entries": [...]}
func (h *Handlers) HandleHistory(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "limit must be a non-negative integer"})
			return
		}
		limit = parsed
	}

	entries, err := h.svc.History(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	if entries == nil {
		entries = []history.Entry{}
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// HandleHistoryByID handles GET /v1/review/history/:id.
//
// Response:
//
//	200 OK: history.Entry
//	404 Not Found: No entry with that ID
func (h *Handlers) HandleHistoryByID(c *gin.Context) {
	id := c.Param("id")

	entry, err := h.svc.HistoryEntry(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, history.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "no history entry with id " + id})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, entry)
}

// HandleHealth handles GET /v1/review/health. Always 200 while the
// process is up.
func (h *Handlers) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// HandleReady handles GET /v1/review/ready. Reports 503 when no LLM
// backend is configured; the check endpoint still works in that state.
func (h *Handlers) HandleReady(c *gin.Context) {
	if !h.svc.Ready() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "degraded",
			"reason": "no LLM backend configured",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// getOrCreateRequestID returns the inbound X-Request-ID header or mints
// a fresh UUID, and echoes it on the response.
func getOrCreateRequestID(c *gin.Context) string {
	id := c.GetHeader("X-Request-ID")
	if id == "" {
		id = uuid.NewString()
	}
	c.Header("X-Request-ID", id)
	return id
}
