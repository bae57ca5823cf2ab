// Copyright (C) 2026 CodeMentor Authors (maintainers@codementor.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package review

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, client *fakeLLM) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	gin.EnableJsonDecoderDisallowUnknownFields()

	var svc *Service
	if client != nil {
		svc = newTestService(t, client)
	} else {
		svc = newTestService(t, nil)
	}

	router := gin.New()
	RegisterRoutes(router.Group("/v1"), NewHandlers(svc))
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func getPath(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandleCheck_OK(t *testing.T) {
	router := newTestRouter(t, nil)

	w := postJSON(t, router, "/v1/review/check", `{"code": "x=1\n"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp CheckResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Diagnostics, 1)
	assert.Equal(t, 1, resp.Diagnostics[0].Line)
	assert.Equal(t, "operator-spacing", string(resp.Diagnostics[0].Rule))
	assert.Equal(t, "style", resp.Diagnostics[0].Severity)
}

func TestHandleCheck_CleanCodeEmptyDiagnostics(t *testing.T) {
	router := newTestRouter(t, nil)

	w := postJSON(t, router, "/v1/review/check", `{"code": "x = 1\n"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"diagnostics": []}`, w.Body.String())
}

func TestHandleCheck_MissingCode(t *testing.T) {
	router := newTestRouter(t, nil)
	w := postJSON(t, router, "/v1/review/check", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleCheck_UnknownConfigKey(t *testing.T) {
	router := newTestRouter(t, nil)
	w := postJSON(t, router, "/v1/review/check",
		`{"code": "x = 1\n", "config": {"check_everything": true}}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleCheck_DisabledRule(t *testing.T) {
	router := newTestRouter(t, nil)

	w := postJSON(t, router, "/v1/review/check",
		`{"code": "x=1\n", "config": {"check_operator_spacing": false}}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"diagnostics": []}`, w.Body.String())
}

func TestHandleReview_OK(t *testing.T) {
	client := &fakeLLM{reply: "Looks fine.\nSCORE: {\"score\": 88}"}
	router := newTestRouter(t, client)

	w := postJSON(t, router, "/v1/review/review", `{"code": "x=1\n"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp ReviewResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.ID)
	assert.Len(t, resp.Diagnostics, 1)
	assert.Equal(t, "Looks fine.", resp.Review)
	assert.Equal(t, 88, resp.Score.Value)
	assert.Equal(t, "Excellent", resp.Score.Label)
	assert.Equal(t, ScoreSourceModel, resp.Score.Source)
}

func TestHandleReview_LLMFailureCarriesDiagnostics(t *testing.T) {
	client := &fakeLLM{err: errors.New("backend down")}
	router := newTestRouter(t, client)

	w := postJSON(t, router, "/v1/review/review", `{"code": "x=1\n"}`)
	require.Equal(t, http.StatusBadGateway, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Error)
	assert.Len(t, resp.Diagnostics, 1,
		"502 body should still carry the local diagnostics")
}

func TestHandleReview_NoLLM(t *testing.T) {
	router := newTestRouter(t, nil)
	w := postJSON(t, router, "/v1/review/review", `{"code": "x = 1\n"}`)
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestHandleRefactor_OK(t *testing.T) {
	client := &fakeLLM{reply: "```python\nx = 1\n```"}
	router := newTestRouter(t, client)

	w := postJSON(t, router, "/v1/review/refactor", `{"code": "x=1\n"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp RefactorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "x = 1", resp.Refactored)
}

func TestHandleHistory_RoundTrip(t *testing.T) {
	client := &fakeLLM{reply: "Fine.\nSCORE: {\"score\": 75}"}
	router := newTestRouter(t, client)

	w := postJSON(t, router, "/v1/review/review", `{"code": "x = 1\n"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var reviewResp ReviewResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reviewResp))

	w = getPath(t, router, "/v1/review/history")
	require.Equal(t, http.StatusOK, w.Code)
	var listResp struct {
		Entries []json.RawMessage `json:"entries"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	assert.Len(t, listResp.Entries, 1)

	w = getPath(t, router, "/v1/review/history/"+reviewResp.ID)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandleHistory_BadLimit(t *testing.T) {
	router := newTestRouter(t, nil)
	w := getPath(t, router, "/v1/review/history?limit=abc")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleHistoryByID_NotFound(t *testing.T) {
	router := newTestRouter(t, nil)
	w := getPath(t, router, "/v1/review/history/nope")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleHealth(t *testing.T) {
	router := newTestRouter(t, nil)
	w := getPath(t, router, "/v1/review/health")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandleReady(t *testing.T) {
	router := newTestRouter(t, nil)
	w := getPath(t, router, "/v1/review/ready")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	router = newTestRouter(t, &fakeLLM{reply: "ok"})
	w = getPath(t, router, "/v1/review/ready")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequestIDEchoed(t *testing.T) {
	router := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/review/check",
		bytes.NewBufferString(`{"code": "x = 1\n"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", "req-123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))
}
