package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okPing(context.Context) error   { return nil }
func downPing(context.Context) error { return errors.New("connection refused") }

func readyResponse(t *testing.T, deps map[string]Pinger) (int, map[string]any) {
	t.Helper()
	g := gin.New()
	NewHealth(time.Second, deps).Register(g)
	w := httptest.NewRecorder()
	g.ServeHTTP(w, httptest.NewRequest("GET", "/ready", nil))
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestHealth_Live(t *testing.T) {
	g := gin.New()
	NewHealth(time.Second, nil).Register(g)
	w := httptest.NewRecorder()
	g.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", w.Body.String())
}

func TestHealth_ReadyWhenAllDepsAnswer(t *testing.T) {
	code, body := readyResponse(t, map[string]Pinger{"store": okPing, "redis": okPing})
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ready", body["status"])
	assert.Equal(t, map[string]any{"store": true, "redis": true}, body["deps"])
}

func TestHealth_NotReadyWhenADepFails(t *testing.T) {
	code, body := readyResponse(t, map[string]Pinger{"store": okPing, "redis": downPing})
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "not_ready", body["status"])
	assert.Equal(t, map[string]any{"store": true, "redis": false}, body["deps"])
}

func TestHealth_PingIsBounded(t *testing.T) {
	slow := func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}
	g := gin.New()
	NewHealth(50*time.Millisecond, map[string]Pinger{"store": slow}).Register(g)
	w := httptest.NewRecorder()
	start := time.Now()
	g.ServeHTTP(w, httptest.NewRequest("GET", "/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Less(t, time.Since(start), time.Second)
}
