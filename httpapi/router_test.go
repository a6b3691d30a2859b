package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"gomahjong/decomposer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fixedNodeStatus int

func (c fixedNodeStatus) ActiveRounds() int { return int(c) }

func TestDecomposeHandlerReturnsWaits(t *testing.T) {
	r := NewRouter(decomposer.Default(), nil)

	body := strings.NewReader(`{"hand":"123456m789p1235s"}`)
	req := httptest.NewRequest(http.MethodPost, "/decompose", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var resp decomposeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	found := false
	for _, tl := range resp.WaitingTiles {
		if tl == "5s" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected waiting_tiles to include 5s, got %v", resp.WaitingTiles)
	}
}

func TestDecomposeHandlerRejectsMalformedHand(t *testing.T) {
	r := NewRouter(decomposer.Default(), nil)

	body := strings.NewReader(`{"hand":"not-a-hand"}`)
	req := httptest.NewRequest(http.MethodPost, "/decompose", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400: %s", rec.Code, rec.Body.String())
	}
}

func TestDecomposeHandlerRejectsMissingField(t *testing.T) {
	r := NewRouter(decomposer.Default(), nil)

	body := strings.NewReader(`{}`)
	req := httptest.NewRequest(http.MethodPost, "/decompose", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400: %s", rec.Code, rec.Body.String())
	}
}

func TestStatusHandlerReportsActiveRounds(t *testing.T) {
	r := NewRouter(decomposer.Default(), nodeStatusOf(5))

	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var body map[string]int
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body["active_rounds"] != 5 {
		t.Errorf("got active_rounds %d, want 5", body["active_rounds"])
	}
}

func TestStatusEndpointAbsentWithoutNode(t *testing.T) {
	r := NewRouter(decomposer.Default(), nil)
	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("got status %d, want 404 when no node was supplied", rec.Code)
	}
}

func nodeStatusOf(n int) *NodeStatus {
	var ns NodeStatus = fixedNodeStatus(n)
	return &ns
}
