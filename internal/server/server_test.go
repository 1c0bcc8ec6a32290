package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"PrologFront/helpers"
	"PrologFront/internal/config"
	"PrologFront/internal/frontend"
	"PrologFront/internal/lexer"
	l "PrologFront/internal/logger"
)

const program = `predicates
  foo(integer)
clauses
  foo(1).
goal
  foo("x").`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(NewHandler(l.NewWriter("server-test", io.Discard, l.DEBUG)))
	t.Cleanup(ts.Close)
	return ts
}

func post(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("Failed to marshal request: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatalf("POST %s failed: %v", url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatalf("GET /health failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected 200, got %d", resp.StatusCode)
	}
	if resp.Header.Get("X-Request-ID") == "" {
		t.Error("Expected an X-Request-ID header")
	}
}

func TestParse(t *testing.T) {
	ts := newTestServer(t)

	resp := post(t, ts.URL+"/parse", ParseRequest{Name: "foo.pro", Source: program})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected application/json, got %s", ct)
	}

	var result frontend.Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode result: %v", err)
	}

	if result.Name != "foo.pro" {
		t.Errorf("Expected name foo.pro, got %s", result.Name)
	}
	if len(result.Diagnostics) != 1 {
		t.Fatalf("Expected 1 diagnostic, got %d", len(result.Diagnostics))
	}
	if got := result.Diagnostics[0].Message; got != "Error at token: `)` of type `close_bracket`" {
		t.Errorf("Unexpected diagnostic %q", got)
	}
	if result.Tree == nil || result.Tree.Child("Goal") == nil {
		t.Error("Expected a Goal node in the returned tree")
	}
}

func TestTokens(t *testing.T) {
	ts := newTestServer(t)

	resp := post(t, ts.URL+"/tokens", ParseRequest{Source: "goal foo(1, 2)."})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}

	var body TokensResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode tokens: %v", err)
	}
	if len(body.Tokens) != 8 {
		t.Errorf("Expected 8 tokens, got %d", len(body.Tokens))
	}
	for _, g := range body.Groups {
		if g.Category == lexer.INTEGER && strings.Join(g.Lexemes, ",") != "1,2" {
			t.Errorf("Expected integer group 1,2, got %v", g.Lexemes)
		}
	}
}

func TestRequestErrors(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
	}{
		{"get parse", http.MethodGet, "/parse", "", http.StatusMethodNotAllowed},
		{"get tokens", http.MethodGet, "/tokens", "", http.StatusMethodNotAllowed},
		{"bad json", http.MethodPost, "/parse", "{source:", http.StatusBadRequest},
		{"unknown path", http.MethodPost, "/exec", "{}", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(tt.method, ts.URL+tt.path, strings.NewReader(tt.body))
			if err != nil {
				t.Fatalf("Failed to build request: %v", err)
			}
			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				t.Fatalf("Request failed: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.status {
				t.Errorf("Expected %d, got %d", tt.status, resp.StatusCode)
			}
		})
	}
}

func TestRequestIDIsEchoed(t *testing.T) {
	ts := newTestServer(t)

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	if got := resp.Header.Get("X-Request-ID"); got != "abc-123" {
		t.Errorf("Expected echoed id abc-123, got %s", got)
	}
}

func TestStart(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Failed to reserve a port: %v", err)
	}
	addr := ln.Addr().String()
	ln.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Start(ctx, addr, config.Default().Server)
	}()

	if err := helpers.WaitForServer("http://" + addr); err != nil {
		cancel()
		t.Fatalf("Server never became healthy: %v", err)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Start returned %v after cancel", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Start did not return after cancel")
	}
}

func TestStart_AddressInUse(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Failed to reserve a port: %v", err)
	}
	defer ln.Close()

	if err := Start(context.Background(), ln.Addr().String(), config.Default().Server); err == nil {
		t.Error("Expected Start to fail on a bound address")
	}
}
