package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"PrologFront/internal/config"
	"PrologFront/internal/frontend"
	"PrologFront/internal/lexer"
	l "PrologFront/internal/logger"
	"PrologFront/internal/report"

	"github.com/google/uuid"
)

const maxSourceBytes = 1 << 20

// ParseRequest is the body of POST /parse and POST /tokens.
type ParseRequest struct {
	Name   string `json:"name"`
	Source string `json:"source"`
}

// TokensResponse is the body returned by POST /tokens.
type TokensResponse struct {
	ID     string         `json:"id"`
	Tokens []lexer.Token  `json:"tokens"`
	Groups []report.Group `json:"groups"`
}

type handler struct {
	logger *l.Logger
}

// NewHandler returns the analysis API:
//
//	GET  /health -> liveness
//	POST /parse  -> tokens, tree, diagnostics and symbol tables
//	POST /tokens -> tokens and their category groups
func NewHandler(logger *l.Logger) http.Handler {
	h := &handler{logger: logger}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", h.health)
	mux.HandleFunc("/parse", h.parse)
	mux.HandleFunc("/tokens", h.tokens)

	return withRequestID(mux)
}

// withRequestID tags every response with an X-Request-ID, reusing the
// caller's id when one was sent.
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r)
	})
}

// health returns 200 OK for liveness checks
func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// parse runs a full analysis of the submitted source
func (h *handler) parse(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	result := frontend.Analyze(req.Name, req.Source)
	h.logger.Info("request %s: parsed %s with %d diagnostic(s)",
		w.Header().Get("X-Request-ID"), req.Name, len(result.Diagnostics))

	h.writeJSON(w, result)
}

// tokens returns the token sequence without parsing
func (h *handler) tokens(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	tokens := lexer.Tokenize(req.Source)
	h.logger.Info("request %s: tokenized %s into %d token(s)",
		w.Header().Get("X-Request-ID"), req.Name, len(tokens))

	h.writeJSON(w, TokensResponse{
		ID:     uuid.NewString(),
		Tokens: tokens,
		Groups: report.GroupByCategory(tokens),
	})
}

func (h *handler) decode(w http.ResponseWriter, r *http.Request) (ParseRequest, bool) {
	var req ParseRequest

	if r.Method != http.MethodPost {
		h.logger.Error("Invalid method used: %s %s", r.Method, r.URL.Path)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return req, false
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxSourceBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode request body: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return req, false
	}

	if req.Name == "" {
		req.Name = "request"
	}
	return req, true
}

func (h *handler) writeJSON(w http.ResponseWriter, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		h.logger.Error("Failed to marshal response: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// Start serves the analysis API on addr until ctx is cancelled.
func Start(ctx context.Context, addr string, cfg config.ServerConfig) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return Serve(ctx, ln, cfg)
}

// Serve is Start on a listener the caller already bound. The listener is
// closed when Serve returns.
func Serve(ctx context.Context, ln net.Listener, cfg config.ServerConfig) error {
	logger := l.Get("server")
	addr := ln.Addr().String()

	server := &http.Server{
		Handler:      NewHandler(logger),
		ReadTimeout:  cfg.ReadTimeout.Duration,
		WriteTimeout: cfg.WriteTimeout.Duration,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening on %s", addr)
		errCh <- server.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Info("shutting down %s", addr)
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	return nil
}
