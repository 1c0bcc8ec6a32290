package tui

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"PrologFront/internal/frontend"
	"PrologFront/internal/server"
)

// Analyzer turns a named source text into an analysis result.
type Analyzer func(ctx context.Context, name, source string) (*frontend.Result, error)

// Local analyzes in process.
func Local() Analyzer {
	return func(_ context.Context, name, source string) (*frontend.Result, error) {
		return frontend.Analyze(name, source), nil
	}
}

// Remote analyzes through the /parse endpoint of the server at addr.
func Remote(addr string, client *http.Client) Analyzer {
	if !strings.HasPrefix(addr, "http://") && !strings.HasPrefix(addr, "https://") {
		addr = "http://" + addr
	}
	if client == nil {
		client = http.DefaultClient
	}
	url := strings.TrimRight(addr, "/") + "/parse"

	return func(ctx context.Context, name, source string) (*frontend.Result, error) {
		reqBody, err := json.Marshal(server.ParseRequest{Name: name, Source: source})
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(reqBody))
		if err != nil {
			return nil, fmt.Errorf("failed to build request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("request failed: %w", err)
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to read response: %w", err)
		}

		if resp.StatusCode != http.StatusOK {
			// The server returns error text in the body; surface it.
			msg := strings.TrimSpace(string(body))
			if msg == "" {
				msg = resp.Status
			}
			return nil, fmt.Errorf("server error (%d): %s", resp.StatusCode, msg)
		}

		var result frontend.Result
		if err := json.Unmarshal(body, &result); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}
		return &result, nil
	}
}
