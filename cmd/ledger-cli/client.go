package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// nodeClient calls the ledger node's REST routes.
type nodeClient struct {
	baseURL string
	client  *http.Client
}

func newNodeClient(flags *globalFlags) *nodeClient {
	return &nodeClient{
		baseURL: strings.TrimRight(flags.NodeURL, "/"),
		client:  &http.Client{Timeout: flags.Timeout},
	}
}

func (c *nodeClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s %s: %s: %s", method, path, resp.Status, strings.TrimSpace(string(data)))
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func requestContext(cmdCtx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if cmdCtx == nil {
		cmdCtx = context.Background()
	}
	return context.WithTimeout(cmdCtx, timeout)
}
