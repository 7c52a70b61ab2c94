//go:build integration
// +build integration

package integration

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"testing"
	"time"
)

var baseURL = getenv("E2E_BASE_URL", "http://localhost:8082")

func TestSystem_E2E_Products(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	waitReady(t, ctx, baseURL+"/readyz")

	first := getBody(t, baseURL+"/products", http.StatusOK)

	var products []struct {
		ID    int64   `json:"id"`
		Name  string  `json:"name"`
		Price float64 `json:"price"`
	}
	if err := json.Unmarshal(first, &products); err != nil {
		t.Fatalf("decode products: %v body=%s", err, string(first))
	}
	if len(products) != 2 {
		t.Fatalf("products=%d want 2", len(products))
	}
	if products[0].ID != 1 || products[0].Name != "iPhone" || products[1].ID != 2 || products[1].Name != "MacBook" {
		t.Fatalf("unexpected products: %+v", products)
	}

	again := getBody(t, baseURL+"/products", http.StatusOK)
	if string(again) != string(first) {
		t.Fatalf("body drifted:\n%s\n%s", first, again)
	}

	if os.Getenv("E2E_RESTART_CATALOG") == "1" {
		restartAndWait(t, ctx, baseURL+"/readyz")

		restarted := getBody(t, baseURL+"/products", http.StatusOK)
		if string(restarted) != string(first) {
			t.Fatalf("body changed across restart:\n%s\n%s", first, restarted)
		}
	}
}

func waitReady(t *testing.T, ctx context.Context, url string) {
	t.Helper()
	client := &http.Client{Timeout: 2 * time.Second}

	deadline := time.Now().Add(60 * time.Second)
	for time.Now().Before(deadline) {
		req, _ := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		resp, err := client.Do(req)
		if err == nil && resp != nil && resp.StatusCode == http.StatusOK {
			_ = resp.Body.Close()
			return
		}
		if resp != nil {
			_ = resp.Body.Close()
		}
		time.Sleep(500 * time.Millisecond)
	}
	t.Fatalf("service not ready: %s", url)
}

func getBody(t *testing.T, url string, want int) []byte {
	t.Helper()

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		t.Fatalf("get %s: %v", url, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if resp.StatusCode != want {
		t.Fatalf("GET %s: status=%d want=%d body=%s", url, resp.StatusCode, want, string(raw))
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content-type=%q", ct)
	}
	return raw
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
