//go:build integration
// +build integration

package integration

import (
	"context"
	"os/exec"
	"testing"
)

// composeArgs builds a `docker compose` invocation honoring an optional
// E2E_COMPOSE_FILE and E2E_COMPOSE_PROJECT.
func composeArgs(sub ...string) []string {
	args := []string{"compose"}
	if f := getenv("E2E_COMPOSE_FILE", ""); f != "" {
		args = append(args, "-f", f)
	}
	if p := getenv("E2E_COMPOSE_PROJECT", ""); p != "" {
		args = append(args, "-p", p)
	}
	return append(args, sub...)
}

// restartAndWait bounces the catalog container and blocks until readyz
// answers again, so the caller can compare bodies across process lifetimes.
func restartAndWait(t *testing.T, ctx context.Context, readyURL string) {
	t.Helper()

	service := getenv("E2E_COMPOSE_SERVICE", "catalog")
	out, err := exec.CommandContext(ctx, "docker", composeArgs("restart", service)...).CombinedOutput()
	if err != nil {
		t.Fatalf("restart %s: %v\n%s", service, err, string(out))
	}

	waitReady(t, ctx, readyURL)
}
