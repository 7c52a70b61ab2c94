package kit

import (
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func TestIPRateLimiter_SlidingWindow(t *testing.T) {
	clk := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	l := NewIPRateLimiter(2, 10*time.Second)
	l.now = clk.Now

	_, limited := l.Allow("a")
	require.False(t, limited)
	clk.Advance(4 * time.Second)
	_, limited = l.Allow("a")
	require.False(t, limited)

	retry, limited := l.Allow("a")
	require.True(t, limited)
	assert.Equal(t, 6*time.Second, retry)

	_, limited = l.Allow("b")
	assert.False(t, limited, "keys are independent")

	clk.Advance(6 * time.Second)
	_, limited = l.Allow("a")
	assert.False(t, limited, "oldest hit left the window")

	_, limited = l.Allow("a")
	assert.True(t, limited)
}

func TestIPRateLimiter_DefaultWindow(t *testing.T) {
	l := NewIPRateLimiter(1, 0)
	assert.Equal(t, time.Minute, l.window)
}

func TestIPRateLimiter_Sweep(t *testing.T) {
	clk := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	l := NewIPRateLimiter(1, time.Second)
	l.now = clk.Now

	_, _ = l.Allow("old")
	clk.Advance(2 * time.Second)

	l.mu.Lock()
	l.sweep(clk.Now().Add(-l.window))
	_, ok := l.hits["old"]
	l.mu.Unlock()

	assert.False(t, ok)
}

func TestIPRateLimiter_SweepIsOccasional(t *testing.T) {
	clk := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	l := NewIPRateLimiter(1, time.Minute)
	l.now = clk.Now

	for i := 0; i <= sweepThreshold; i++ {
		_, _ = l.Allow(fmt.Sprintf("old-%d", i))
	}
	require.Len(t, l.hits, sweepThreshold+1, "live keys survive a sweep")
	require.Equal(t, 2*(sweepThreshold+1), l.sweepAt)

	clk.Advance(2 * time.Minute)

	_, _ = l.Allow("new-0")
	assert.Len(t, l.hits, sweepThreshold+2, "no sweep below the next mark")

	i := 1
	for len(l.hits) <= 2*(sweepThreshold+1) && i < 4*sweepThreshold {
		before := len(l.hits)
		_, _ = l.Allow(fmt.Sprintf("new-%d", i))
		i++
		if len(l.hits) < before {
			break
		}
	}

	assert.Len(t, l.hits, i, "expired keys dropped, fresh keys kept")
	assert.Equal(t, 2*i, l.sweepAt)
}

func TestClientIP(t *testing.T) {
	cases := []struct {
		name   string
		xff    string
		remote string
		want   string
	}{
		{"remote addr", "", "192.0.2.1:5555", "192.0.2.1"},
		{"forwarded first hop", "203.0.113.7, 10.0.0.1", "192.0.2.1:5555", "203.0.113.7"},
		{"forwarded padded", "  203.0.113.8 ", "192.0.2.1:5555", "203.0.113.8"},
		{"remote without port", "", "192.0.2.9", "192.0.2.9"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			r.RemoteAddr = c.remote
			if c.xff != "" {
				r.Header.Set("X-Forwarded-For", c.xff)
			}
			assert.Equal(t, c.want, ClientIP(r))
		})
	}
}
