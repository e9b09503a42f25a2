package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func (f *fakeClock) Now() time.Time          { return f.t }
func (f *fakeClock) Advance(d time.Duration) { f.t = f.t.Add(d) }

func TestAllowUpToMax(t *testing.T) {
	clk := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	l := New(15*time.Minute, 3, WithClock(clk.Now))

	for i := 0; i < 3; i++ {
		ok, _, _ := l.Allow("1.2.3.4")
		require.True(t, ok, "request %d should pass", i+1)
	}
	ok, remaining, _ := l.Allow("1.2.3.4")
	assert.False(t, ok)
	assert.Zero(t, remaining)
}

func TestWindowResets(t *testing.T) {
	clk := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	l := New(15*time.Minute, 1, WithClock(clk.Now))

	ok, _, _ := l.Allow("1.2.3.4")
	require.True(t, ok)
	ok, _, _ = l.Allow("1.2.3.4")
	require.False(t, ok)

	clk.Advance(15 * time.Minute)
	ok, _, _ = l.Allow("1.2.3.4")
	assert.True(t, ok, "a fresh window starts after the interval")
}

func TestClientsAreIndependent(t *testing.T) {
	clk := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	l := New(time.Minute, 1, WithClock(clk.Now))

	ok, _, _ := l.Allow("1.1.1.1")
	require.True(t, ok)
	ok, _, _ = l.Allow("2.2.2.2")
	assert.True(t, ok)
	ok, _, _ = l.Allow("1.1.1.1")
	assert.False(t, ok)
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	l := New(time.Minute, 1)
	r := gin.New()
	r.GET("/x", Middleware(l), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), LimitMessage)
}
