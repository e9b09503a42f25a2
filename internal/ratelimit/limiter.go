// Package ratelimit implements a fixed-window per-IP request limiter held in
// process memory. It is not distributed; the deployment target is a single
// long-lived instance.
package ratelimit

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prepforge/prepforge/pkg/response"
)

const LimitMessage = "Too many requests from this IP, please try again later."

type window struct {
	count int
	start time.Time
}

type Limiter struct {
	mu      sync.Mutex
	window  time.Duration
	max     int
	now     func() time.Time
	clients map[string]*window
}

type Option func(*Limiter)

// WithClock swaps the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) { l.now = now }
}

func New(windowSize time.Duration, max int, opts ...Option) *Limiter {
	l := &Limiter{
		window:  windowSize,
		max:     max,
		now:     time.Now,
		clients: make(map[string]*window),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Allow records one request for ip and reports whether it fits the current
// window, plus the remaining allowance and the window reset time.
func (l *Limiter) Allow(ip string) (ok bool, remaining int, reset time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	w, exists := l.clients[ip]
	if !exists || now.Sub(w.start) >= l.window {
		w = &window{start: now}
		l.clients[ip] = w
	}
	reset = w.start.Add(l.window)
	if w.count >= l.max {
		return false, 0, reset
	}
	w.count++
	return true, l.max - w.count, reset
}

// Middleware enforces the limiter and sets the standard rate-limit headers.
// Register it only on the routes that should be capped; health probes stay
// outside.
func Middleware(l *Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, remaining, reset := l.Allow(c.ClientIP())
		c.Header("X-RateLimit-Limit", strconv.Itoa(l.max))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(reset.Unix(), 10))
		if !ok {
			response.TooManyRequests(c, LimitMessage)
			c.Abort()
			return
		}
		c.Next()
	}
}
