package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const minIdleTTL = 10 * time.Minute

// ClientRateLimit throttles a route per client IP with a token bucket.
// perMinute <= 0 disables limiting. The client IP comes from gin's
// ClientIP, so forwarding headers only count from the engine's trusted proxies.
func ClientRateLimit(perMinute, burst int) gin.HandlerFunc {
	if perMinute <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	limiter := newClientLimiter(perMinute, burst, time.Now)

	return func(c *gin.Context) {
		if !limiter.allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"message": "Too many requests. Please try again later.",
			})
			return
		}
		c.Next()
	}
}

type clientEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// clientLimiter keeps one bucket per client and forgets clients idle for
// longer than a full refill, since a fresh bucket is then equivalent.
type clientLimiter struct {
	every rate.Limit
	burst int
	idle  time.Duration
	now   func() time.Time

	mu        sync.Mutex
	clients   map[string]*clientEntry
	lastSweep time.Time
}

func newClientLimiter(perMinute, burst int, now func() time.Time) *clientLimiter {
	if burst <= 0 {
		burst = 1
	}
	interval := time.Minute / time.Duration(perMinute)
	idle := time.Duration(burst) * interval
	if idle < minIdleTTL {
		idle = minIdleTTL
	}
	return &clientLimiter{
		every:     rate.Every(interval),
		burst:     burst,
		idle:      idle,
		now:       now,
		clients:   make(map[string]*clientEntry),
		lastSweep: now(),
	}
}

func (l *clientLimiter) allow(key string) bool {
	now := l.now()

	l.mu.Lock()
	if now.Sub(l.lastSweep) >= l.idle {
		for k, e := range l.clients {
			if now.Sub(e.lastSeen) >= l.idle {
				delete(l.clients, k)
			}
		}
		l.lastSweep = now
	}
	e, ok := l.clients[key]
	if !ok {
		e = &clientEntry{limiter: rate.NewLimiter(l.every, l.burst)}
		l.clients[key] = e
	}
	e.lastSeen = now
	l.mu.Unlock()

	return e.limiter.AllowN(now, 1)
}

func (l *clientLimiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}
