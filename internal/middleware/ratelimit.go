package middleware

import (
	"encoding/json"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter limita requests por IP (token bucket por cliente).
// Pensado para los endpoints de signup, no para tráfico general.
type RateLimiter struct {
	mu      sync.Mutex
	limit   rate.Limit
	burst   int
	ttl     time.Duration
	now     func() time.Time
	clients map[string]*clientLimiter
}

type clientLimiter struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter permite perMinute requests por IP con ráfaga igual a perMinute.
// perMinute <= 0 deshabilita el límite.
func NewRateLimiter(perMinute int) *RateLimiter {
	rl := &RateLimiter{
		limit:   rate.Inf,
		burst:   1,
		ttl:     10 * time.Minute,
		now:     time.Now,
		clients: map[string]*clientLimiter{},
	}
	if perMinute > 0 {
		rl.limit = rate.Every(time.Minute / time.Duration(perMinute))
		rl.burst = perMinute
	}
	return rl
}

// Allow consume un token para key.
func (rl *RateLimiter) Allow(key string) bool {
	if rl.limit == rate.Inf {
		return true
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	c, ok := rl.clients[key]
	if !ok {
		c = &clientLimiter{lim: rate.NewLimiter(rl.limit, rl.burst)}
		rl.clients[key] = c
	}
	c.lastSeen = now
	rl.evict(now)

	return c.lim.AllowN(now, 1)
}

// evict borra clientes inactivos. Llamar con mu tomado.
func (rl *RateLimiter) evict(now time.Time) {
	for k, c := range rl.clients {
		if now.Sub(c.lastSeen) > rl.ttl {
			delete(rl.clients, k)
		}
	}
}

// Middleware responde 429 cuando la IP superó su cuota.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.Allow(clientIP(r)) {
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Retry-After", "60")
			w.WriteHeader(http.StatusTooManyRequests)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "Too many requests. Please try again later."})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP usa RemoteAddr (chimw.RealIP ya lo reescribe desde X-Forwarded-For).
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
	if err != nil {
		return strings.TrimSpace(r.RemoteAddr)
	}
	return host
}
