package middleware

import (
	"sync"
	"time"

	"customer-dashboard/internal/config"
	"customer-dashboard/internal/errors"
	"customer-dashboard/internal/handlers"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const (
	visitorCleanupInterval = time.Minute
	visitorIdleTimeout     = 3 * time.Minute
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPRateLimiter keeps one token bucket per client IP
type IPRateLimiter struct {
	mu                sync.Mutex
	visitors          map[string]*visitor
	requestsPerSecond int
	burstSize         int
	stopCleanup       chan struct{}
	stopOnce          sync.Once
}

// NewIPRateLimiter creates a limiter and starts its idle-visitor cleanup
func NewIPRateLimiter(cfg config.SecurityConfig) *IPRateLimiter {
	rl := &IPRateLimiter{
		visitors:          make(map[string]*visitor),
		requestsPerSecond: cfg.RateLimitPerSecond,
		burstSize:         cfg.RateLimitBurst,
		stopCleanup:       make(chan struct{}),
	}
	if rl.requestsPerSecond <= 0 {
		rl.requestsPerSecond = 20
	}
	if rl.burstSize <= 0 {
		rl.burstSize = rl.requestsPerSecond * 2
	}

	go rl.cleanupVisitors()
	return rl
}

// Middleware rejects requests over the per-IP rate with SYSTEM_006
func (rl *IPRateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !rl.Allow(c.RealIP()) {
				return handlers.SendError(c, errors.SystemRateLimitExceeded)
			}
			return next(c)
		}
	}
}

// Allow reports whether a request from ip may proceed
func (rl *IPRateLimiter) Allow(ip string) bool {
	return rl.getVisitor(ip).Allow()
}

// Stop ends the cleanup goroutine
func (rl *IPRateLimiter) Stop() {
	rl.stopOnce.Do(func() {
		close(rl.stopCleanup)
	})
}

func (rl *IPRateLimiter) getVisitor(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[ip]
	if !exists {
		limiter := rate.NewLimiter(rate.Limit(rl.requestsPerSecond), rl.burstSize)
		rl.visitors[ip] = &visitor{limiter, time.Now()}
		return limiter
	}

	v.lastSeen = time.Now()
	return v.limiter
}

func (rl *IPRateLimiter) cleanupVisitors() {
	ticker := time.NewTicker(visitorCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stopCleanup:
			return
		case <-ticker.C:
			rl.evictIdle(time.Now())
		}
	}
}

func (rl *IPRateLimiter) evictIdle(now time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	for ip, v := range rl.visitors {
		if now.Sub(v.lastSeen) > visitorIdleTimeout {
			delete(rl.visitors, ip)
		}
	}
}
