package helper

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"
)

// IPRateLimiter keeps one token bucket per client IP.
type IPRateLimiter struct {
	ips map[string]*visitor
	mu  sync.Mutex
	r   rate.Limit
	b   int
	ttl time.Duration
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	return &IPRateLimiter{
		ips: make(map[string]*visitor),
		r:   r,
		b:   b,
		ttl: 3 * time.Minute,
	}
}

func (i *IPRateLimiter) GetLimiter(ip string) *rate.Limiter {
	i.mu.Lock()
	defer i.mu.Unlock()

	v, exists := i.ips[ip]
	if !exists {
		limiter := rate.NewLimiter(i.r, i.b)
		i.ips[ip] = &visitor{limiter, time.Now()}
		return limiter
	}
	v.lastSeen = time.Now()
	return v.limiter
}

// Cleanup drops visitors idle for longer than the ttl.
func (i *IPRateLimiter) Cleanup() {
	i.mu.Lock()
	defer i.mu.Unlock()
	for ip, v := range i.ips {
		if time.Since(v.lastSeen) > i.ttl {
			delete(i.ips, ip)
		}
	}
}

// Run cleans up idle visitors every interval until done is closed.
func (i *IPRateLimiter) Run(interval time.Duration, done <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			i.Cleanup()
		case <-done:
			return
		}
	}
}

func (i *IPRateLimiter) Len() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return len(i.ips)
}

// RateLimitMiddleware answers 429 RATE_LIMITED once an IP exhausts its bucket.
func RateLimitMiddleware(limiter *IPRateLimiter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !limiter.GetLimiter(c.IP()).Allow() {
			return NewError(CodeRateLimited, "Too many requests, please slow down")
		}
		return c.Next()
	}
}

// DefaultRateLimiter builds a limiter from RATE_LIMIT_RPS / RATE_LIMIT_BURST.
func DefaultRateLimiter() *IPRateLimiter {
	l := NewIPRateLimiter(rate.Limit(GetenvFloat("RATE_LIMIT_RPS", 5)), GetenvInt("RATE_LIMIT_BURST", 10))
	go l.Run(time.Minute, nil)
	return l
}
