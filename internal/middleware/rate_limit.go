package middleware

import (
	"net/http"
	"strconv"
	"sync"

	"go-hms/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

var (
	errTooManyFromIP   = apperror.New(apperror.CodeTooManyRequests, "Too many requests from this IP", http.StatusTooManyRequests)
	errTooManyFromUser = apperror.New(apperror.CodeTooManyRequests, "Too many requests from this user", http.StatusTooManyRequests)
)

type KeyedRateLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
	r        rate.Limit // requests per second
	b        int        // burst
}

func NewKeyedRateLimiter(r rate.Limit, b int) *KeyedRateLimiter {
	return &KeyedRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		r:        r,
		b:        b,
	}
}

func (l *KeyedRateLimiter) GetLimiter(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, exists := l.limiters[key]
	if !exists {
		limiter = rate.NewLimiter(l.r, l.b)
		l.limiters[key] = limiter
	}

	return limiter
}

// RateLimitByIP: r = requests per second, b = burst
func RateLimitByIP(r rate.Limit, b int) gin.HandlerFunc {
	limiter := NewKeyedRateLimiter(r, b)
	return func(c *gin.Context) {
		if !limiter.GetLimiter(c.ClientIP()).Allow() {
			abortWithError(c, errTooManyFromIP)
			return
		}
		c.Next()
	}
}

// RateLimitByUser only limits authenticated requests.
func RateLimitByUser(r rate.Limit, b int) gin.HandlerFunc {
	limiter := NewKeyedRateLimiter(r, b)
	return func(c *gin.Context) {
		id, err := CurrentIdentity(c)
		if err != nil {
			c.Next()
			return
		}
		if !limiter.GetLimiter(strconv.FormatInt(id.UserID, 10)).Allow() {
			abortWithError(c, errTooManyFromUser)
			return
		}
		c.Next()
	}
}
