package server

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/avikm/job-board/internal/auth"
	"github.com/avikm/job-board/internal/metrics"
	"github.com/avikm/job-board/internal/services"
	"github.com/gin-gonic/gin"
	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

const (
	ctxEmployerID = "employerID"
	ctxAdminID    = "adminID"
	ctxRole       = "role"
)

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// requireEmployer admits only a valid employer token whose subject still
// exists, and attaches the employer id and role to the request context.
func (s *Server) requireEmployer() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, found := bearerToken(c)
		if !found {
			fail(c, http.StatusUnauthorized, "Missing authorization token")
			c.Abort()
			return
		}

		claims, err := s.tokens.Verify(token)
		if err != nil {
			fail(c, http.StatusUnauthorized, "Invalid token")
			c.Abort()
			return
		}
		if claims.Role != auth.RoleEmployer {
			fail(c, http.StatusForbidden, "Forbidden")
			c.Abort()
			return
		}

		if _, err = s.accounts.GetEmployer(c.Request.Context(), claims.SubjectID); err != nil {
			fail(c, http.StatusUnauthorized, "Employer not found")
			c.Abort()
			return
		}

		c.Set(ctxEmployerID, claims.SubjectID)
		c.Set(ctxRole, claims.Role)
		c.Next()
	}
}

// requireAdmin accepts the master or admin role and verifies the admin record
// still exists.
func (s *Server) requireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, found := bearerToken(c)
		if !found {
			fail(c, http.StatusUnauthorized, "Missing authorization token")
			c.Abort()
			return
		}

		claims, err := s.tokens.Verify(token)
		if err != nil {
			fail(c, http.StatusUnauthorized, "Invalid token")
			c.Abort()
			return
		}
		if claims.Role != auth.RoleMaster && claims.Role != auth.RoleAdmin {
			fail(c, http.StatusForbidden, "Forbidden: admin only")
			c.Abort()
			return
		}

		if _, err = s.accounts.GetAdmin(c.Request.Context(), claims.SubjectID); err != nil {
			fail(c, http.StatusUnauthorized, "Admin not found")
			c.Abort()
			return
		}

		c.Set(ctxAdminID, claims.SubjectID)
		c.Set(ctxRole, claims.Role)
		c.Next()
	}
}

// callerFromToken builds the optional actor for endpoints where a token may be
// present but is not required. An invalid token just means no actor.
func (s *Server) callerFromToken(c *gin.Context) *services.Actor {
	token, found := bearerToken(c)
	if !found {
		return nil
	}
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil
	}
	return &services.Actor{ID: claims.SubjectID, Role: claims.Role}
}

func employerID(c *gin.Context) uint {
	return c.GetUint(ctxEmployerID)
}

// rateLimitByIP caps how fast a single address can hit an endpoint. Limiters
// are kept per IP and expire with their cache entry.
func rateLimitByIP(perSecond float64, burst int) gin.HandlerFunc {
	limiters := gocache.New(10*time.Minute, 20*time.Minute)

	return func(c *gin.Context) {
		ip := c.ClientIP()

		var limiter *rate.Limiter
		if cached, found := limiters.Get(ip); found {
			limiter = cached.(*rate.Limiter)
		} else {
			limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
			limiters.SetDefault(ip, limiter)
		}

		if !limiter.Allow() {
			fail(c, http.StatusTooManyRequests, "Too many requests")
			c.Abort()
			return
		}
		c.Next()
	}
}

func requestMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.RequestDuration.
			WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
