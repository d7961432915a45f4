package rest

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/inkpost/internal/common"
	"github.com/dmitrijs2005/inkpost/internal/server/auth"
	"github.com/dmitrijs2005/inkpost/internal/server/models"
)

// contextUserKey holds the resolved *models.User for protected handlers.
const contextUserKey = "auth.user"

const bearerPrefix = "Bearer "

// requireAuth turns an Authorization bearer token into a resolved identity or
// rejects the request with 401 before any handler runs. The user referenced
// by the token must still exist; a lookup miss is a failure, not a nil identity.
func (s *RestServer) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			s.abortUnauthorized(c)
			return
		}
		token := strings.TrimPrefix(header, bearerPrefix)

		userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
		if err != nil {
			s.abortUnauthorized(c)
			return
		}

		user, err := s.users.GetByID(c.Request.Context(), userID)
		if err != nil {
			s.abortUnauthorized(c)
			return
		}

		c.Set(contextUserKey, user)
		c.Next()
	}
}

func (s *RestServer) abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access denied."})
}

// currentUser returns the identity attached by requireAuth.
func currentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(contextUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}

// requestLogger logs one line per request with a random request id.
func (s *RestServer) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		reqID, err := common.MakeRandHexString(8)
		if err != nil {
			reqID = "unknown"
		}

		c.Next()

		s.logger.Info(c.Request.Context(), "request",
			"req_id", reqID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start).String(),
		)
	}
}
