package api

import (
	"strings"

	"github.com/gin-gonic/gin"

	"coolassistant.app/pkg/errors"
	"coolassistant.app/pkg/validation"
)

const userEmailKey = "user_email"

// requireUser reads the e-mail the auth proxy puts in the configured header
func (s *HTTPServerAdapter) requireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		email := strings.TrimSpace(c.GetHeader(s.config.UserHeader))
		if !validation.IsValidEmail(email) {
			s.handleError(c, errors.NewUnauthorizedError("a signed-in user is required"))
			return
		}
		c.Set(userEmailKey, strings.ToLower(email))
		c.Next()
	}
}

func userEmail(c *gin.Context) string {
	return c.GetString(userEmailKey)
}
