package http

import (
	"net/http"

	"lofi-basho/internal/entity"
	"lofi-basho/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	ctxEmailKey = "email"
	ctxUserKey  = "current_user"
)

// ResolveUser turns the validated token subject into a user row. A token
// whose subject no longer resolves to a user is rejected here, before any
// handler runs.
func ResolveUser(authUseCase usecase.AuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(ctxEmailKey)
		if email == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		user, err := authUseCase.GetUserByEmail(email)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Could not validate credentials"})
			c.Abort()
			return
		}

		c.Set(ctxUserKey, user)
		c.Next()
	}
}

func currentUser(c *gin.Context) (*entity.User, bool) {
	value, exists := c.Get(ctxUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*entity.User)
	return user, ok
}
