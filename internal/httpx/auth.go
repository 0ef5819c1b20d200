package httpx

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/coffee-orders/internal/auth"
)

const ctxIdentity = "identity"

// HTTPError is the JSON body of every error response.
// swagger:model
type HTTPError struct {
	// example: not found
	Error string `json:"error"`
}

// Verifier turns a bearer token into an identity. *auth.Tokens satisfies it.
type Verifier interface {
	Verify(token string) (auth.Identity, error)
}

// Authenticate requires a valid bearer token and stores the caller identity.
func Authenticate(v Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(h, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, HTTPError{Error: "missing bearer token"})
			return
		}
		id, err := v.Verify(strings.TrimSpace(token))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, HTTPError{Error: "invalid or expired token"})
			return
		}
		c.Set(ctxIdentity, id)
		c.Next()
	}
}

// RequireRole must run after Authenticate.
func RequireRole(role auth.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !Identity(c).HasRole(role) {
			c.AbortWithStatusJSON(http.StatusForbidden, HTTPError{Error: "insufficient role"})
			return
		}
		c.Next()
	}
}

// Identity returns the authenticated caller, or the zero identity.
func Identity(c *gin.Context) auth.Identity {
	v, ok := c.Get(ctxIdentity)
	if !ok {
		return auth.Identity{}
	}
	id, _ := v.(auth.Identity)
	return id
}
