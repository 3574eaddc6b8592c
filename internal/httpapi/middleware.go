package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AuthHeader carries the session token on requests and echoes newly issued
// tokens back on register/login responses.
const AuthHeader = "x-auth"

const (
	ctxUserID = "userID"
	ctxToken  = "token"
)

// requireAuth resolves the x-auth header to a user identity or rejects the
// request with 401. Authentication is evaluated fresh on every request;
// a missing header, a forged token and a revoked token are indistinguishable
// to the client.
func (a *API) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader(AuthHeader)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing auth token"})
			return
		}
		userID, _, err := a.tokens.Validate(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Set(ctxUserID, userID)
		c.Set(ctxToken, tokenString)
		c.Next()
	}
}

// caller returns the identity the gate attached to this request.
func caller(c *gin.Context) (uint, string) {
	return c.GetUint(ctxUserID), c.GetString(ctxToken)
}
