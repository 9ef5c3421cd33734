package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskhub-dev/taskhub/internal/auth"
	"github.com/taskhub-dev/taskhub/internal/types"
)

// AuthenticatedUser is the identity extracted from a verified token.
type AuthenticatedUser struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// HeaderToken is the custom header carrying the raw token. No Bearer prefix.
const HeaderToken = "x-auth-token"

// AuthMiddleware verifies the x-auth-token header and stores the embedded
// identity in the request context. Verification is purely cryptographic; no
// database lookup happens here.
func AuthMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString := ctx.GetHeader(HeaderToken)

		if tokenString == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "No token, authorization denied"})
			return
		}

		identity, err := tokens.Verify(tokenString)

		if err != nil {
			switch {
			case errors.Is(err, auth.ErrTokenExpired):
				ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "Token is expired, authorization denied"})
			case errors.Is(err, auth.ErrTokenInvalid):
				ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "Token is not valid, authorization denied"})
			default:
				ctx.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"msg": "Server Error during token verification"})
			}
			return
		}

		ctx.Set(types.ContextUserKey, AuthenticatedUser{
			ID:    identity.UserID,
			Name:  identity.Name,
			Email: identity.Email,
		})
		ctx.Next()
	}
}
