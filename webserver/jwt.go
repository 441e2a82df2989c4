package webserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"community_fund/sdk"
)

const callerKey = "addr"

// JWTMiddleware verifies an HS256 bearer token and stores its subject as the caller.
func JWTMiddleware(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		tok, err := jwt.Parse(h[7:], func(t *jwt.Token) (interface{}, error) { return secret, nil },
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !tok.Valid {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		sub, err := tok.Claims.GetSubject()
		if err != nil || sub == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		c.Set(callerKey, sub)
		c.Next()
	}
}

// IssueToken signs a caller token for addr.
func IssueToken(secret []byte, addr sdk.Address, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   addr.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func caller(c *gin.Context) sdk.Address {
	return sdk.Address(c.GetString(callerKey))
}
