package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const sessionIDKey = "sessionID"

// Claims identify an anonymous storefront session, the server-side stand-in
// for one browser tab. They carry no customer identity.
type Claims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// NewSessionToken starts a session and returns its signed token and id
func NewSessionToken(secret []byte, ttl time.Duration) (string, string, error) {
	sid := uuid.NewString()
	now := time.Now()
	claims := Claims{
		SessionID: sid,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", "", err
	}
	return token, sid, nil
}

// SessionRequired validates the session token and injects the session id into context
func SessionRequired(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session token required (Bearer <token>). Start one with POST /api/session"})
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			return secret, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid || uuid.Validate(claims.SessionID) != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session"})
			c.Abort()
			return
		}
		c.Set(sessionIDKey, claims.SessionID)
		c.Next()
	}
}

// GetSessionID extracts the caller's session id from context
func GetSessionID(c *gin.Context) string {
	return c.GetString(sessionIDKey)
}
