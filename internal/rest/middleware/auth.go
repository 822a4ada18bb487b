package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

const (
	CtxUserID    = "user_id"
	CtxSessionID = "session_id"
)

var errInvalidToken = errors.New("invalid token")

// Claims carried by access tokens
type Claims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}

// SignToken issues an HS256 token for the user.
func SignToken(secret string, userID int64, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func parseToken(secret, tokenString string) (int64, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return 0, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID <= 0 {
		return 0, errInvalidToken
	}
	return claims.UserID, nil
}

// Auth resolves the viewer. Requests without a valid token stay anonymous, with
// the optional session header kept for session feeds. Routes that need a user
// reject anonymous viewers with RequireAuth.
func Auth(secret, sessionHeader string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if sid := c.GetHeader(sessionHeader); sid != "" {
			c.Set(CtxSessionID, sid)
		}

		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}
		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found || secret == "" {
			logrus.Debug("unsupported authorization header, treating request as anonymous")
			c.Next()
			return
		}
		uid, err := parseToken(secret, tokenString)
		if err != nil {
			logrus.Debugf("%v: %v, treating request as anonymous", errInvalidToken, err)
			c.Next()
			return
		}
		c.Set(CtxUserID, uid)
		c.Next()
	}
}

// RequireAuth rejects anonymous viewers. It must run after Auth.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetInt64(CtxUserID) <= 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "authentication required"})
			return
		}
		c.Next()
	}
}
