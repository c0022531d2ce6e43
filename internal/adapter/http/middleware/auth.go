package middleware

import (
	"errors"
	"log"
	"movequote/pkg"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	AccessTokenCookie = "accessToken"
	userIDContextKey  = "userId"
)

var errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)

type accessTokenClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
}

// ExtractUser verifies the access token, when one is present, and stores its
// userId on the gin context. A missing or invalid token leaves the request
// anonymous; RequireUser decides whether that is acceptable.
func ExtractUser(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := accessToken(c)
		if raw == "" {
			c.Next()
			return
		}

		userID, err := parseAccessToken(raw, secret)
		if err != nil {
			log.Printf("[auth][middleware] token rejected path=%s err=%v", c.FullPath(), err)
			c.Next()
			return
		}
		SetUserID(c, userID)
		c.Next()
	}
}

// RequireUser aborts with 401 unless ExtractUser found a user.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := UserID(c); !ok {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		c.Next()
	}
}

func SetUserID(c *gin.Context, userID string) {
	c.Set(userIDContextKey, userID)
}

func UserID(c *gin.Context) (string, bool) {
	v, ok := c.Get(userIDContextKey)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

// accessToken prefers the cookie and falls back to a Bearer header.
func accessToken(c *gin.Context) string {
	if cookie, err := c.Cookie(AccessTokenCookie); err == nil && strings.TrimSpace(cookie) != "" {
		return strings.TrimSpace(cookie)
	}
	header := c.GetHeader("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}

func parseAccessToken(raw string, secret []byte) (string, error) {
	var claims accessTokenClaims
	_, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(claims.UserID) == "" {
		return "", errors.New("token has no userId claim")
	}
	return strings.TrimSpace(claims.UserID), nil
}
