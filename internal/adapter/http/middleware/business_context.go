// Package middleware holds the gin middleware shared by every route.
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"dispatch_service/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	businessIDKey = "business_id"
	actorKey      = "actor"

	// Header fallback used when no JWT secret is configured (local runs).
	HeaderBusinessID = "X-Business-ID"
	HeaderActor      = "X-Actor"
)

var (
	errMissingToken    = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing bearer token", http.StatusUnauthorized)
	errInvalidToken    = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid bearer token", http.StatusUnauthorized)
	errMissingBusiness = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Token carries no business_id", http.StatusUnauthorized)
)

// DispatchClaims are the claims the surrounding platform puts in its tokens.
type DispatchClaims struct {
	BusinessID string `json:"business_id"`
	jwt.RegisteredClaims
}

// BusinessContext resolves the tenant of every request. With a secret it
// requires an HS256 bearer token; without one it trusts the X-Business-ID
// header.
func BusinessContext(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			businessID := strings.TrimSpace(c.GetHeader(HeaderBusinessID))
			if businessID == "" {
				c.AbortWithStatusJSON(errMissingBusiness.HTTPStatus, errMissingBusiness.ToHTTPError())
				return
			}
			SetBusinessContext(c, businessID, strings.TrimSpace(c.GetHeader(HeaderActor)))
			c.Next()
			return
		}

		raw, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || strings.TrimSpace(raw) == "" {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}
		claims, err := ParseToken(strings.TrimSpace(raw), secret)
		if err != nil {
			appErr := errInvalidToken
			if errors.Is(err, errNoBusinessClaim) {
				appErr = errMissingBusiness
			}
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		SetBusinessContext(c, claims.BusinessID, claims.Subject)
		c.Next()
	}
}

var errNoBusinessClaim = errors.New("business_id claim is empty")

// ParseToken validates an HS256 token and returns its claims.
func ParseToken(token, secret string) (*DispatchClaims, error) {
	claims := &DispatchClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(claims.BusinessID) == "" {
		return nil, errNoBusinessClaim
	}
	return claims, nil
}

// SignToken issues a token for businessID; used by the CLI and tests.
func SignToken(secret, businessID, subject string) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, DispatchClaims{
		BusinessID:       businessID,
		RegisteredClaims: jwt.RegisteredClaims{Subject: subject},
	}).SignedString([]byte(secret))
}

func SetBusinessContext(c *gin.Context, businessID, actor string) {
	c.Set(businessIDKey, businessID)
	c.Set(actorKey, actor)
}

func BusinessID(c *gin.Context) string {
	return c.GetString(businessIDKey)
}

func Actor(c *gin.Context) string {
	return c.GetString(actorKey)
}
