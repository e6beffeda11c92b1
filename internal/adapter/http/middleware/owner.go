package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"

	"todolist/pkg/apierrors"
)

const (
	OwnerHeader     = "X-Owner-ID"
	ownerContextKey = "owner_id"
	bearerPrefix    = "Bearer "
)

var errMissingOwner = errors.New("missing owner identity")

// OwnerMiddleware authenticates the caller and stores the owner id in the gin context. With a
// non-empty secret the owner is the subject of an HS256 bearer token; otherwise it is read from
// the X-Owner-ID header.
func OwnerMiddleware(jwtSecret string) gin.HandlerFunc {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	secret := []byte(jwtSecret)

	return func(c *gin.Context) {
		var (
			ownerID string
			err     error
		)
		if len(secret) > 0 {
			ownerID, err = ownerFromBearer(parser, secret, c.GetHeader("Authorization"))
		} else {
			ownerID, err = ownerFromHeader(c.GetHeader(OwnerHeader))
		}

		if err != nil {
			zap.L().Debug("rejecting request without owner", zap.String("path", c.Request.URL.Path), zap.Error(err))
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgMissingOwner, GetLang(c)),
			)
			return
		}

		c.Set(ownerContextKey, ownerID)
		c.Next()
	}
}

func ownerFromHeader(value string) (string, error) {
	ownerID := strings.TrimSpace(value)
	if ownerID == "" {
		return "", errMissingOwner
	}
	return ownerID, nil
}

func ownerFromBearer(parser *jwt.Parser, secret []byte, header string) (string, error) {
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", errMissingOwner
	}

	claims := &jwt.RegisteredClaims{}
	token, err := parser.ParseWithClaims(strings.TrimSpace(header[len(bearerPrefix):]), claims, func(*jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", errMissingOwner
	}
	return ownerFromHeader(claims.Subject)
}

// GetOwnerID returns the owner stored by OwnerMiddleware, or "" when the route is not protected.
func GetOwnerID(c *gin.Context) string {
	return c.GetString(ownerContextKey)
}
