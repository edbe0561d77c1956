package http

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"supplychain/internal/core/domain/model/account"
	"supplychain/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const userContextKey = "authenticated_user"

// AccountReader loads the account snapshot for an authenticated request.
type AccountReader interface {
	Get(ctx context.Context, id kernel.UUID) (account.User, error)
}

// AuthMiddleware authenticates requests with a bearer JWT and resolves the
// caller's account snapshot. The snapshot, not the token, is what role
// resolution and authorization read downstream.
func AuthMiddleware(secret []byte, users AccountReader) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, ok := bearerToken(c.Request().Header.Get("Authorization"))
			if !ok {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Detail: "Authentication credentials were not provided.",
				})
			}

			token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
				if _, isHMAC := t.Method.(*jwt.SigningMethodHMAC); !isHMAC {
					return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
				}
				return secret, nil
			})
			if err != nil || !token.Valid {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Detail: "Invalid or expired token.",
				})
			}

			subject, err := token.Claims.GetSubject()
			if err != nil {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Detail: "Invalid or expired token.",
				})
			}

			userID, err := kernel.UUIDFromString(subject)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Detail: "Invalid or expired token.",
				})
			}

			user, err := users.Get(c.Request().Context(), userID)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Detail: "User not found.",
				})
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}

	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}

func currentUser(c echo.Context) account.User {
	user, _ := c.Get(userContextKey).(account.User)
	return user
}
