package http

import (
	"errors"
	"net/http"
	"strings"

	"laundry/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const actorKey = "actor"

// Actor is the authenticated caller. Every order operation receives it explicitly.
type Actor struct {
	ID    kernel.UUID
	Name  string
	Email string
}

// Claims are issued by the account service. Subject carries the user id.
type Claims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

var errUnauthenticated = echo.NewHTTPError(http.StatusUnauthorized, "Unauthenticated.")

// Authenticate accepts HS256 bearer tokens signed with secret.
func Authenticate(secret []byte) echo.MiddlewareFunc {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			scheme, token, ok := strings.Cut(c.Request().Header.Get(echo.HeaderAuthorization), " ")
			if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
				return errUnauthenticated
			}

			actor, err := parseActor(parser, strings.TrimSpace(token), secret)
			if err != nil {
				return errUnauthenticated.WithInternal(err)
			}

			c.Set(actorKey, actor)
			return next(c)
		}
	}
}

func parseActor(parser *jwt.Parser, token string, secret []byte) (Actor, error) {
	var claims Claims
	if _, err := parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return secret, nil
	}); err != nil {
		return Actor{}, err
	}

	id, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return Actor{}, err
	}
	if err = id.Validate(); err != nil {
		return Actor{}, err
	}
	return Actor{ID: id, Name: claims.Name, Email: claims.Email}, nil
}

func actorFrom(c echo.Context) (Actor, error) {
	actor, ok := c.Get(actorKey).(Actor)
	if !ok {
		return Actor{}, errUnauthenticated.WithInternal(errors.New("no actor on authenticated route"))
	}
	return actor, nil
}
