package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/alimikegami/velvet-storefront/internal/domain"
	"github.com/alimikegami/velvet-storefront/pkg/errs"
	"github.com/alimikegami/velvet-storefront/pkg/response"
	"github.com/alimikegami/velvet-storefront/pkg/utils"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

const sessionKey = "session"

// UserLookup resolves the account behind a session token.
type UserLookup interface {
	GetUserByID(ctx context.Context, id string) (domain.User, error)
}

// Authenticate requires a valid bearer token whose account still exists. The
// stored account, not the token, supplies the role for later gating.
func Authenticate(secret string, users UserLookup) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(token) == "" {
				return response.WriteErrorResponse(c, errs.ErrNotLoggedIn, nil)
			}

			claims, err := utils.ParseJWTToken(strings.TrimSpace(token), secret)
			if err != nil {
				if errors.Is(err, utils.ErrExpiredToken) {
					return response.WriteErrorResponse(c, errs.ErrTokenExpired, nil)
				}
				log.Ctx(c.Request().Context()).Info().Err(err).Str("component", "Authenticate").Msg("")
				return response.WriteErrorResponse(c, errs.ErrNotLoggedIn, nil)
			}

			user, err := users.GetUserByID(c.Request().Context(), claims.UserID)
			if err != nil {
				log.Ctx(c.Request().Context()).Info().Err(err).Str("component", "Authenticate").Str("user_id", claims.UserID).Msg("session account not found")
				return response.WriteErrorResponse(c, errs.ErrNotLoggedIn, nil)
			}
			claims.Name = user.Name
			claims.Email = user.Email
			claims.Role = string(user.Role)

			c.Set(sessionKey, claims)

			logger := log.Ctx(c.Request().Context()).With().Str("user_id", claims.UserID).Logger()
			c.SetRequest(c.Request().WithContext(logger.WithContext(c.Request().Context())))

			return next(c)
		}
	}
}

// RequireTab lets the request through only when the session role may open tab.
// It must run after Authenticate.
func RequireTab(tab domain.Tab) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := Session(c)
			if !ok {
				return response.WriteErrorResponse(c, errs.ErrNotLoggedIn, nil)
			}

			if !domain.CanAccess(domain.Role(claims.Role), tab) {
				return response.WriteErrorResponse(c, errs.ErrForbiddenTab, nil)
			}

			return next(c)
		}
	}
}

func Session(c echo.Context) (utils.SessionClaims, bool) {
	claims, ok := c.Get(sessionKey).(utils.SessionClaims)
	return claims, ok
}
