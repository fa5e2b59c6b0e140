package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alimikegami/velvet-storefront/internal/domain"
	"github.com/alimikegami/velvet-storefront/internal/repository"
	"github.com/alimikegami/velvet-storefront/pkg/utils"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireTab(t *testing.T) {
	const secret = "test-secret"

	users := repository.CreateUserRepository()
	for _, u := range []domain.User{
		{ID: "1", Name: "Admin", Email: "admin@velvetvogue.com", Role: domain.RoleSuperAdmin},
		{ID: "2", Name: "Shop", Email: "shop@velvetvogue.com", Role: domain.RoleShopAdmin},
		{ID: "3", Name: "Demoted", Email: "demoted@velvetvogue.com", Role: domain.RoleShopAdmin},
		{ID: "4", Name: "Gone", Email: "gone@velvetvogue.com", Role: domain.RoleShopAdmin},
	} {
		require.NoError(t, users.AddUser(context.Background(), u))
	}

	e := echo.New()
	g := e.Group("/admin", Authenticate(secret, users))
	g.GET("/users", func(c echo.Context) error {
		claims, _ := Session(c)
		return c.String(http.StatusOK, claims.Email)
	}, RequireTab(domain.TabUsers))
	g.GET("/products", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, RequireTab(domain.TabProducts))

	superToken, err := utils.CreateJWTToken("1", "Admin", "admin@velvetvogue.com", string(domain.RoleSuperAdmin), secret, "")
	require.NoError(t, err)
	shopToken, err := utils.CreateJWTToken("2", "Shop", "shop@velvetvogue.com", string(domain.RoleShopAdmin), secret, "")
	require.NoError(t, err)
	forged, err := utils.CreateJWTToken("1", "Admin", "admin@velvetvogue.com", string(domain.RoleSuperAdmin), "other", "")
	require.NoError(t, err)
	staleRole, err := utils.CreateJWTToken("3", "Demoted", "demoted@velvetvogue.com", string(domain.RoleSuperAdmin), secret, "")
	require.NoError(t, err)
	deletedToken, err := utils.CreateJWTToken("4", "Gone", "gone@velvetvogue.com", string(domain.RoleShopAdmin), secret, "")
	require.NoError(t, err)
	require.NoError(t, users.DeleteUser(context.Background(), "4"))

	testCases := []struct {
		name     string
		path     string
		token    string
		expected int
	}{
		{name: "no token", path: "/admin/users", expected: http.StatusUnauthorized},
		{name: "forged token", path: "/admin/users", token: forged, expected: http.StatusUnauthorized},
		{name: "super admin users", path: "/admin/users", token: superToken, expected: http.StatusOK},
		{name: "shop admin users", path: "/admin/users", token: shopToken, expected: http.StatusForbidden},
		{name: "shop admin products", path: "/admin/products", token: shopToken, expected: http.StatusOK},
		{name: "stored role wins over token role", path: "/admin/users", token: staleRole, expected: http.StatusForbidden},
		{name: "deleted account", path: "/admin/products", token: deletedToken, expected: http.StatusUnauthorized},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			if tc.token != "" {
				req.Header.Set(echo.HeaderAuthorization, "Bearer "+tc.token)
			}
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			assert.Equal(t, tc.expected, rec.Code)
		})
	}
}
