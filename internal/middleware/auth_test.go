package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/abdulbasset-benz/misskitty-api/internal/domain"
	"github.com/abdulbasset-benz/misskitty-api/pkg/utils"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAdminRepo struct {
	admins map[int64]domain.Admin
}

func (r *stubAdminRepo) GetAdminByEmail(ctx context.Context, email string) (domain.Admin, error) {
	return domain.Admin{}, nil
}

func (r *stubAdminRepo) GetAdminByID(ctx context.Context, id int64) (domain.Admin, error) {
	return r.admins[id], nil
}

func (r *stubAdminRepo) AddAdmin(ctx context.Context, data domain.Admin) (int64, error) {
	return 0, nil
}

func TestAdminGuard(t *testing.T) {
	const secret = "test-secret"

	repo := &stubAdminRepo{admins: map[int64]domain.Admin{
		1: {ID: 1, Email: "admin@misskitty.shop"},
	}}
	guard := CreateAdminGuard(repo, secret)

	validToken, err := utils.CreateJWTToken(1, "admin@misskitty.shop", secret)
	require.NoError(t, err)

	deletedAdminToken, err := utils.CreateJWTToken(2, "gone@misskitty.shop", secret)
	require.NoError(t, err)

	foreignToken, err := utils.CreateJWTToken(1, "admin@misskitty.shop", "other-secret")
	require.NoError(t, err)

	type TestCase struct {
		Name           string
		Cookie         *http.Cookie
		ExpectedStatus int
	}

	testCases := []TestCase{
		{
			Name:           "Valid token",
			Cookie:         &http.Cookie{Name: SessionCookieName, Value: validToken},
			ExpectedStatus: http.StatusOK,
		},
		{
			Name:           "No cookie",
			Cookie:         nil,
			ExpectedStatus: http.StatusUnauthorized,
		},
		{
			Name:           "Admin no longer exists",
			Cookie:         &http.Cookie{Name: SessionCookieName, Value: deletedAdminToken},
			ExpectedStatus: http.StatusUnauthorized,
		},
		{
			Name:           "Token signed with another secret",
			Cookie:         &http.Cookie{Name: SessionCookieName, Value: foreignToken},
			ExpectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/admin/validate-token", nil)
			if tc.Cookie != nil {
				req.AddCookie(tc.Cookie)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handler := guard(func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			})
			require.NoError(t, handler(c))

			assert.Equal(t, tc.ExpectedStatus, rec.Code)

			if tc.ExpectedStatus == http.StatusOK {
				assert.Equal(t, int64(1), c.Get("adminID"))
			}
		})
	}
}
