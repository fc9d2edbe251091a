package controller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/abdulbasset-benz/misskitty-api/internal/dto"
	"github.com/abdulbasset-benz/misskitty-api/pkg/errs"
	"github.com/abdulbasset-benz/misskitty-api/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubOrderService struct {
	resp  dto.OrderLinkResponse
	verrs []response.ValidationError
	err   error
}

func (s *stubOrderService) ComposeWhatsAppLink(ctx context.Context, payload dto.OrderRequest) (dto.OrderLinkResponse, []response.ValidationError, error) {
	return s.resp, s.verrs, s.err
}

func TestComposeWhatsAppLink(t *testing.T) {
	type TestCase struct {
		Name           string
		Service        *stubOrderService
		ExpectedStatus int
		ExpectedBody   string
	}

	testCases := []TestCase{
		{
			Name: "Valid request",
			Service: &stubOrderService{
				resp: dto.OrderLinkResponse{URL: "https://wa.me/213555000000?text=New+order"},
			},
			ExpectedStatus: http.StatusOK,
			ExpectedBody:   "wa.me",
		},
		{
			Name: "Missing fields",
			Service: &stubOrderService{
				verrs: []response.ValidationError{{Field: "phone", Tag: "required"}},
				err:   errs.ErrClient,
			},
			ExpectedStatus: http.StatusBadRequest,
			ExpectedBody:   "phone",
		},
		{
			Name:           "Unknown product",
			Service:        &stubOrderService{err: errs.ErrNotFound},
			ExpectedStatus: http.StatusNotFound,
		},
		{
			Name:           "Out of stock",
			Service:        &stubOrderService{err: errs.ErrOutOfStock},
			ExpectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			e := echo.New()
			body := `{"product_id":1,"name":"Amel","phone":"0555"}`
			req := httptest.NewRequest(http.MethodPost, "/api/orders/whatsapp-link", strings.NewReader(body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			ctrl := OrderController{service: tc.Service}
			require.NoError(t, ctrl.ComposeWhatsAppLink(c))

			assert.Equal(t, tc.ExpectedStatus, rec.Code)
			if tc.ExpectedBody != "" {
				assert.Contains(t, rec.Body.String(), tc.ExpectedBody)
			}
		})
	}
}
