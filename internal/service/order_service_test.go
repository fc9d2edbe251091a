package service

import (
	"context"
	"net/url"
	"testing"

	"github.com/abdulbasset-benz/misskitty-api/config"
	"github.com/abdulbasset-benz/misskitty-api/internal/domain"
	"github.com/abdulbasset-benz/misskitty-api/internal/dto"
	"github.com/abdulbasset-benz/misskitty-api/pkg/errs"
	"github.com/stretchr/testify/suite"
)

type OrderServiceTestSuite struct {
	suite.Suite
	repo *fakeProductRepo
	svc  OrderService
}

func (s *OrderServiceTestSuite) SetupTest() {
	s.repo = newFakeProductRepo()
	conf := config.Config{
		OrderConfig: config.OrderConfig{WhatsAppNumber: "213555000000"},
	}
	s.svc = CreateNewOrderService(s.repo, conf)
}

func (s *OrderServiceTestSuite) seedProduct(stock int) int64 {
	id, err := s.repo.AddProduct(context.Background(), domain.Product{
		Name:  "Gown",
		Price: 25000,
		Stock: stock,
	})
	s.Require().NoError(err)
	return id
}

func (s *OrderServiceTestSuite) orderRequest(productID int64) dto.OrderRequest {
	return dto.OrderRequest{
		ProductID: productID,
		Name:      "Amel",
		Phone:     "0555",
		Wilaya:    "Alger",
		Commune:   "Hydra",
		Address:   "5 Rue des Pins",
		Size:      "38",
		Color:     "Red",
	}
}

func (s *OrderServiceTestSuite) Test_ComposeWhatsAppLink() {
	id := s.seedProduct(2)

	resp, verrs, err := s.svc.ComposeWhatsAppLink(context.Background(), s.orderRequest(id))
	s.Require().NoError(err)
	s.Empty(verrs)

	parsed, err := url.Parse(resp.URL)
	s.Require().NoError(err)
	s.Equal("wa.me", parsed.Host)
	s.Equal("/213555000000", parsed.Path)

	msg := parsed.Query().Get("text")
	for _, want := range []string{"Gown", "25000", "Amel", "0555", "38", "Red"} {
		s.Contains(msg, want)
	}
}

func (s *OrderServiceTestSuite) Test_ComposeMissingFields() {
	id := s.seedProduct(2)

	req := s.orderRequest(id)
	req.Phone = ""
	req.Size = ""

	_, verrs, err := s.svc.ComposeWhatsAppLink(context.Background(), req)
	s.ErrorIs(err, errs.ErrClient)
	s.Len(verrs, 2)
}

func (s *OrderServiceTestSuite) Test_ComposeUnknownProduct() {
	_, _, err := s.svc.ComposeWhatsAppLink(context.Background(), s.orderRequest(404))
	s.ErrorIs(err, errs.ErrNotFound)
}

func (s *OrderServiceTestSuite) Test_ComposeOutOfStock() {
	id := s.seedProduct(0)

	_, _, err := s.svc.ComposeWhatsAppLink(context.Background(), s.orderRequest(id))
	s.ErrorIs(err, errs.ErrOutOfStock)
}

func TestOrderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}
