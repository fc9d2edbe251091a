package service

import (
	"context"

	"github.com/abdulbasset-benz/misskitty-api/config"
	"github.com/abdulbasset-benz/misskitty-api/internal/dto"
	"github.com/abdulbasset-benz/misskitty-api/internal/order"
	"github.com/abdulbasset-benz/misskitty-api/internal/repository"
	"github.com/abdulbasset-benz/misskitty-api/pkg/errs"
	"github.com/abdulbasset-benz/misskitty-api/pkg/response"
)

type OrderServiceImpl struct {
	productRepo repository.ProductRepository
	config      config.Config
}

func CreateNewOrderService(productRepo repository.ProductRepository, config config.Config) OrderService {
	return &OrderServiceImpl{productRepo: productRepo, config: config}
}

func (s *OrderServiceImpl) ComposeWhatsAppLink(ctx context.Context, payload dto.OrderRequest) (resp dto.OrderLinkResponse, verrs []response.ValidationError, err error) {
	verrs = order.Validate(payload)
	if len(verrs) > 0 {
		return resp, verrs, errs.ErrClient
	}

	product, err := s.productRepo.GetProductByID(ctx, payload.ProductID)
	if err != nil {
		return resp, nil, err
	}
	if product.ID == 0 {
		return resp, nil, errs.ErrNotFound
	}
	if product.Stock <= 0 {
		return resp, nil, errs.ErrOutOfStock
	}

	link, err := order.Compose(order.Snapshot{Name: product.Name, Price: product.Price}, payload, s.config.OrderConfig.WhatsAppNumber)
	if err != nil {
		return resp, nil, err
	}

	resp.URL = link

	return resp, nil, nil
}
