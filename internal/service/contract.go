package service

import (
	"context"

	"github.com/abdulbasset-benz/misskitty-api/internal/dto"
	"github.com/abdulbasset-benz/misskitty-api/pkg/response"
)

type ProductService interface {
	AddProduct(ctx context.Context, payload dto.ProductRequest, uploads []dto.Upload, baseURL string) (resp dto.ProductResponse, err error)
	GetProducts(ctx context.Context, query dto.CatalogQuery, baseURL string) (resp []dto.ProductResponse, err error)
	GetProductByID(ctx context.Context, id int64, baseURL string) (resp dto.ProductResponse, err error)
	GetProductDetail(ctx context.Context, id int64, imageIndex int, baseURL string) (resp dto.ProductDetailResponse, err error)
	UpdateProduct(ctx context.Context, payload dto.ProductRequest, uploads []dto.Upload, baseURL string) (resp dto.ProductResponse, err error)
	DeleteProduct(ctx context.Context, id int64) (err error)
}

type AdminService interface {
	SeedAdmin(ctx context.Context) (err error)
	Login(ctx context.Context, payload dto.AdminRequest) (resp dto.LoginResponse, err error)
}

type OrderService interface {
	ComposeWhatsAppLink(ctx context.Context, payload dto.OrderRequest) (resp dto.OrderLinkResponse, verrs []response.ValidationError, err error)
}
