package repository

import (
	"context"

	"github.com/abdulbasset-benz/misskitty-api/internal/domain"
)

type ProductRepository interface {
	AddProduct(ctx context.Context, data domain.Product) (id int64, err error)
	GetProducts(ctx context.Context) (data []domain.Product, err error)
	GetProductByID(ctx context.Context, id int64) (data domain.Product, err error)
	UpdateProduct(ctx context.Context, data domain.Product) (err error)
	// DeleteProduct removes the image rows and the product row in one
	// transaction and returns the stored file names so the caller can
	// unlink them after commit.
	DeleteProduct(ctx context.Context, id int64) (fileNames []string, err error)
	AddImages(ctx context.Context, productID int64, fileNames []string) (err error)
	DeleteImages(ctx context.Context, productID int64, imageIDs []int64) (fileNames []string, err error)
	DeleteAllImages(ctx context.Context, productID int64) (fileNames []string, err error)
}

type AdminRepository interface {
	GetAdminByEmail(ctx context.Context, email string) (data domain.Admin, err error)
	GetAdminByID(ctx context.Context, id int64) (data domain.Admin, err error)
	AddAdmin(ctx context.Context, data domain.Admin) (id int64, err error)
}
