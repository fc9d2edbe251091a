package repository

import (
	"context"
	"errors"
	"time"

	"github.com/abdulbasset-benz/misskitty-api/internal/domain"
	"github.com/abdulbasset-benz/misskitty-api/pkg/errs"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type ProductRepositoryImpl struct {
	db *gorm.DB
}

func CreateNewProductRepository(db *gorm.DB) ProductRepository {
	return &ProductRepositoryImpl{db: db}
}

func (r *ProductRepositoryImpl) AddProduct(ctx context.Context, data domain.Product) (id int64, err error) {
	timestamp := time.Now().UnixMilli()
	data.CreatedAt = timestamp
	data.UpdatedAt = timestamp
	for i := range data.Images {
		data.Images[i].CreatedAt = timestamp
		data.Images[i].UpdatedAt = timestamp
	}

	err = r.db.WithContext(ctx).Create(&data).Error
	if err != nil {
		log.Error().Err(err).Str("component", "AddProduct").Msg("")
		return 0, errs.ErrInternalServer
	}

	return data.ID, nil
}

func (r *ProductRepositoryImpl) GetProducts(ctx context.Context) (data []domain.Product, err error) {
	err = r.db.WithContext(ctx).Preload("Images").Order("id desc").Find(&data).Error
	if err != nil {
		log.Error().Err(err).Str("component", "GetProducts").Msg("")
		return nil, errs.ErrInternalServer
	}

	return data, nil
}

func (r *ProductRepositoryImpl) GetProductByID(ctx context.Context, id int64) (data domain.Product, err error) {
	err = r.db.WithContext(ctx).Preload("Images").First(&data, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Product{}, nil
		}
		log.Error().Err(err).Str("component", "GetProductByID").Msg("")
		return domain.Product{}, errs.ErrInternalServer
	}

	return data, nil
}

func (r *ProductRepositoryImpl) UpdateProduct(ctx context.Context, data domain.Product) (err error) {
	data.UpdatedAt = time.Now().UnixMilli()

	err = r.db.WithContext(ctx).Omit("Images").Save(&data).Error
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateProduct").Msg("")
		return errs.ErrInternalServer
	}

	return nil
}

func (r *ProductRepositoryImpl) DeleteProduct(ctx context.Context, id int64) (fileNames []string, err error) {
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var images []domain.ProductImage
		if err := tx.Where("product_id = ?", id).Find(&images).Error; err != nil {
			return err
		}
		for _, img := range images {
			fileNames = append(fileNames, img.FileName)
		}

		if err := tx.Where("product_id = ?", id).Delete(&domain.ProductImage{}).Error; err != nil {
			return err
		}

		return tx.Delete(&domain.Product{}, id).Error
	})
	if err != nil {
		log.Error().Err(err).Str("component", "DeleteProduct").Msg("")
		return nil, errs.ErrInternalServer
	}

	return fileNames, nil
}

func (r *ProductRepositoryImpl) AddImages(ctx context.Context, productID int64, fileNames []string) (err error) {
	timestamp := time.Now().UnixMilli()

	images := make([]domain.ProductImage, 0, len(fileNames))
	for _, name := range fileNames {
		images = append(images, domain.ProductImage{
			FileName:  name,
			ProductID: productID,
			CreatedAt: timestamp,
			UpdatedAt: timestamp,
		})
	}

	err = r.db.WithContext(ctx).Create(&images).Error
	if err != nil {
		log.Error().Err(err).Str("component", "AddImages").Msg("")
		return errs.ErrInternalServer
	}

	return nil
}

func (r *ProductRepositoryImpl) DeleteImages(ctx context.Context, productID int64, imageIDs []int64) (fileNames []string, err error) {
	if len(imageIDs) == 0 {
		return nil, nil
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var images []domain.ProductImage
		if err := tx.Where("product_id = ? AND id IN ?", productID, imageIDs).Find(&images).Error; err != nil {
			return err
		}
		for _, img := range images {
			fileNames = append(fileNames, img.FileName)
		}

		return tx.Where("product_id = ? AND id IN ?", productID, imageIDs).Delete(&domain.ProductImage{}).Error
	})
	if err != nil {
		log.Error().Err(err).Str("component", "DeleteImages").Msg("")
		return nil, errs.ErrInternalServer
	}

	return fileNames, nil
}

func (r *ProductRepositoryImpl) DeleteAllImages(ctx context.Context, productID int64) (fileNames []string, err error) {
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var images []domain.ProductImage
		if err := tx.Where("product_id = ?", productID).Find(&images).Error; err != nil {
			return err
		}
		for _, img := range images {
			fileNames = append(fileNames, img.FileName)
		}

		return tx.Where("product_id = ?", productID).Delete(&domain.ProductImage{}).Error
	})
	if err != nil {
		log.Error().Err(err).Str("component", "DeleteAllImages").Msg("")
		return nil, errs.ErrInternalServer
	}

	return fileNames, nil
}
