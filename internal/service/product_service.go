package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/abdulbasset-benz/misskitty-api/internal/catalog"
	"github.com/abdulbasset-benz/misskitty-api/internal/domain"
	"github.com/abdulbasset-benz/misskitty-api/internal/dto"
	"github.com/abdulbasset-benz/misskitty-api/internal/imaging"
	"github.com/abdulbasset-benz/misskitty-api/internal/infrastructure/storage"
	"github.com/abdulbasset-benz/misskitty-api/internal/repository"
	"github.com/abdulbasset-benz/misskitty-api/pkg/errs"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"
)

const maxImagesPerProduct = 5

type ProductServiceImpl struct {
	repo  repository.ProductRepository
	store storage.FileStore
}

func CreateNewProductService(repo repository.ProductRepository, store storage.FileStore) ProductService {
	return &ProductServiceImpl{repo: repo, store: store}
}

func (s *ProductServiceImpl) AddProduct(ctx context.Context, payload dto.ProductRequest, uploads []dto.Upload, baseURL string) (resp dto.ProductResponse, err error) {
	if strings.TrimSpace(payload.Name) == "" {
		return resp, errs.ErrClient
	}

	price, err := parsePrice(payload.Price)
	if err != nil {
		return resp, err
	}

	stock, err := parseStock(payload.Stock)
	if err != nil {
		return resp, err
	}

	sizes, err := parseLabels(payload.Sizes)
	if err != nil {
		return resp, err
	}

	colors, err := parseLabels(payload.Colors)
	if err != nil {
		return resp, err
	}

	if len(uploads) == 0 {
		return resp, errs.ErrNoImages
	}
	if len(uploads) > maxImagesPerProduct {
		return resp, errs.ErrTooManyImages
	}

	fileNames, err := s.storeUploads(uploads)
	if err != nil {
		return resp, err
	}

	product := domain.Product{
		Name:        payload.Name,
		Description: payload.Description,
		Price:       price,
		Stock:       stock,
		Sizes:       domain.EncodeLabels(sizes),
		Colors:      domain.EncodeLabels(colors),
	}
	for _, name := range fileNames {
		product.Images = append(product.Images, domain.ProductImage{FileName: name})
	}

	id, err := s.repo.AddProduct(ctx, product)
	if err != nil {
		s.removeFiles(fileNames)
		return resp, err
	}

	return s.GetProductByID(ctx, id, baseURL)
}

func (s *ProductServiceImpl) GetProducts(ctx context.Context, query dto.CatalogQuery, baseURL string) (resp []dto.ProductResponse, err error) {
	data, err := s.repo.GetProducts(ctx)
	if err != nil {
		return nil, err
	}

	resp = make([]dto.ProductResponse, 0, len(data))
	for _, p := range data {
		resp = append(resp, mapProduct(p, baseURL))
	}

	resp = catalog.Apply(resp, catalog.Filter{
		MinPrice:   query.MinPrice,
		MaxPrice:   query.MaxPrice,
		Sizes:      query.Sizes,
		Colors:     query.Colors,
		InStock:    query.InStock,
		OutOfStock: query.OutOfStock,
	})

	return catalog.Sort(resp, query.Sort), nil
}

func (s *ProductServiceImpl) GetProductByID(ctx context.Context, id int64, baseURL string) (resp dto.ProductResponse, err error) {
	data, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return resp, err
	}

	if data.ID == 0 {
		return resp, errs.ErrNotFound
	}

	return mapProduct(data, baseURL), nil
}

// GetProductDetail assembles the detail-page view: unknown products are a
// terminal not-found, option lists fall back to the standard defaults, and
// the requested image index is clamped onto the current image set.
func (s *ProductServiceImpl) GetProductDetail(ctx context.Context, id int64, imageIndex int, baseURL string) (resp dto.ProductDetailResponse, err error) {
	product, err := s.GetProductByID(ctx, id, baseURL)
	if err != nil {
		return resp, err
	}

	resp.ProductResponse = product
	resp.AvailableSizes = catalog.EffectiveSizes(product)
	resp.AvailableColors = catalog.EffectiveColors(product)
	resp.SelectedImage = catalog.ClampImageIndex(product, imageIndex)

	return resp, nil
}

func (s *ProductServiceImpl) UpdateProduct(ctx context.Context, payload dto.ProductRequest, uploads []dto.Upload, baseURL string) (resp dto.ProductResponse, err error) {
	product, err := s.repo.GetProductByID(ctx, payload.ID)
	if err != nil {
		return resp, err
	}
	if product.ID == 0 {
		return resp, errs.ErrNotFound
	}

	if payload.Name != "" {
		product.Name = payload.Name
	}
	if payload.Description != "" {
		product.Description = payload.Description
	}
	if payload.Price != "" {
		product.Price, err = parsePrice(payload.Price)
		if err != nil {
			return resp, err
		}
	}
	if payload.Stock != "" {
		product.Stock, err = parseStock(payload.Stock)
		if err != nil {
			return resp, err
		}
	}

	// sizes and colors are replaced wholesale, never merged
	if payload.Sizes != "" {
		sizes, err := parseLabels(payload.Sizes)
		if err != nil {
			return resp, err
		}
		product.Sizes = domain.EncodeLabels(sizes)
	}
	if payload.Colors != "" {
		colors, err := parseLabels(payload.Colors)
		if err != nil {
			return resp, err
		}
		product.Colors = domain.EncodeLabels(colors)
	}

	if len(uploads) > maxImagesPerProduct {
		return resp, errs.ErrTooManyImages
	}

	removedIDs, err := parseImageIDs(payload.RemovedImageIDs)
	if err != nil {
		return resp, err
	}
	if len(removedIDs) > 0 {
		removed, err := s.repo.DeleteImages(ctx, product.ID, removedIDs)
		if err != nil {
			return resp, err
		}
		s.removeFiles(removed)
	}

	// supplying new files replaces the whole image set
	if len(uploads) > 0 {
		fileNames, err := s.storeUploads(uploads)
		if err != nil {
			return resp, err
		}

		prior, err := s.repo.DeleteAllImages(ctx, product.ID)
		if err != nil {
			s.removeFiles(fileNames)
			return resp, err
		}
		s.removeFiles(prior)

		if err := s.repo.AddImages(ctx, product.ID, fileNames); err != nil {
			s.removeFiles(fileNames)
			return resp, err
		}
	}

	product.Images = nil
	if err := s.repo.UpdateProduct(ctx, product); err != nil {
		return resp, err
	}

	return s.GetProductByID(ctx, product.ID, baseURL)
}

func (s *ProductServiceImpl) DeleteProduct(ctx context.Context, id int64) (err error) {
	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return err
	}
	if product.ID == 0 {
		return errs.ErrNotFound
	}

	fileNames, err := s.repo.DeleteProduct(ctx, id)
	if err != nil {
		return err
	}

	s.removeFiles(fileNames)

	return nil
}

func (s *ProductServiceImpl) storeUploads(uploads []dto.Upload) (fileNames []string, err error) {
	processed := make([][]byte, 0, len(uploads))
	for _, u := range uploads {
		data, err := imaging.Process(bytes.NewReader(u.Content))
		if err != nil {
			log.Error().Err(err).Str("component", "storeUploads").Str("file", u.FileName).Msg("")
			return nil, errs.ErrNotAnImage
		}
		processed = append(processed, data)
	}

	for _, data := range processed {
		name := ulid.Make().String() + ".jpg"
		if err := s.store.Save(name, data); err != nil {
			s.removeFiles(fileNames)
			return nil, errs.ErrInternalServer
		}
		fileNames = append(fileNames, name)
	}

	return fileNames, nil
}

func (s *ProductServiceImpl) removeFiles(fileNames []string) {
	for _, name := range fileNames {
		if err := s.store.Remove(name); err != nil {
			log.Error().Err(err).Str("component", "removeFiles").Str("file", name).Msg("")
		}
	}
}

func mapProduct(p domain.Product, baseURL string) dto.ProductResponse {
	resp := dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		Sizes:       p.SizeList(),
		Colors:      p.ColorList(),
		Images:      make([]dto.ProductImageResponse, 0, len(p.Images)),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}

	for _, img := range p.Images {
		resp.Images = append(resp.Images, dto.ProductImageResponse{
			ID:       img.ID,
			FileName: img.FileName,
			URL:      fmt.Sprintf("%s/uploads/%s", baseURL, img.FileName),
		})
	}

	return resp
}

func parsePrice(raw string) (int64, error) {
	if raw == "" {
		return 0, errs.ErrClient
	}
	price, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || price < 0 {
		return 0, errs.ErrClient
	}
	return price, nil
}

func parseStock(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	stock, err := strconv.Atoi(raw)
	if err != nil || stock < 0 {
		return 0, errs.ErrClient
	}
	return stock, nil
}

// parseLabels decodes a JSON-encoded string array; labels arrive in exactly
// that format, there is no comma-separated fallback.
func parseLabels(raw string) ([]string, error) {
	if raw == "" {
		return nil, nil
	}
	var labels []string
	if err := json.Unmarshal([]byte(raw), &labels); err != nil {
		return nil, errs.ErrClient
	}
	return labels, nil
}

func parseImageIDs(raw string) ([]int64, error) {
	if raw == "" {
		return nil, nil
	}
	var ids []int64
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, errs.ErrClient
	}
	return ids, nil
}
