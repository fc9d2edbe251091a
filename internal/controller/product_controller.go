package controller

import (
	"fmt"
	"io"
	"mime/multipart"
	"strconv"

	"github.com/abdulbasset-benz/misskitty-api/internal/dto"
	"github.com/abdulbasset-benz/misskitty-api/internal/service"
	"github.com/abdulbasset-benz/misskitty-api/pkg/errs"
	"github.com/abdulbasset-benz/misskitty-api/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type ProductController struct {
	service service.ProductService
}

func CreateProductController(e *echo.Group, service service.ProductService, adminGuard echo.MiddlewareFunc) {
	c := ProductController{
		service: service,
	}
	e.GET("/products", c.GetProducts)
	e.GET("/products/:id", c.GetProduct)
	e.POST("/products", c.AddProduct, adminGuard)
	e.PUT("/products/:id", c.UpdateProduct, adminGuard)
	e.DELETE("/products/:id", c.DeleteProduct, adminGuard)
}

func (c *ProductController) GetProducts(e echo.Context) error {
	query := dto.CatalogQuery{}
	err := e.Bind(&query)
	if err != nil {
		log.Error().Err(err).Str("component", "GetProducts").Msg("")
	}

	resp, err := c.service.GetProducts(e.Request().Context(), query, baseURL(e))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully retrieved products record", resp)
}

func (c *ProductController) GetProduct(e echo.Context) error {
	id, err := strconv.ParseInt(e.Param("id"), 10, 64)
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	// out-of-range values are clamped, not rejected
	imageIndex, _ := strconv.Atoi(e.QueryParam("image"))

	resp, err := c.service.GetProductDetail(e.Request().Context(), id, imageIndex, baseURL(e))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *ProductController) AddProduct(e echo.Context) error {
	payload := dto.ProductRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddProduct").Msg("")
	}

	uploads, err := readUploads(e)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	resp, err := c.service.AddProduct(e.Request().Context(), payload, uploads, baseURL(e))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "product created", resp)
}

func (c *ProductController) UpdateProduct(e echo.Context) error {
	id, err := strconv.ParseInt(e.Param("id"), 10, 64)
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	payload := dto.ProductRequest{}
	err = e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateProduct").Msg("")
	}
	payload.ID = id

	uploads, err := readUploads(e)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	resp, err := c.service.UpdateProduct(e.Request().Context(), payload, uploads, baseURL(e))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "product updated", resp)
}

func (c *ProductController) DeleteProduct(e echo.Context) error {
	id, err := strconv.ParseInt(e.Param("id"), 10, 64)
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	err = c.service.DeleteProduct(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "product deleted", dto.DeleteResponse{Message: "product deleted"})
}

// readUploads drains the multipart "images" files into memory. Absence of
// the multipart section is not an error here; image count rules live in the
// service.
func readUploads(e echo.Context) ([]dto.Upload, error) {
	form, err := e.MultipartForm()
	if err != nil {
		return nil, nil
	}

	var uploads []dto.Upload
	for _, fh := range form.File["images"] {
		content, err := readFileHeader(fh)
		if err != nil {
			log.Error().Err(err).Str("component", "readUploads").Msg("")
			return nil, errs.ErrClient
		}
		uploads = append(uploads, dto.Upload{FileName: fh.Filename, Content: content})
	}

	return uploads, nil
}

func readFileHeader(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}

func baseURL(e echo.Context) string {
	return fmt.Sprintf("%s://%s", e.Scheme(), e.Request().Host)
}
