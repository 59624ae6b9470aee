package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/akramov/telepos/internal/adapters/http/handlers"
	"github.com/akramov/telepos/internal/core/domain"
	"github.com/akramov/telepos/internal/core/dto"
	"github.com/akramov/telepos/internal/core/service"
	"github.com/akramov/telepos/internal/core/serviceerrors"
)

type CatalogController struct {
	catalogService *service.CatalogService
	cartService    *service.CartService
}

type ProductResponse struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func NewProductResponse(product domain.Product) ProductResponse {
	return ProductResponse{
		ID:    string(product.ID),
		Name:  product.Name,
		Price: product.Price,
	}
}

func NewCatalogController(catalogService *service.CatalogService, cartService *service.CartService) *CatalogController {
	return &CatalogController{catalogService: catalogService, cartService: cartService}
}

// GetAll lists the catalog, optionally narrowed by the query parameter.
func (cc *CatalogController) GetAll(c *gin.Context) {
	query := c.Query("query")

	var products []domain.Product
	if query != "" {
		products = cc.catalogService.Filter(query)
	} else {
		products = cc.catalogService.All()
	}

	response := make([]ProductResponse, len(products))
	for i, product := range products {
		response[i] = NewProductResponse(product)
	}

	c.JSON(http.StatusOK, response)
}

func (cc *CatalogController) AddProduct(c *gin.Context) {
	var request dto.AddProductRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewValidationError(err.Error()))
		return
	}

	product, err := cc.catalogService.Add(c.Request.Context(), &request)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewProductResponse(*product))
}

// RemoveProduct deletes a catalog entry. Cart lines referencing the
// product are left untouched.
func (cc *CatalogController) RemoveProduct(c *gin.Context) {
	cc.catalogService.Remove(c.Request.Context(), domain.ID(c.Param("id")))
	c.Status(http.StatusNoContent)
}

// ImportFile replaces the catalog from an uploaded xlsx workbook and,
// when the import succeeds, empties the cart since its lines may
// reference products that no longer exist.
func (cc *CatalogController) ImportFile(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		handlers.HandleError(c, serviceerrors.NewValidationError("файл не найден в запросе"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		handlers.HandleError(c, serviceerrors.NewValidationError("не удалось открыть файл"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		handlers.HandleError(c, serviceerrors.NewValidationError("не удалось прочитать файл"))
		return
	}

	count, err := cc.catalogService.ImportFile(c.Request.Context(), data)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	cc.cartService.Clear(c.Request.Context())

	c.JSON(http.StatusOK, dto.ImportResult{Count: count})
}
