package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/akramov/telepos/internal/adapters/http/handlers"
	"github.com/akramov/telepos/internal/core/domain"
	"github.com/akramov/telepos/internal/core/dto"
	"github.com/akramov/telepos/internal/core/service"
	"github.com/akramov/telepos/internal/core/serviceerrors"
)

type CartController struct {
	cartService *service.CartService
}

type CartLineResponse struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  float64 `json:"quantity"`
	LineTotal float64 `json:"line_total"`
}

type CartResponse struct {
	Lines []CartLineResponse `json:"lines"`
	Total float64            `json:"total"`
}

func NewCartLineResponse(line domain.CartLine) CartLineResponse {
	return CartLineResponse{
		ProductID: string(line.ProductID),
		Name:      line.Name,
		Price:     line.Price,
		Quantity:  line.Quantity,
		LineTotal: line.LineTotal(),
	}
}

func NewCartController(cartService *service.CartService) *CartController {
	return &CartController{cartService: cartService}
}

func (cc *CartController) cartResponse() CartResponse {
	return cartStateResponse(cc.cartService)
}

func (cc *CartController) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, cc.cartResponse())
}

func (cc *CartController) AddLine(c *gin.Context) {
	var request dto.AddLineRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewValidationError(err.Error()))
		return
	}

	if _, err := cc.cartService.AddOrIncrement(c.Request.Context(), domain.ID(request.ProductID)); err != nil {
		handlers.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, cc.cartResponse())
}

// Increment bumps a line by one. It works through the cart line alone,
// so it keeps working after the product is removed from the catalog.
func (cc *CartController) Increment(c *gin.Context) {
	if _, err := cc.cartService.Increment(c.Request.Context(), domain.ID(c.Param("id"))); err != nil {
		handlers.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, cc.cartResponse())
}

func (cc *CartController) Decrement(c *gin.Context) {
	if err := cc.cartService.Decrement(c.Request.Context(), domain.ID(c.Param("id"))); err != nil {
		handlers.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, cc.cartResponse())
}

func (cc *CartController) SetQuantity(c *gin.Context) {
	var request dto.SetQuantityRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewValidationError(err.Error()))
		return
	}

	if err := cc.cartService.SetQuantity(c.Request.Context(), domain.ID(c.Param("id")), request.Quantity); err != nil {
		handlers.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, cc.cartResponse())
}

func (cc *CartController) SetPrice(c *gin.Context) {
	var request dto.SetPriceRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewValidationError(err.Error()))
		return
	}

	if err := cc.cartService.SetPrice(c.Request.Context(), domain.ID(c.Param("id")), request.Price); err != nil {
		handlers.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, cc.cartResponse())
}

func (cc *CartController) RemoveLine(c *gin.Context) {
	cc.cartService.Remove(c.Request.Context(), domain.ID(c.Param("id")))
	c.JSON(http.StatusOK, cc.cartResponse())
}

func (cc *CartController) Clear(c *gin.Context) {
	cc.cartService.Clear(c.Request.Context())
	c.Status(http.StatusNoContent)
}
