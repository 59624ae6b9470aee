package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/akramov/telepos/internal/core/service"
)

type OrderController struct {
	orderService *service.OrderService
}

type ReceiptResponse struct {
	Text   string  `json:"text"`
	Amount float64 `json:"amount"`
}

type OrderMessageResponse struct {
	Message string `json:"message"`
}

type SubmitResponse struct {
	Message   string `json:"message"`
	Delivered bool   `json:"delivered"`
}

func NewOrderController(orderService *service.OrderService) *OrderController {
	return &OrderController{orderService: orderService}
}

// Checkout formats the receipt and empties the cart.
func (oc *OrderController) Checkout(c *gin.Context) {
	text, amount := oc.orderService.Receipt(c.Request.Context())
	c.JSON(http.StatusOK, ReceiptResponse{Text: text, Amount: amount})
}

func (oc *OrderController) GetMessage(c *gin.Context) {
	c.JSON(http.StatusOK, OrderMessageResponse{Message: oc.orderService.BuildMessage()})
}

// Submit forwards the order text to the configured transport. Delivery
// failure is reported, never returned as an error, so the client can
// still show the composed order.
func (oc *OrderController) Submit(c *gin.Context) {
	message, delivered := oc.orderService.Submit(c.Request.Context())
	c.JSON(http.StatusOK, SubmitResponse{Message: message, Delivered: delivered})
}
