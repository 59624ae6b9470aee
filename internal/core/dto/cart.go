package dto

type AddLineRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

type SetQuantityRequest struct {
	Quantity float64 `json:"quantity"`
}

type SetPriceRequest struct {
	Price float64 `json:"price"`
}
