package dto

type AddProductRequest struct {
	Name  string  `json:"name" binding:"required"`
	Price float64 `json:"price" binding:"gte=0"`
}

type ImportResult struct {
	Count int `json:"count"`
}
