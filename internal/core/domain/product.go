package domain

import (
	"fmt"
	"math"
	"time"
)

type ID string

type Product struct {
	ID    ID      `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// NewProduct rounds the price to the nearest integer currency unit.
// Catalog prices are whole сум everywhere.
func NewProduct(id ID, name string, price float64) *Product {
	return &Product{
		ID:    id,
		Name:  name,
		Price: math.Round(price),
	}
}

// NewManualID identifies a product added one at a time from the
// management view.
func NewManualID(now time.Time) ID {
	return ID(fmt.Sprintf("manual-%d", now.UnixMilli()))
}

// NewImportID identifies a product created by a spreadsheet import,
// one per row.
func NewImportID(now time.Time, row int) ID {
	return ID(fmt.Sprintf("excel-%d-%d", now.UnixMilli(), row))
}

// ValidProduct reports whether a product may enter the catalog.
func ValidProduct(name string, price float64) bool {
	if name == "" {
		return false
	}
	if math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return false
	}
	return true
}
