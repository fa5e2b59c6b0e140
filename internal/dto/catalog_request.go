package dto

import "github.com/shopspring/decimal"

type ProductRequest struct {
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	IsNew       bool            `json:"is_new"`
	IsFeatured  bool            `json:"is_featured"`
}

type CategoryRequest struct {
	Name string `json:"name"`
}

type GenerateDescriptionRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Keywords string `json:"keywords"`
}
