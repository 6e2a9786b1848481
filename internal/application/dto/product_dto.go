package dto

import (
	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada del formulario de creación (POST /products).
// Los montos viajan como decimal; el backend exige categoryId de una categoría existente.
type CreateProductRequest struct {
	Name        string          `json:"name" form:"name"`
	Description string          `json:"description" form:"description"`
	Price       decimal.Decimal `json:"price"`
	Discount    decimal.Decimal `json:"discount"`
	Stock       int             `json:"stock" form:"stock"`
	CategoryID  string          `json:"categoryId" form:"categoryId"`
}

// CategoryOption opción fija del selector de categoría del formulario.
// El backend aún no expone GET /categories, así que el storefront usa las dos
// categorías sembradas.
type CategoryOption struct {
	ID   string
	Name string
}

// CategoryOptions las categorías disponibles en el formulario de creación.
var CategoryOptions = []CategoryOption{
	{ID: "c9920d2b-40e8-4348-8626-f488a2bb6ef8", Name: "electronics"},
	{ID: "69b6e5a3-84c1-4776-a185-3066290dfa2b", Name: "PCs"},
}
