package entity

import (
	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo tal como lo expone el backend.
// Price y Discount llegan como decimales; Discount se asume ≤ Price.
// El storefront nunca actualiza ni elimina productos: solo listar, ver detalle y crear.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Discount    decimal.Decimal `json:"discount"`
	Stock       int             `json:"stock"`
	Category    CategoryRef     `json:"category"`
	Image       string          `json:"primaryImage"`
}

// FinalPrice devuelve el precio con el descuento aplicado (nunca negativo).
func (p Product) FinalPrice() decimal.Decimal {
	final := p.Price.Sub(p.Discount)
	if final.IsNegative() {
		return decimal.Zero
	}
	return final
}
