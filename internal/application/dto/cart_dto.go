package dto

// AddCartItemRequest cuerpo de POST /cart-items.
type AddCartItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// UpdateCartItemRequest cuerpo de PUT /cart-items/:id.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}
