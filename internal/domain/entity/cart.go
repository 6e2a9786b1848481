package entity

// CartItem es una línea del carrito en el espejo local: referencia al producto,
// cantidad acumulada y un snapshot desnormalizado del producto para poder
// renderizar el carrito aunque el backend no responda.
// Invariante: a lo sumo una línea por ProductID dentro del espejo; Quantity ≥ 1.
type CartItem struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Product   Product `json:"product"`
}

// RemoteCart es el carrito autoritativo del backend (GET /carts/my-cart).
type RemoteCart struct {
	ID    string           `json:"id"`
	Items []RemoteCartItem `json:"items"`
}

// RemoteCartItem línea del carrito remoto; el ID es el del recurso cart-item,
// necesario para PUT/DELETE sobre la línea.
type RemoteCartItem struct {
	ID        string `json:"id"`
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}
