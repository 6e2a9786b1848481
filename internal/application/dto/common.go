package dto

// ErrorResponse cuerpo de error que devuelve el backend REST.
// El adaptador HTTP lo decodifica para extraer Message como texto mostrable.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
