package backend

import (
	"bytes"
	"encoding/json"
)

// Normalize extrae el payload lógico de un sobre de respuesta de forma variable.
// El backend responde a veces {data: {data: [...]}}, a veces {data: [...]} y a
// veces el payload desnudo. Regla, en orden: doble envoltura → el valor más
// interno; envoltura simple → ese valor; si no, el cuerpo tal cual.
//
// Se aplica idéntica a todos los endpoints para que ningún llamador tenga que
// olfatear formas. Nunca falla: ante una forma inesperada devuelve el valor
// literal recibido, y el llamador coacciona a lista vacía cuando necesita lista.
func Normalize(raw []byte) []byte {
	inner, ok := unwrap(raw)
	if !ok {
		return raw
	}
	if innermost, ok := unwrap(inner); ok {
		return innermost
	}
	return inner
}

// unwrap devuelve el campo "data" si raw es un objeto que lo contiene.
func unwrap(raw []byte) ([]byte, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, false
	}
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, false
	}
	data, found := envelope["data"]
	if !found {
		return nil, false
	}
	return data, true
}
