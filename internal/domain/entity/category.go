package entity

import (
	"bytes"
	"encoding/json"
)

// CategoryKind discrimina las tres formas en que el backend serializa la categoría
// de un producto: un ID, un nombre plano, o un objeto embebido con campo name.
type CategoryKind int

const (
	CategoryNone CategoryKind = iota
	CategoryID
	CategoryName
	CategoryObject
)

// CategoryRef es la unión etiquetada de las variantes de categoría.
// Se resuelve una sola vez en el borde (UnmarshalJSON); el resto del código
// usa DisplayName y nunca vuelve a inspeccionar la forma del JSON.
type CategoryRef struct {
	Kind CategoryKind
	ID   string
	Name string
}

// categoryObject es la forma embebida {id, name}.
type categoryObject struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// UnmarshalJSON acepta null, string u objeto. Un string que parece UUID se trata
// como ID; cualquier otro string como nombre. Formas inesperadas quedan en
// CategoryNone sin error: la categoría es presentacional, no debe romper el decode
// del producto completo.
func (c *CategoryRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*c = CategoryRef{Kind: CategoryNone}
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*c = CategoryRef{Kind: CategoryNone}
			return nil
		}
		if looksLikeUUID(s) {
			*c = CategoryRef{Kind: CategoryID, ID: s}
		} else {
			*c = CategoryRef{Kind: CategoryName, Name: s}
		}
		return nil
	}
	if data[0] == '{' {
		var obj categoryObject
		if err := json.Unmarshal(data, &obj); err != nil {
			*c = CategoryRef{Kind: CategoryNone}
			return nil
		}
		*c = CategoryRef{Kind: CategoryObject, ID: obj.ID, Name: obj.Name}
		return nil
	}
	*c = CategoryRef{Kind: CategoryNone}
	return nil
}

// MarshalJSON conserva la variante original al serializar (snapshots del espejo local).
func (c CategoryRef) MarshalJSON() ([]byte, error) {
	switch c.Kind {
	case CategoryID:
		return json.Marshal(c.ID)
	case CategoryName:
		return json.Marshal(c.Name)
	case CategoryObject:
		return json.Marshal(categoryObject{ID: c.ID, Name: c.Name})
	default:
		return []byte("null"), nil
	}
}

// DisplayName resuelve el nombre mostrable: objeto → name, nombre plano → el string,
// ID o ausente → cadena vacía (el ID crudo no es un nombre presentable).
func (c CategoryRef) DisplayName() string {
	switch c.Kind {
	case CategoryObject, CategoryName:
		return c.Name
	default:
		return ""
	}
}

// looksLikeUUID detecta el formato 8-4-4-4-12 sin validar la versión.
func looksLikeUUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	for i, r := range s {
		switch i {
		case 8, 13, 18, 23:
			if r != '-' {
				return false
			}
		default:
			isHex := (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
			if !isHex {
				return false
			}
		}
	}
	return true
}
