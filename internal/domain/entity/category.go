package entity

// Category representa una categoría de productos tal como la expone el backend.
// Los tags JSON siguen el camelCase del API; la consola no añade invariantes propias.
type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
