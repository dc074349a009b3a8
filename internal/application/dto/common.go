package dto

// ErrorResponse cuerpo de error HTTP de la consola.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// StatDTO valor de una tarjeta de estadística del dashboard. Cuando la fuente
// falla, Value queda en "N/A" y Available en false; la página se degrada en
// lugar de romperse.
type StatDTO struct {
	Value     string `json:"value"`
	Available bool   `json:"available"`
}

// UnavailableStat devuelve el estado degradado estándar de una tarjeta.
func UnavailableStat() StatDTO {
	return StatDTO{Value: "N/A", Available: false}
}
