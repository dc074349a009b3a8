package entity

// Niveles de urgencia que calcula el backend para una alerta de reposición.
const (
	UrgencyLow    = "LOW"
	UrgencyMedium = "MEDIUM"
	UrgencyHigh   = "HIGH"
)

// StockAlert representa una alerta de reposición calculada íntegramente en el
// backend (punto de reorden, stock de seguridad, cantidad sugerida). La consola
// solo la muestra; nunca recalcula estos valores.
type StockAlert struct {
	ProductID         int     `json:"productId"`
	ProductName       string  `json:"productName"`
	CurrentStock      int     `json:"currentStock"`
	ReorderPoint      int     `json:"reorderPoint"`
	SafetyStock       int     `json:"safetyStock"`
	AverageDailySales float64 `json:"averageDailySales"`
	LeadTimeDays      int     `json:"leadTimeDays"`
	SuggestedOrderQty int     `json:"suggestedOrderQty"`
	UrgencyLevel      string  `json:"urgencyLevel"` // LOW, MEDIUM, HIGH
}
