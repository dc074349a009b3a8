package entity

// Customer representa un cliente registrado en el backend.
type Customer struct {
	ID           int    `json:"id"`
	CustomerName string `json:"customerName"`
	PhoneNumber  string `json:"phoneNumber"`
	Email        string `json:"email"`
	Address      string `json:"address"`
}
