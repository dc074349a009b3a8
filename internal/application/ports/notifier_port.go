package ports

// Notifier define el puerto de salida para notificaciones visibles al usuario,
// el equivalente a los toasts de la interfaz. Los errores de acceso al backend
// siempre se notifican; nunca tumban el proceso.
type Notifier interface {
	// Success notifica el resultado exitoso de una operación.
	Success(title, description string)
	// Error notifica un fallo con una descripción legible.
	Error(title, description string)
}

// NopNotifier descarta todas las notificaciones. Útil en tests.
type NopNotifier struct{}

func (NopNotifier) Success(string, string) {}
func (NopNotifier) Error(string, string)   {}
