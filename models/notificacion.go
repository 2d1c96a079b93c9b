package models

import "time"

// NotificacionVenta se manda por websocket al dashboard de admin
// cuando una boleta pasa a pagada.
type NotificacionVenta struct {
	BoletaID   uint      `json:"boleta_id"`
	Codigo     string    `json:"codigo"`
	UsuarioID  uint      `json:"usuario_id"`
	Total      float64   `json:"total"`
	MetodoPago string    `json:"metodo_pago"`
	Fecha      time.Time `json:"fecha"`
}
