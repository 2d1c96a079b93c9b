package models

import "time"

// Estados posibles de una boleta.
const (
	EstadoPendiente = "pendiente"
	EstadoPagada    = "pagada"
	EstadoCancelada = "cancelada"
)

// Boleta es la orden de compra generada desde el carrito.
type Boleta struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	Codigo        string     `gorm:"type:varchar(32);uniqueIndex" json:"codigo"`
	UsuarioID     uint       `gorm:"column:usuario_id;not null;index" json:"usuario_id"`
	Usuario       *Usuario   `gorm:"foreignKey:UsuarioID" json:"usuario,omitempty"`
	Total         float64    `gorm:"type:decimal(10,2)" json:"total"`
	Estado        string     `gorm:"type:varchar(20);default:'pendiente'" json:"estado"` // pendiente, pagada, cancelada
	FechaCreacion time.Time  `gorm:"column:fecha_creacion;autoCreateTime" json:"fecha_creacion"`
	FechaPago     *time.Time `gorm:"column:fecha_pago" json:"fecha_pago"`
	MetodoPago    string     `gorm:"column:metodo_pago" json:"metodo_pago"` // tarjeta, paypal, etc.

	Detalles []DetalleBoleta `gorm:"foreignKey:BoletaID;constraint:OnDelete:CASCADE" json:"detalles"`
}

func (Boleta) TableName() string {
	return "boletas"
}

// DetalleBoleta es una línea de la boleta.
// Se guarda el nombre del producto por si el juego se elimina después.
type DetalleBoleta struct {
	ID             uint    `gorm:"primaryKey" json:"id"`
	BoletaID       uint    `gorm:"column:boleta_id;not null;index" json:"boleta_id"`
	VideojuegoID   *uint   `gorm:"column:videojuego_id" json:"videojuego_id"`
	NombreProducto string  `gorm:"column:nombre_producto" json:"nombre_producto"`
	PrecioUnitario float64 `gorm:"column:precio_unitario;type:decimal(10,2)" json:"precio_unitario"`
	Cantidad       int     `gorm:"default:1" json:"cantidad"`
	Subtotal       float64 `gorm:"type:decimal(10,2)" json:"subtotal"`
}

func (DetalleBoleta) TableName() string {
	return "detalles_boleta"
}
