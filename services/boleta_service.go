package services

import (
	"errors"
	"fmt"
	"sort"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/sony/sonyflake"
	"gorm.io/gorm"

	"github.com/CristobalAvalos/Proyecto-Ingeso/models"
)

// ItemCarrito es lo que manda el front al crear la boleta. El id es la
// igdb_id del juego (el carrito trabaja con el catálogo de IGDB).
type ItemCarrito struct {
	ID       int64   `json:"id"`
	Nombre   string  `json:"name"`
	Precio   float64 `json:"price"`
	Cantidad int     `json:"quantity"`
}

// BoletaService maneja las órdenes de compra y sus estadísticas.
type BoletaService struct {
	db    *gorm.DB
	flake *sonyflake.Sonyflake
}

func NewBoletaService(db *gorm.DB) *BoletaService {
	return &BoletaService{
		db:    db,
		flake: sonyflake.NewSonyflake(sonyflake.Settings{}),
	}
}

// CrearBoleta crea la boleta con sus detalles a partir del carrito.
// Todo corre dentro de una transacción: primero la boleta en pendiente,
// después los detalles y al final el total calculado.
func (s *BoletaService) CrearBoleta(usuarioID uint, items []ItemCarrito) (*models.Boleta, error) {
	if len(items) == 0 {
		return nil, NewErrorValidacion("El carrito está vacío")
	}

	detalles, total := ConstruirDetalles(items)

	boleta := models.Boleta{
		Codigo:    s.generarCodigo(),
		UsuarioID: usuarioID,
		Total:     0,
		Estado:    models.EstadoPendiente,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&boleta).Error; err != nil {
			return err
		}

		for i := range detalles {
			detalles[i].BoletaID = boleta.ID

			// buscar la copia local por igdb_id; puede no existir
			var videojuego models.Videojuego
			if err := tx.Where("igdb_id = ?", items[i].ID).First(&videojuego).Error; err == nil {
				id := videojuego.ID
				detalles[i].VideojuegoID = &id
			}
		}

		if err := tx.Create(&detalles).Error; err != nil {
			return err
		}

		// actualizar el total una vez conocidos los detalles
		return tx.Model(&boleta).Update("total", total).Error
	})
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"boleta_id": boleta.ID,
		"codigo":    boleta.Codigo,
		"total":     total,
	}).Info("✅ Boleta creada")

	return s.ObtenerBoletaPorID(boleta.ID)
}

// ObtenerBoletaPorID trae la boleta completa con detalles y usuario.
func (s *BoletaService) ObtenerBoletaPorID(id uint) (*models.Boleta, error) {
	var boleta models.Boleta
	err := s.db.Preload("Detalles").Preload("Usuario").First(&boleta, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NewErrorNotFound("Boleta", fmt.Sprintf("%d", id))
	}
	if err != nil {
		return nil, err
	}
	return &boleta, nil
}

// ObtenerBoletasPorUsuario lista las boletas de un usuario, más nuevas primero.
func (s *BoletaService) ObtenerBoletasPorUsuario(usuarioID uint) ([]models.Boleta, error) {
	var boletas []models.Boleta
	err := s.db.Preload("Detalles").
		Where("usuario_id = ?", usuarioID).
		Order("fecha_creacion DESC").
		Find(&boletas).Error
	if err != nil {
		return nil, err
	}
	return boletas, nil
}

// ObtenerTodas lista todas las boletas (solo admin).
func (s *BoletaService) ObtenerTodas() ([]models.Boleta, error) {
	var boletas []models.Boleta
	err := s.db.Preload("Detalles").Preload("Usuario").
		Order("fecha_creacion DESC").
		Find(&boletas).Error
	if err != nil {
		return nil, err
	}
	return boletas, nil
}

// MarcarComoPagada pasa la boleta a pagada y estampa método y fecha.
// Solo se puede pagar una boleta pendiente.
func (s *BoletaService) MarcarComoPagada(id uint, metodoPago string) (*models.Boleta, error) {
	boleta, err := s.ObtenerBoletaPorID(id)
	if err != nil {
		return nil, err
	}

	if err := ValidarTransicion(boleta.Estado, "pagar"); err != nil {
		return nil, err
	}

	ahora := time.Now()
	boleta.Estado = models.EstadoPagada
	boleta.FechaPago = &ahora
	boleta.MetodoPago = metodoPago

	if err := s.db.Save(boleta).Error; err != nil {
		return nil, err
	}
	return boleta, nil
}

// Cancelar pasa la boleta a cancelada. Igual que el pago, solo desde pendiente.
func (s *BoletaService) Cancelar(id uint) (*models.Boleta, error) {
	boleta, err := s.ObtenerBoletaPorID(id)
	if err != nil {
		return nil, err
	}

	if err := ValidarTransicion(boleta.Estado, "cancelar"); err != nil {
		return nil, err
	}

	boleta.Estado = models.EstadoCancelada
	if err := s.db.Save(boleta).Error; err != nil {
		return nil, err
	}
	return boleta, nil
}

// ObtenerEstadisticas arma el resumen de ventas para el dashboard de admin
// a partir de las boletas pagadas.
func (s *BoletaService) ObtenerEstadisticas() (*Estadisticas, error) {
	var boletas []models.Boleta
	err := s.db.Preload("Detalles").
		Where("estado = ?", models.EstadoPagada).
		Find(&boletas).Error
	if err != nil {
		return nil, err
	}

	stats := CalcularEstadisticas(boletas, time.Now())
	return &stats, nil
}

func (s *BoletaService) generarCodigo() string {
	if s.flake != nil {
		if id, err := s.flake.NextID(); err == nil {
			return fmt.Sprintf("B-%d", id)
		}
	}
	// sonyflake puede no inicializar sin IP privada; mejor un código igual
	return fmt.Sprintf("B-%d", time.Now().UnixNano())
}

// ValidarTransicion chequea la máquina de estados de la boleta: pagada y
// cancelada son terminales, solo una pendiente puede cambiar de estado.
func ValidarTransicion(estado, accion string) error {
	if estado != models.EstadoPendiente {
		return NewErrorValidacion(fmt.Sprintf("La boleta está %s, no se puede %s", estado, accion))
	}
	return nil
}

// ConstruirDetalles calcula las líneas y el total del carrito.
// Cantidad por defecto es 1 y precio faltante cuenta como 0.
func ConstruirDetalles(items []ItemCarrito) ([]models.DetalleBoleta, float64) {
	detalles := make([]models.DetalleBoleta, 0, len(items))
	total := 0.0

	for _, item := range items {
		cantidad := item.Cantidad
		if cantidad <= 0 {
			cantidad = 1
		}

		subtotal := item.Precio * float64(cantidad)

		detalles = append(detalles, models.DetalleBoleta{
			NombreProducto: item.Nombre,
			PrecioUnitario: item.Precio,
			Cantidad:       cantidad,
			Subtotal:       subtotal,
		})
		total += subtotal
	}

	return detalles, total
}

// VentaJuego acumula cantidad e ingresos por juego vendido.
type VentaJuego struct {
	Nombre   string  `json:"nombre"`
	Cantidad int     `json:"cantidad"`
	Ingresos float64 `json:"ingresos"`
}

// VentaMes es el total vendido en un mes calendario.
type VentaMes struct {
	Mes   string  `json:"mes"`
	Total float64 `json:"total"`
}

// Estadisticas es la respuesta del dashboard de admin.
type Estadisticas struct {
	TotalVentas     float64      `json:"totalVentas"`
	CantidadBoletas int          `json:"cantidadBoletas"`
	VentasPorMes    []VentaMes   `json:"ventasPorMes"`
	TopJuegos       []VentaJuego `json:"topJuegos"`
}

var mesesCortos = [12]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sept", "oct", "nov", "dic"}

func etiquetaMes(t time.Time) string {
	return fmt.Sprintf("%s %d", mesesCortos[t.Month()-1], t.Year())
}

// CalcularEstadisticas agrega las boletas pagadas: total de ventas, ventas
// de los últimos 6 meses calendario (con meses en cero incluidos) y el top
// 5 de juegos por cantidad vendida.
func CalcularEstadisticas(boletas []models.Boleta, ahora time.Time) Estadisticas {
	totalVentas := 0.0
	for _, boleta := range boletas {
		totalVentas += boleta.Total
	}

	// Ventas por juego
	ventasPorJuego := make(map[string]*VentaJuego)
	for _, boleta := range boletas {
		for _, detalle := range boleta.Detalles {
			venta, ok := ventasPorJuego[detalle.NombreProducto]
			if !ok {
				venta = &VentaJuego{Nombre: detalle.NombreProducto}
				ventasPorJuego[detalle.NombreProducto] = venta
			}
			venta.Cantidad += detalle.Cantidad
			venta.Ingresos += detalle.Subtotal
		}
	}

	// Últimos 6 meses, con cero para los meses sin ventas
	ventasPorMes := make([]VentaMes, 0, 6)
	indiceMes := make(map[string]int, 6)
	for i := 5; i >= 0; i-- {
		fecha := time.Date(ahora.Year(), ahora.Month(), 1, 0, 0, 0, 0, ahora.Location()).AddDate(0, -i, 0)
		etiqueta := etiquetaMes(fecha)
		indiceMes[etiqueta] = len(ventasPorMes)
		ventasPorMes = append(ventasPorMes, VentaMes{Mes: etiqueta})
	}

	for _, boleta := range boletas {
		etiqueta := etiquetaMes(boleta.FechaCreacion)
		if idx, ok := indiceMes[etiqueta]; ok {
			ventasPorMes[idx].Total += boleta.Total
		}
	}

	// Top 5 por cantidad vendida
	topJuegos := make([]VentaJuego, 0, len(ventasPorJuego))
	for _, venta := range ventasPorJuego {
		topJuegos = append(topJuegos, *venta)
	}
	sort.Slice(topJuegos, func(a, b int) bool {
		if topJuegos[a].Cantidad != topJuegos[b].Cantidad {
			return topJuegos[a].Cantidad > topJuegos[b].Cantidad
		}
		return topJuegos[a].Nombre < topJuegos[b].Nombre
	})
	if len(topJuegos) > 5 {
		topJuegos = topJuegos[:5]
	}

	return Estadisticas{
		TotalVentas:     totalVentas,
		CantidadBoletas: len(boletas),
		VentasPorMes:    ventasPorMes,
		TopJuegos:       topJuegos,
	}
}
