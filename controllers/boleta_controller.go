package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/CristobalAvalos/Proyecto-Ingeso/models"
	"github.com/CristobalAvalos/Proyecto-Ingeso/services"
	"github.com/CristobalAvalos/Proyecto-Ingeso/ws"
)

type CrearBoletaInput struct {
	UsuarioID uint                   `json:"usuario_id" binding:"required"`
	Items     []services.ItemCarrito `json:"items" binding:"required"`
}

type PagarBoletaInput struct {
	MetodoPago string `json:"metodo_pago" binding:"required"`
}

// CrearBoleta crea una boleta desde el carrito.
func CrearBoleta(boletas *services.BoletaService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CrearBoletaInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		boleta, err := boletas.CrearBoleta(input.UsuarioID, input.Items)
		if err != nil {
			responderError(c, err)
			return
		}

		c.JSON(http.StatusCreated, boleta)
	}
}

// ObtenerBoleta trae una boleta por id.
func ObtenerBoleta(boletas *services.BoletaService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "ID no válido"})
			return
		}

		boleta, err := boletas.ObtenerBoletaPorID(id)
		if err != nil {
			responderError(c, err)
			return
		}
		c.JSON(http.StatusOK, boleta)
	}
}

// ObtenerBoletasUsuario lista las boletas de un usuario.
func ObtenerBoletasUsuario(boletas *services.BoletaService) gin.HandlerFunc {
	return func(c *gin.Context) {
		usuarioID, err := parseID(c.Param("usuarioId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "ID de usuario no válido"})
			return
		}

		lista, err := boletas.ObtenerBoletasPorUsuario(usuarioID)
		if err != nil {
			responderError(c, err)
			return
		}
		c.JSON(http.StatusOK, lista)
	}
}

// ObtenerTodasLasBoletas lista todo (solo admin).
func ObtenerTodasLasBoletas(boletas *services.BoletaService) gin.HandlerFunc {
	return func(c *gin.Context) {
		lista, err := boletas.ObtenerTodas()
		if err != nil {
			responderError(c, err)
			return
		}
		c.JSON(http.StatusOK, lista)
	}
}

// PagarBoleta marca la boleta como pagada y avisa al dashboard por WS.
func PagarBoleta(boletas *services.BoletaService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "ID no válido"})
			return
		}

		var input PagarBoletaInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		boleta, err := boletas.MarcarComoPagada(id, input.MetodoPago)
		if err != nil {
			responderError(c, err)
			return
		}

		ws.NotificarVenta(models.NotificacionVenta{
			BoletaID:   boleta.ID,
			Codigo:     boleta.Codigo,
			UsuarioID:  boleta.UsuarioID,
			Total:      boleta.Total,
			MetodoPago: boleta.MetodoPago,
			Fecha:      time.Now(),
		})

		c.JSON(http.StatusOK, boleta)
	}
}

// CancelarBoleta cancela una boleta pendiente.
func CancelarBoleta(boletas *services.BoletaService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "ID no válido"})
			return
		}

		boleta, err := boletas.Cancelar(id)
		if err != nil {
			responderError(c, err)
			return
		}
		c.JSON(http.StatusOK, boleta)
	}
}

// ObtenerEstadisticas devuelve el resumen de ventas (solo admin).
func ObtenerEstadisticas(boletas *services.BoletaService) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := boletas.ObtenerEstadisticas()
		if err != nil {
			responderError(c, err)
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
