package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/CristobalAvalos/Proyecto-Ingeso/services"
)

// GetCatalogo devuelve el catálogo precargado desde la DB.
func GetCatalogo(catalogo *services.CatalogoService) gin.HandlerFunc {
	return func(c *gin.Context) {
		videojuegos, err := catalogo.ObtenerCatalogo()
		if err != nil {
			responderError(c, err)
			return
		}
		c.JSON(http.StatusOK, videojuegos)
	}
}

// GetTop500 devuelve el ranking de popularidad armado desde IGDB.
func GetTop500(catalogo *services.CatalogoService) gin.HandlerFunc {
	return func(c *gin.Context) {
		juegos, err := catalogo.ObtenerTop500()
		if err != nil {
			responderError(c, err)
			return
		}
		c.JSON(http.StatusOK, juegos)
	}
}

// GetPorGenero filtra el top 500 por género ("todos" = sin filtro).
func GetPorGenero(catalogo *services.CatalogoService) gin.HandlerFunc {
	return func(c *gin.Context) {
		genero := c.Param("genero")

		juegos, err := catalogo.ObtenerPorGenero(genero)
		if err != nil {
			responderError(c, err)
			return
		}
		c.JSON(http.StatusOK, juegos)
	}
}

// GetDetalles trae la ficha extendida de un juego por su id de IGDB.
func GetDetalles(catalogo *services.CatalogoService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "ID de juego inválido"})
			return
		}

		juego, err := catalogo.ObtenerDetallesJuego(id)
		if err != nil {
			responderError(c, err)
			return
		}
		if juego == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Juego no encontrado"})
			return
		}

		c.JSON(http.StatusOK, juego)
	}
}

// SincronizarCatalogo dispara la precarga del catálogo local (solo admin).
func SincronizarCatalogo(catalogo *services.CatalogoService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cantidad, err := catalogo.PrecargarCatalogo()
		if err != nil {
			responderError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":  "Catálogo sincronizado",
			"cantidad": cantidad,
		})
	}
}
