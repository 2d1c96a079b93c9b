package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/CristobalAvalos/Proyecto-Ingeso/services"
)

// responderError mapea los errores del servicio a códigos HTTP.
func responderError(c *gin.Context, err error) {
	var errUpstream *services.ErrorUpstream
	var errNotFound *services.ErrorNotFound
	var errValidacion *services.ErrorValidacion
	var errNoAutorizado *services.ErrorNoAutorizado

	switch {
	case errors.As(err, &errUpstream):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	case errors.As(err, &errNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &errValidacion):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &errNoAutorizado):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
