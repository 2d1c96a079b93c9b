package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/CristobalAvalos/Proyecto-Ingeso/utils"
)

// AuthMiddleware valida el Bearer token y deja user_id y rol en el context.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Falta el Authorization header"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header no válido"})
			c.Abort()
			return
		}

		claims, err := utils.VerifyToken(jwtSecret, parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token no válido o expirado"})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("rol", claims.Rol)
		c.Next()
	}
}

// SoloAdmin corta si el rol del token no es admin.
func SoloAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		rol, _ := c.Get("rol")
		if rol != "admin" {
			c.JSON(http.StatusForbidden, gin.H{"error": "Solo admin puede acceder"})
			c.Abort()
			return
		}
		c.Next()
	}
}
