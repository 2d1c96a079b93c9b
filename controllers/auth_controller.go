package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/CristobalAvalos/Proyecto-Ingeso/services"
	"github.com/CristobalAvalos/Proyecto-Ingeso/utils"
)

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterInput struct {
	Nombre   string `json:"nombre" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Rol      string `json:"rol"` // opcional, default user
}

// Login valida credenciales y devuelve el token más el usuario.
func Login(usuarios *services.UsuarioService, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		usuario, err := usuarios.ValidarLogin(input.Email, input.Password)
		if err != nil {
			responderError(c, err)
			return
		}

		token, err := utils.GenerateToken(jwtSecret, usuario.ID, usuario.Rol)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo generar el token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Login exitoso",
			"token":   token,
			"user":    usuario,
		})
	}
}

// Register crea una cuenta nueva.
func Register(usuarios *services.UsuarioService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		usuario, err := usuarios.Registrar(input.Nombre, input.Email, input.Password, input.Rol)
		if err != nil {
			responderError(c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "Cuenta creada",
			"user":    usuario,
		})
	}
}
