package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/CristobalAvalos/Proyecto-Ingeso/controllers"
	"github.com/CristobalAvalos/Proyecto-Ingeso/middleware"
	"github.com/CristobalAvalos/Proyecto-Ingeso/services"
	"github.com/CristobalAvalos/Proyecto-Ingeso/ws"
)

// Deps junta todo lo que necesitan los handlers.
type Deps struct {
	Catalogo  *services.CatalogoService
	Boletas   *services.BoletaService
	Usuarios  *services.UsuarioService
	JWTSecret string
}

func SetupRoutes(r *gin.Engine, deps Deps) {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// ---------------- AUTH ----------------
	auth := r.Group("/auth")
	{
		auth.POST("/login", controllers.Login(deps.Usuarios, deps.JWTSecret))
		auth.POST("/register", controllers.Register(deps.Usuarios))
	}

	// ---------------- CATALOGO ----------------
	catalogo := r.Group("/catalogo")
	{
		catalogo.GET("", controllers.GetCatalogo(deps.Catalogo))
		catalogo.GET("/top500", controllers.GetTop500(deps.Catalogo))
		catalogo.GET("/genero/:genero", controllers.GetPorGenero(deps.Catalogo))
		catalogo.GET("/detalles/:id", controllers.GetDetalles(deps.Catalogo))

		// la precarga ya no corre al inicio: la dispara el admin
		catalogo.POST("/sincronizar",
			middleware.AuthMiddleware(deps.JWTSecret),
			middleware.SoloAdmin(),
			controllers.SincronizarCatalogo(deps.Catalogo))
	}

	// ---------------- BOLETAS ----------------
	boletas := r.Group("/boletas")
	{
		// estadisticas va antes que :id para que gin no lo confunda
		boletas.GET("/estadisticas",
			middleware.AuthMiddleware(deps.JWTSecret),
			middleware.SoloAdmin(),
			controllers.ObtenerEstadisticas(deps.Boletas))

		boletas.POST("", controllers.CrearBoleta(deps.Boletas))
		boletas.GET("", middleware.AuthMiddleware(deps.JWTSecret), middleware.SoloAdmin(),
			controllers.ObtenerTodasLasBoletas(deps.Boletas))
		boletas.GET("/:id", controllers.ObtenerBoleta(deps.Boletas))
		boletas.GET("/usuario/:usuarioId", controllers.ObtenerBoletasUsuario(deps.Boletas))
		boletas.PATCH("/:id/pagar", controllers.PagarBoleta(deps.Boletas))
		boletas.PATCH("/:id/cancelar", controllers.CancelarBoleta(deps.Boletas))
	}

	// ---------------- WS ADMIN ----------------
	r.GET("/ws/admin", func(c *gin.Context) {
		ws.HandleVentasWS(c.Writer, c.Request)
	})
}
