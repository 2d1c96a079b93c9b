package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/CristobalAvalos/Proyecto-Ingeso/config"
	"github.com/CristobalAvalos/Proyecto-Ingeso/routes"
	"github.com/CristobalAvalos/Proyecto-Ingeso/services"
	"github.com/CristobalAvalos/Proyecto-Ingeso/ws"
)

func main() {
	cfg := config.Cargar()

	db := config.ConnectDB(cfg)

	igdb := services.NewClienteIGDB(cfg.IGDBBaseURL, cfg.IGDBClientID, cfg.IGDBAccessToken)

	deps := routes.Deps{
		Catalogo:  services.NewCatalogoService(db, igdb),
		Boletas:   services.NewBoletaService(db),
		Usuarios:  services.NewUsuarioService(db),
		JWTSecret: cfg.JWTSecret,
	}

	go ws.HandleVentaMessages()

	r := gin.Default()

	// CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.SetupRoutes(r, deps)

	log.Printf("Server running on port %s\n", cfg.Puerto)
	log.Fatal(r.Run(":" + cfg.Puerto))
}
