package config

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/CristobalAvalos/Proyecto-Ingeso/models"
)

// ConnectDB abre la conexión a Postgres y migra las tablas.
func ConnectDB(cfg Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatal("❌ Failed to connect DB:", err)
	}

	// ✅ Auto migrate las tablas
	err = db.AutoMigrate(
		&models.Usuario{},
		&models.Videojuego{},
		&models.Boleta{},
		&models.DetalleBoleta{},
	)
	if err != nil {
		log.Fatal("❌ Auto migration failed:", err)
	}

	log.Println("✅ Connected to PostgreSQL DB and Migrated!")

	// Connection pool
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("No se pudo obtener el objeto database: %v", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	return db
}
