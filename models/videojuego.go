package models

// Videojuego es la copia local (degradada) de un juego de IGDB.
// La igdb_id es única para poder hacer upsert en la precarga.
type Videojuego struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Nombre      string  `gorm:"type:varchar(255);not null" json:"nombre"`
	Slug        string  `gorm:"type:varchar(255)" json:"slug"`
	Descripcion string  `gorm:"type:text" json:"descripcion"`
	IgdbID      int64   `gorm:"column:igdb_id;uniqueIndex;not null" json:"igdb_id"`
	Precio      float64 `gorm:"type:decimal(10,2)" json:"precio"`
}

func (Videojuego) TableName() string {
	return "videojuegos"
}
