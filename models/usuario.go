package models

// Usuario representa la tabla usuario (la misma que usa Neon).
type Usuario struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Nombre   string `gorm:"type:varchar(100)" json:"nombre"`
	Email    string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password string `gorm:"type:varchar(255)" json:"-"`
	Rol      string `gorm:"type:varchar(20);default:'user'" json:"rol"` // 'admin' o 'user'
}

func (Usuario) TableName() string {
	return "usuario"
}
