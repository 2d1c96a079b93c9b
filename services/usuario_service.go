package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/CristobalAvalos/Proyecto-Ingeso/models"
)

// UsuarioService maneja registro y login.
type UsuarioService struct {
	db *gorm.DB
}

func NewUsuarioService(db *gorm.DB) *UsuarioService {
	return &UsuarioService{db: db}
}

// ValidarLogin compara las credenciales y devuelve el usuario sin password.
func (s *UsuarioService) ValidarLogin(email, password string) (*models.Usuario, error) {
	var usuario models.Usuario
	if err := s.db.Where("email = ?", email).First(&usuario).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewErrorNoAutorizado("Credenciales incorrectas")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usuario.Password), []byte(password)); err != nil {
		return nil, NewErrorNoAutorizado("Credenciales incorrectas")
	}

	usuario.Password = ""
	return &usuario, nil
}

// Registrar crea un usuario nuevo con la password hasheada.
// Si no viene rol queda como user.
func (s *UsuarioService) Registrar(nombre, email, password, rol string) (*models.Usuario, error) {
	var existente models.Usuario
	if err := s.db.Where("email = ?", email).First(&existente).Error; err == nil {
		return nil, NewErrorValidacion("El email ya está registrado")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	if rol == "" {
		rol = "user"
	}

	usuario := models.Usuario{
		Nombre:   nombre,
		Email:    email,
		Password: string(hash),
		Rol:      rol,
	}

	if err := s.db.Create(&usuario).Error; err != nil {
		return nil, err
	}

	usuario.Password = ""
	return &usuario, nil
}
