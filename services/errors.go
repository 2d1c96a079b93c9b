package services

import "fmt"

// Tipos de error propios del backend. Los controllers los mapean
// a códigos HTTP (502, 404, 400, 401).

// ErrorUpstream indica que IGDB no respondió o respondió con error.
type ErrorUpstream struct {
	Status  int
	Mensaje string
}

func (e *ErrorUpstream) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("error de IGDB (status %d): %s", e.Status, e.Mensaje)
	}
	return fmt.Sprintf("error de IGDB: %s", e.Mensaje)
}

// ErrorNotFound indica un recurso que no existe (boleta, juego).
type ErrorNotFound struct {
	Recurso string
	ID      string
}

func (e *ErrorNotFound) Error() string {
	return fmt.Sprintf("%s con ID %s no encontrada", e.Recurso, e.ID)
}

// ErrorValidacion indica datos de entrada inválidos (carrito vacío,
// transición de estado no permitida).
type ErrorValidacion struct {
	Mensaje string
}

func (e *ErrorValidacion) Error() string {
	return e.Mensaje
}

// ErrorNoAutorizado indica credenciales incorrectas.
type ErrorNoAutorizado struct {
	Mensaje string
}

func (e *ErrorNoAutorizado) Error() string {
	return e.Mensaje
}

func NewErrorUpstream(status int, mensaje string) error {
	return &ErrorUpstream{Status: status, Mensaje: mensaje}
}

func NewErrorNotFound(recurso, id string) error {
	return &ErrorNotFound{Recurso: recurso, ID: id}
}

func NewErrorValidacion(mensaje string) error {
	return &ErrorValidacion{Mensaje: mensaje}
}

func NewErrorNoAutorizado(mensaje string) error {
	return &ErrorNoAutorizado{Mensaje: mensaje}
}
