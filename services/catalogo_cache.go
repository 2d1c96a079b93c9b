package services

import (
	"sync"
	"time"

	"github.com/CristobalAvalos/Proyecto-Ingeso/models"
)

// cacheTop500 guarda el último ranking calculado por un rato corto,
// para no pegarle dos veces a IGDB por cada filtro de género.
type cacheTop500 struct {
	mu         sync.RWMutex
	juegos     []models.JuegoIGDB
	expiracion time.Time
	ttl        time.Duration
}

func newCacheTop500(ttl time.Duration) *cacheTop500 {
	return &cacheTop500{ttl: ttl}
}

// Get devuelve la lista cacheada, o nil si expiró o nunca se llenó.
func (c *cacheTop500) Get() []models.JuegoIGDB {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.juegos == nil || time.Now().After(c.expiracion) {
		return nil
	}
	return c.juegos
}

func (c *cacheTop500) Set(juegos []models.JuegoIGDB) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.juegos = juegos
	c.expiracion = time.Now().Add(c.ttl)
}

func (c *cacheTop500) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.juegos = nil
}
