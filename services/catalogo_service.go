package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/gosimple/slug"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/CristobalAvalos/Proyecto-Ingeso/models"
)

const (
	top500Limite = 500
	top500TTL    = 5 * time.Minute

	// Valores por defecto para la copia local (el precio real se maneja
	// en el front por ahora).
	descripcionPendiente = "Descripción pendiente de IGDB"
)

// Queries en el lenguaje de IGDB. Se mandan tal cual como body del POST.
const (
	queryPrecarga = `fields name, game_type, genres.name, platforms.name, total_rating, total_rating_count, screenshots.url, artworks.url, cover.url, first_release_date, aggregated_rating, aggregated_rating_count;
	where category = (0,8,9,10)
	& cover != null
	& platforms = [130];
	limit 500;`

	queryPopularidad = "fields game_id, value, popularity_type, external_popularity_source; sort value desc; limit %d;"

	queryJuegosPorID = "fields name, genres.name, platforms.name, total_rating, total_rating_count, cover.url, first_release_date, aggregated_rating, aggregated_rating_count; where id = (%s); limit %d;"

	queryDetalles = "fields name, summary, storyline, genres.name, platforms.name, game_modes.name, involved_companies.company.name, involved_companies.developer, involved_companies.publisher, total_rating, total_rating_count, cover.url, screenshots.url, artworks.url, first_release_date; where id = %d;"
)

// CatalogoService arma el catálogo desde IGDB y mantiene la copia local.
type CatalogoService struct {
	db    *gorm.DB
	igdb  *ClienteIGDB
	cache *cacheTop500
}

func NewCatalogoService(db *gorm.DB, igdb *ClienteIGDB) *CatalogoService {
	return &CatalogoService{
		db:    db,
		igdb:  igdb,
		cache: newCacheTop500(top500TTL),
	}
}

// ObtenerTop500 devuelve los juegos más populares según las popularity
// primitives de IGDB, ordenados de mayor a menor puntaje. El resultado se
// cachea un rato para que los filtros por género no repitan las dos
// llamadas al upstream.
func (s *CatalogoService) ObtenerTop500() ([]models.JuegoIGDB, error) {
	if cacheados := s.cache.Get(); cacheados != nil {
		return cacheados, nil
	}

	juegos, err := s.calcularTop500(top500Limite)
	if err != nil {
		return nil, err
	}

	s.cache.Set(juegos)
	return juegos, nil
}

func (s *CatalogoService) calcularTop500(limite int) ([]models.JuegoIGDB, error) {
	log.Info("=== Iniciando Top 500 Más Populares con Popularity Primitives ===")

	// Paso 1: señales de popularidad, ya ordenadas desc por el upstream
	primitivas, err := s.igdb.ConsultarPopularidad(fmt.Sprintf(queryPopularidad, limite))
	if err != nil {
		return nil, err
	}
	log.WithField("cantidad", len(primitivas)).Info("Popularity primitives obtenidas")

	// Paso 2: agrupar por game_id y sumar valores
	puntajes, orden := SumarPopularidad(primitivas)

	// Paso 3: ordenar por popularidad total y quedarse con el top
	topIDs := RankearPorPuntaje(puntajes, orden, limite)
	if len(topIDs) == 0 {
		// sin ids no hay segunda query que hacer
		return []models.JuegoIGDB{}, nil
	}

	// Paso 4: ficha completa de esos juegos
	idsStr := make([]string, len(topIDs))
	for i, id := range topIDs {
		idsStr[i] = fmt.Sprintf("%d", id)
	}
	juegos, err := s.igdb.ConsultarJuegos(fmt.Sprintf(queryJuegosPorID, strings.Join(idsStr, ","), limite))
	if err != nil {
		return nil, err
	}
	log.WithField("cantidad", len(juegos)).Info("Juegos encontrados")

	// Paso 5: pegar el puntaje y normalizar la portada
	for i := range juegos {
		juegos[i].PopularityScore = puntajes[juegos[i].ID]
		if juegos[i].Cover != nil {
			juegos[i].Cover.URL = NormalizarImagen(juegos[i].Cover.URL, "t_cover_big")
		}
	}

	// Paso 6: reordenar, porque IGDB no respeta el orden del filtro de ids
	sort.SliceStable(juegos, func(a, b int) bool {
		return juegos[a].PopularityScore > juegos[b].PopularityScore
	})

	log.WithField("total", len(juegos)).Info("✅ Top 500 final")
	return juegos, nil
}

// ObtenerPorGenero filtra el top 500 por nombre de género. "todos" (o
// vacío) devuelve la lista completa. El match es por substring, sin
// distinguir mayúsculas: "action" matchea "Hack and slash, Action".
func (s *CatalogoService) ObtenerPorGenero(genero string) ([]models.JuegoIGDB, error) {
	todos, err := s.ObtenerTop500()
	if err != nil {
		return nil, err
	}

	return FiltrarPorGenero(todos, genero), nil
}

// ObtenerDetallesJuego trae la ficha extendida de un juego directo de IGDB.
// Devuelve nil si el juego no existe.
func (s *CatalogoService) ObtenerDetallesJuego(id int64) (*models.JuegoIGDB, error) {
	juegos, err := s.igdb.ConsultarJuegos(fmt.Sprintf(queryDetalles, id))
	if err != nil {
		return nil, err
	}
	if len(juegos) == 0 {
		return nil, nil
	}

	juego := juegos[0]
	if juego.Cover != nil {
		juego.Cover.URL = NormalizarImagen(juego.Cover.URL, "t_cover_big")
	}
	for i := range juego.Screenshots {
		juego.Screenshots[i].URL = NormalizarImagen(juego.Screenshots[i].URL, "t_screenshot_big")
	}

	return &juego, nil
}

// PrecargarCatalogo baja el catálogo base de IGDB y lo guarda en la DB.
// Antes esto corría solo al levantar el proceso; ahora se dispara desde
// el endpoint de sincronización para controlar cuándo pasa.
func (s *CatalogoService) PrecargarCatalogo() (int, error) {
	log.Info("⏳ Iniciando precarga de datos de IGDB...")

	juegos, err := s.igdb.ConsultarJuegos(queryPrecarga)
	if err != nil {
		return 0, err
	}

	if len(juegos) == 0 {
		log.Warn("⚠️ La precarga no devolvió juegos")
		return 0, nil
	}

	if err := s.guardarJuegos(juegos); err != nil {
		return 0, err
	}
	log.WithField("cantidad", len(juegos)).Info("✅ Juegos de IGDB guardados/actualizados en la base de datos")

	var total int64
	if err := s.db.Model(&models.Videojuego{}).Count(&total).Error; err == nil {
		log.WithField("total", total).Info("📊 PRECARGA FINALIZADA")
	}

	return len(juegos), nil
}

// guardarJuegos hace upsert por igdb_id. Descripción y precio quedan con
// valores por defecto solo en las filas nuevas.
func (s *CatalogoService) guardarJuegos(juegos []models.JuegoIGDB) error {
	entidades := make([]models.Videojuego, 0, len(juegos))
	for _, juego := range juegos {
		entidades = append(entidades, models.Videojuego{
			Nombre:      juego.Nombre,
			Slug:        slug.Make(juego.Nombre),
			IgdbID:      juego.ID,
			Descripcion: descripcionPendiente,
			Precio:      0.00,
		})
	}

	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "igdb_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"nombre", "slug"}),
	}).Create(&entidades).Error
}

// ObtenerCatalogo lee el catálogo ya precargado desde la DB.
func (s *CatalogoService) ObtenerCatalogo() ([]models.Videojuego, error) {
	var videojuegos []models.Videojuego
	if err := s.db.Find(&videojuegos).Error; err != nil {
		return nil, err
	}
	return videojuegos, nil
}

// SumarPopularidad agrupa las primitivas por game_id y suma sus valores.
// Devuelve además el orden de primera aparición, para que el ranking sea
// estable cuando hay empates.
func SumarPopularidad(primitivas []models.PrimitivaPopularidad) (map[int64]float64, []int64) {
	puntajes := make(map[int64]float64, len(primitivas))
	orden := make([]int64, 0, len(primitivas))

	for _, p := range primitivas {
		if _, visto := puntajes[p.GameID]; !visto {
			orden = append(orden, p.GameID)
		}
		puntajes[p.GameID] += p.Value
	}

	return puntajes, orden
}

// RankearPorPuntaje ordena los ids de mayor a menor puntaje y corta en el
// límite pedido.
func RankearPorPuntaje(puntajes map[int64]float64, orden []int64, limite int) []int64 {
	ids := make([]int64, len(orden))
	copy(ids, orden)

	sort.SliceStable(ids, func(a, b int) bool {
		return puntajes[ids[a]] > puntajes[ids[b]]
	})

	if len(ids) > limite {
		ids = ids[:limite]
	}
	return ids
}

// FiltrarPorGenero deja solo los juegos con algún género que contenga el
// texto pedido. "todos" o vacío es el sentinel de "sin filtro".
func FiltrarPorGenero(juegos []models.JuegoIGDB, genero string) []models.JuegoIGDB {
	if genero == "" || strings.EqualFold(genero, "todos") {
		return juegos
	}

	buscado := strings.ToLower(genero)
	filtrados := make([]models.JuegoIGDB, 0)
	for _, juego := range juegos {
		for _, g := range juego.Generos {
			if strings.Contains(strings.ToLower(g.Nombre), buscado) {
				filtrados = append(filtrados, juego)
				break
			}
		}
	}
	return filtrados
}

// NormalizarImagen cambia el tamaño del thumbnail de IGDB y antepone el
// esquema (las urls vienen como //images.igdb.com/...).
func NormalizarImagen(url, tamano string) string {
	normalizada := strings.Replace(url, "t_thumb", tamano, 1)
	if strings.HasPrefix(normalizada, "//") {
		normalizada = "https:" + normalizada
	}
	return normalizada
}
