package models

// DTOs de la API de IGDB. Son efímeros: se piden por request y no se
// persisten tal cual (solo Videojuego guarda una copia degradada).

// PrimitivaPopularidad es una señal de popularidad de un juego en una
// fuente externa. Un mismo juego puede aparecer varias veces.
type PrimitivaPopularidad struct {
	GameID         int64   `json:"game_id"`
	Value          float64 `json:"value"`
	PopularityType int     `json:"popularity_type"`
	FuenteExterna  int     `json:"external_popularity_source"`
}

type GeneroRef struct {
	ID     int64  `json:"id"`
	Nombre string `json:"name"`
}

type PlataformaRef struct {
	ID     int64  `json:"id"`
	Nombre string `json:"name"`
}

type ImagenRef struct {
	ID  int64  `json:"id"`
	URL string `json:"url"`
}

type CompaniaRef struct {
	Compania struct {
		Nombre string `json:"name"`
	} `json:"company"`
	Developer bool `json:"developer"`
	Publisher bool `json:"publisher"`
}

type ModoJuegoRef struct {
	ID     int64  `json:"id"`
	Nombre string `json:"name"`
}

// JuegoIGDB es la ficha de un juego tal como la devuelve /games.
// PopularityScore no viene de IGDB: lo agrega el pipeline del top 500.
type JuegoIGDB struct {
	ID                    int64           `json:"id"`
	Nombre                string          `json:"name"`
	Generos               []GeneroRef     `json:"genres,omitempty"`
	Plataformas           []PlataformaRef `json:"platforms,omitempty"`
	TotalRating           float64         `json:"total_rating,omitempty"`
	TotalRatingCount      int             `json:"total_rating_count,omitempty"`
	AggregatedRating      float64         `json:"aggregated_rating,omitempty"`
	AggregatedRatingCnt   int             `json:"aggregated_rating_count,omitempty"`
	Cover                 *ImagenRef      `json:"cover,omitempty"`
	Screenshots           []ImagenRef     `json:"screenshots,omitempty"`
	Artworks              []ImagenRef     `json:"artworks,omitempty"`
	FirstReleaseDate      int64           `json:"first_release_date,omitempty"`
	Summary               string          `json:"summary,omitempty"`
	Storyline             string          `json:"storyline,omitempty"`
	CompaniasInvolucradas []CompaniaRef   `json:"involved_companies,omitempty"`
	ModosJuego            []ModoJuegoRef  `json:"game_modes,omitempty"`

	PopularityScore float64 `json:"popularityScore,omitempty"`
}
