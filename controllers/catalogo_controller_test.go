package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/CristobalAvalos/Proyecto-Ingeso/models"
	"github.com/CristobalAvalos/Proyecto-Ingeso/services"
)

func catalogoDeTest(t *testing.T, status int, primitivas, juegos string) *services.CatalogoService {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if status != http.StatusOK {
			w.WriteHeader(status)
			fmt.Fprint(w, `{"message": "igdb caído"}`)
			return
		}
		if r.URL.Path == "/popularity_primitives" {
			fmt.Fprint(w, primitivas)
			return
		}
		fmt.Fprint(w, juegos)
	}))
	t.Cleanup(srv.Close)

	return services.NewCatalogoService(nil, services.NewClienteIGDB(srv.URL, "client", "token"))
}

func routerDeTest(catalogo *services.CatalogoService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/catalogo/top500", GetTop500(catalogo))
	r.GET("/catalogo/genero/:genero", GetPorGenero(catalogo))
	r.GET("/catalogo/detalles/:id", GetDetalles(catalogo))
	return r
}

func TestGetTop500Handler(t *testing.T) {
	catalogo := catalogoDeTest(t, http.StatusOK,
		`[{"game_id": 1, "value": 12.5, "popularity_type": 1, "external_popularity_source": 1}]`,
		`[{"id": 1, "name": "Juego Uno"}]`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/catalogo/top500", nil)
	routerDeTest(catalogo).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var juegos []models.JuegoIGDB
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &juegos))
	require.Len(t, juegos, 1)
	require.Equal(t, 12.5, juegos[0].PopularityScore)
}

func TestGetTop500HandlerUpstreamCaido(t *testing.T) {
	catalogo := catalogoDeTest(t, http.StatusServiceUnavailable, "", "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/catalogo/top500", nil)
	routerDeTest(catalogo).ServeHTTP(w, req)

	require.Equal(t, http.StatusBadGateway, w.Code)
}

func TestGetPorGeneroHandler(t *testing.T) {
	catalogo := catalogoDeTest(t, http.StatusOK,
		`[{"game_id": 1, "value": 10, "popularity_type": 1, "external_popularity_source": 1},
		  {"game_id": 2, "value": 20, "popularity_type": 1, "external_popularity_source": 1}]`,
		`[{"id": 1, "name": "Uno", "genres": [{"id": 12, "name": "Role-playing (RPG)"}]},
		  {"id": 2, "name": "Dos", "genres": [{"id": 31, "name": "Adventure"}]}]`)

	router := routerDeTest(catalogo)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/catalogo/genero/rpg", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var juegos []models.JuegoIGDB
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &juegos))
	require.Len(t, juegos, 1)
	require.Equal(t, "Uno", juegos[0].Nombre)

	// "todos" devuelve la lista completa
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/catalogo/genero/todos", nil))
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &juegos))
	require.Len(t, juegos, 2)
}

func TestGetDetallesHandlerIDInvalido(t *testing.T) {
	catalogo := catalogoDeTest(t, http.StatusOK, `[]`, `[]`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/catalogo/detalles/abc", nil)
	routerDeTest(catalogo).ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetDetallesHandlerNoEncontrado(t *testing.T) {
	catalogo := catalogoDeTest(t, http.StatusOK, `[]`, `[]`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/catalogo/detalles/999", nil)
	routerDeTest(catalogo).ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
}
