package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/CristobalAvalos/Proyecto-Ingeso/models"
)

const igdbTimeout = 10 * time.Second

// ClienteIGDB habla con la API v4 de IGDB. Los endpoints reciben un POST
// con la query como body plano y se autentican con Client-ID + Bearer.
type ClienteIGDB struct {
	BaseURL     string
	ClientID    string
	AccessToken string
	httpClient  *http.Client
}

func NewClienteIGDB(baseURL, clientID, accessToken string) *ClienteIGDB {
	return &ClienteIGDB{
		BaseURL:     strings.TrimRight(baseURL, "/"),
		ClientID:    clientID,
		AccessToken: accessToken,
		httpClient:  &http.Client{Timeout: igdbTimeout},
	}
}

// ConsultarJuegos manda una query al endpoint /games.
func (c *ClienteIGDB) ConsultarJuegos(query string) ([]models.JuegoIGDB, error) {
	var juegos []models.JuegoIGDB
	if err := c.post("/games", query, &juegos); err != nil {
		return nil, err
	}
	return juegos, nil
}

// ConsultarPopularidad manda una query al endpoint /popularity_primitives.
func (c *ClienteIGDB) ConsultarPopularidad(query string) ([]models.PrimitivaPopularidad, error) {
	var primitivas []models.PrimitivaPopularidad
	if err := c.post("/popularity_primitives", query, &primitivas); err != nil {
		return nil, err
	}
	return primitivas, nil
}

func (c *ClienteIGDB) post(endpoint, query string, out interface{}) error {
	url := c.BaseURL + endpoint

	req, err := http.NewRequest(http.MethodPost, url, strings.NewReader(query))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Client-ID", c.ClientID)
	req.Header.Set("Authorization", "Bearer "+c.AccessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// timeout o red caída cuentan como falla del upstream
		return NewErrorUpstream(0, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		log.WithFields(log.Fields{
			"endpoint": endpoint,
			"status":   resp.StatusCode,
		}).Error("❌ IGDB respondió con error")
		return NewErrorUpstream(resp.StatusCode, string(bodyBytes))
	}

	respData, err := io.ReadAll(resp.Body)
	if err != nil {
		return NewErrorUpstream(0, fmt.Sprintf("failed to read response body: %v", err))
	}

	if err := json.Unmarshal(respData, out); err != nil {
		return NewErrorUpstream(0, fmt.Sprintf("failed to unmarshal response: %v", err))
	}

	return nil
}
