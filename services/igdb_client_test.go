package services

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClienteIGDBHeaders(t *testing.T) {
	var gotClientID, gotAuth, gotQuery string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotClientID = r.Header.Get("Client-ID")
		gotAuth = r.Header.Get("Authorization")
		body, _ := io.ReadAll(r.Body)
		gotQuery = string(body)
		fmt.Fprint(w, `[]`)
	}))
	defer srv.Close()

	cliente := NewClienteIGDB(srv.URL, "mi-client-id", "mi-token")

	_, err := cliente.ConsultarJuegos("fields name; limit 5;")
	require.NoError(t, err)

	require.Equal(t, "mi-client-id", gotClientID)
	require.Equal(t, "Bearer mi-token", gotAuth)
	require.Equal(t, "fields name; limit 5;", gotQuery)
}

func TestClienteIGDBStatusNoOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"message": "invalid token"}`)
	}))
	defer srv.Close()

	cliente := NewClienteIGDB(srv.URL, "client", "token-vencido")

	_, err := cliente.ConsultarPopularidad("fields game_id;")
	require.Error(t, err)

	var errUp *ErrorUpstream
	require.ErrorAs(t, err, &errUp)
	require.Equal(t, http.StatusUnauthorized, errUp.Status)
	require.Contains(t, errUp.Mensaje, "invalid token")
}

func TestClienteIGDBUpstreamCaido(t *testing.T) {
	// servidor cerrado = falla de transporte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	cliente := NewClienteIGDB(srv.URL, "client", "token")

	_, err := cliente.ConsultarJuegos("fields name;")
	require.Error(t, err)

	var errUp *ErrorUpstream
	require.ErrorAs(t, err, &errUp)
	require.Zero(t, errUp.Status)
}

func TestClienteIGDBJSONInvalido(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `esto no es json`)
	}))
	defer srv.Close()

	cliente := NewClienteIGDB(srv.URL, "client", "token")

	_, err := cliente.ConsultarJuegos("fields name;")
	require.Error(t, err)

	var errUp *ErrorUpstream
	require.ErrorAs(t, err, &errUp)
}
