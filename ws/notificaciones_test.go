package ws

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"

	"github.com/CristobalAvalos/Proyecto-Ingeso/models"
)

var arrancarLoop sync.Once

func servidorVentasWS(t *testing.T) string {
	t.Helper()

	arrancarLoop.Do(func() {
		go HandleVentaMessages()
	})

	srv := httptest.NewServer(http.HandlerFunc(HandleVentasWS))
	t.Cleanup(srv.Close)

	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func TestVentasWSRecibeNotificacion(t *testing.T) {
	url := servidorVentasWS(t)

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	// el registro corre en la goroutine del handler, así que se reintenta
	// hasta que la conexión quede inscrita y reciba el broadcast
	listo := make(chan models.NotificacionVenta, 1)
	go func() {
		var noti models.NotificacionVenta
		if err := conn.ReadJSON(&noti); err == nil {
			listo <- noti
		}
	}()

	timeout := time.After(3 * time.Second)
	for {
		NotificarVenta(models.NotificacionVenta{BoletaID: 7, Codigo: "B-7", Total: 24.98})

		select {
		case noti := <-listo:
			require.Equal(t, uint(7), noti.BoletaID)
			require.Equal(t, "B-7", noti.Codigo)
			return
		case <-timeout:
			t.Fatal("el admin nunca recibió la notificación de venta")
		case <-time.After(10 * time.Millisecond):
		}
	}
}

// Conexiones y desconexiones concurrentes mientras se difunden ventas:
// antes esto podía tumbar el proceso por escritura concurrente al map.
func TestVentasWSConexionesConcurrentes(t *testing.T) {
	url := servidorVentasWS(t)

	detener := make(chan struct{})
	var difusor sync.WaitGroup
	difusor.Add(1)
	go func() {
		defer difusor.Done()
		for {
			select {
			case <-detener:
				return
			default:
				NotificarVenta(models.NotificacionVenta{BoletaID: 1, Codigo: "B-1"})
				time.Sleep(time.Millisecond)
			}
		}
	}()

	var clientes sync.WaitGroup
	for i := 0; i < 10; i++ {
		clientes.Add(1)
		go func() {
			defer clientes.Done()

			conn, _, err := websocket.DefaultDialer.Dial(url, nil)
			if err != nil {
				return
			}
			// leer un poco y cortar, para forzar registro y baja del map
			conn.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
			var noti models.NotificacionVenta
			_ = conn.ReadJSON(&noti)
			conn.Close()
		}()
	}

	clientes.Wait()
	close(detener)
	difusor.Wait()
}
