package ws

import (
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/CristobalAvalos/Proyecto-Ingeso/models"
)

// ventaClientsMu protege el map: cada conexión se registra y borra desde
// su propia goroutine mientras el loop de broadcast lo recorre.
var ventaClientsMu sync.Mutex
var ventaClients = make(map[*websocket.Conn]bool)
var ventaBroadcast = make(chan models.NotificacionVenta)

var ventaUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// ⚡ Conexión WS del dashboard de admin
func HandleVentasWS(w http.ResponseWriter, r *http.Request) {
	conn, err := ventaUpgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("❌ Ventas WS upgrade error:", err)
		return
	}
	defer conn.Close()

	ventaClientsMu.Lock()
	ventaClients[conn] = true
	ventaClientsMu.Unlock()
	log.Println("✅ Ventas WS conectado")

	for {
		// solo mantenemos la conexión viva; el admin no manda nada
		if _, _, err := conn.ReadMessage(); err != nil {
			log.Println("⚠️ Ventas WS read error:", err)
			ventaClientsMu.Lock()
			delete(ventaClients, conn)
			ventaClientsMu.Unlock()
			break
		}
	}
}

// ⚡ Loop que reparte las notificaciones a todos los admin conectados
func HandleVentaMessages() {
	for {
		noti := <-ventaBroadcast

		ventaClientsMu.Lock()
		for conn := range ventaClients {
			if err := conn.WriteJSON(noti); err != nil {
				log.Println("⚠️ Ventas WS send error:", err)
				conn.Close()
				delete(ventaClients, conn)
			}
		}
		ventaClientsMu.Unlock()
	}
}

// ⚡ Función pública para que el controller avise una venta
func NotificarVenta(noti models.NotificacionVenta) {
	select {
	case ventaBroadcast <- noti:
	default:
		// sin lector del canal no bloqueamos el pago
	}
}
