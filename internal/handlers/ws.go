package handlers

import (
	"net/http"

	"issue-tracker/internal/database"
	"issue-tracker/internal/notify"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// toasts are same-origin; the cookie session is the real guard
	CheckOrigin: func(r *http.Request) bool { return true },
}

// AdminSocket subscribes an admin session to the shared admin toast channel.
func AdminSocket(hub *notify.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		subscribe(c, hub, notify.AdminChannel())
	}
}

// EmployeeSocket subscribes an employee session to its own toast channel.
// Accounts without an employee record cannot receive assignments, so the
// upgrade is refused.
func EmployeeSocket(hub *notify.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			c.String(http.StatusUnauthorized, "no session")
			return
		}
		emp := database.EmployeeForUser(database.DB, user.ID)
		if emp == nil {
			c.String(http.StatusNotFound, "no employee record")
			return
		}
		subscribe(c, hub, notify.EmployeeChannel(emp.ID))
	}
}

func subscribe(c *gin.Context, hub *notify.Hub, channel string) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	client := &notify.Client{Channel: channel, Conn: conn}
	hub.Register <- client

	// drain the connection; returning on error lets the hub drop the client
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				hub.Unregister <- client
				return
			}
		}
	}()
}
