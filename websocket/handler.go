package websocket

import (
	"log"
	"net/http"
	"strings"

	"github.com/SE-Y3S1-SE-50/GreenStepBackend/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// RewardsHandler upgrades the connection and streams reward events to the
// authenticated client until it disconnects.
func RewardsHandler(c *gin.Context) {
	var tokenString string
	if cookie, err := c.Cookie("token"); err == nil {
		tokenString = cookie
	}
	if tokenString == "" {
		authz := c.GetHeader("Authorization")
		parts := strings.Split(authz, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			tokenString = parts[1]
		}
	}
	if tokenString == "" {
		tokenString = c.Query("token")
	}

	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization token required"})
		return
	}

	claims, err := utils.ValidateToken(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade reward websocket: %v", err)
		return
	}

	client := &RewardClient{Conn: conn, UserID: claims.UserID}
	RegisterRewardClient(client)
	defer UnregisterRewardClient(client)

	// Drain control/client messages; the connection is push-only
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
