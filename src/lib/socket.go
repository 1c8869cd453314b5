package lib

import (
	"fmt"
	"log"

	"github.com/zishang520/socket.io/v2/socket"
)

// Process-local live-session channel. Clients join a room keyed by their
// user id after connecting; the registry lives inside the socket.io
// server and is lost on restart, so reconnecting clients re-subscribe.

var socketServer *socket.Server

func GetSocketServer() *socket.Server {
	return socketServer
}

func NewSocketServer(s *socket.Server) *socket.Server {
	socketServer = s
	return socketServer
}

func UserRoom(userID uint) socket.Room {
	return socket.Room(fmt.Sprintf("user:%d", userID))
}

// PushToUser emits an event to every live session subscribed under the
// user's room. At-most-once: with no subscriber the event is dropped.
func PushToUser(userID uint, event string, payload any) {
	if socketServer == nil {
		return
	}
	if err := socketServer.To(UserRoom(userID)).Emit(event, payload); err != nil {
		log.Printf("[socket] Error pushing %s to user %d: %s\n", event, userID, err.Error())
	}
}
