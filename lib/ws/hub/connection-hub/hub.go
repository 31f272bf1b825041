package connectionhub

import (
	"sync"

	"github.com/gofiber/contrib/websocket"
	log "github.com/sirupsen/logrus"

	"hotel-ops-backend/db"
	notificationstore "hotel-ops-backend/lib/notification/store"
	wsmodels "hotel-ops-backend/models/ws"
)

type Provider interface {
	AddClient(propertyID, userID string, conn *websocket.Conn)
	DeleteClient(userID string)
	SendMessage(msg wsmodels.ServerMessage)
	SendClose(userID string)
	IsConnected(userID string) bool
}

var Instance Provider

func Init() {
	Instance = &impl{
		clients: map[string]clientSession{},
		store:   notificationstore.NewInstance(db.DB),
	}
}

type impl struct {
	mx      sync.RWMutex
	clients map[string]clientSession //map[userID]
	store   notificationstore.Provider
}

func (i *impl) DeleteClient(userID string) {
	i.mx.Lock()
	defer i.mx.Unlock()
	sess, ok := i.clients[userID]
	if !ok {
		return
	}
	delete(i.clients, userID)
	sess.stop()
	close(sess.sendCh)
}

func (i *impl) AddClient(propertyID, userID string, conn *websocket.Conn) {
	i.mx.Lock()
	oldSess, ok := i.clients[userID]
	if ok {
		oldSess.stop()
	}
	i.clients[userID] = newSession(conn)
	i.mx.Unlock()
	go i.sendUnread(propertyID, userID)
}

func (i *impl) SendMessage(msg wsmodels.ServerMessage) {
	i.mx.RLock()
	sess, ok := i.clients[msg.ToUserID]
	i.mx.RUnlock()
	if ok {
		sess.sendCh <- msg
	}
}

func (i *impl) SendClose(userID string) {
	i.mx.RLock()
	sess, ok := i.clients[userID]
	i.mx.RUnlock()
	if ok {
		sess.stop()
	}
}

func (i *impl) IsConnected(userID string) bool {
	i.mx.RLock()
	defer i.mx.RUnlock()
	sess, ok := i.clients[userID]
	if !ok || sess.conn == nil || sess.conn.Conn == nil {
		return false
	}
	return true
}

// sendUnread replays the stored unread notifications to a freshly connected
// client. Records stay unread until the client acknowledges them over the
// REST api.
func (i *impl) sendUnread(propertyID, userID string) {
	logger := log.WithField("user_id", userID)
	list, err := i.store.List(propertyID, userID, true)
	if err != nil {
		logger.WithError(err).Error("failed to load unread notifications")
		return
	}
	for _, item := range list {
		if !i.IsConnected(userID) {
			return
		}
		i.SendMessage(wsmodels.ServerMessage{
			ToUserID: userID,
			Time:     item.CreatedAt.Format("02.01.2006 15:04:05"),
			Code:     string(item.Template),
			Msg:      item.Msg,
		})
	}
}
