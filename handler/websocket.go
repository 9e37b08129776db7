package handler

import (
	"context"
	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
)

// boardRoom holds one tenant's board connections behind a single redis
// subscription, so each event is delivered once per connection.
type boardRoom struct {
	conns  map[*websocket.Conn]bool
	pubsub *redis.PubSub
}

var (
	boardRooms = make(map[uint]*boardRoom)
	boardMu    sync.Mutex
)

func joinBoardRoom(accountId uint, c *websocket.Conn) {
	boardMu.Lock()
	defer boardMu.Unlock()

	room := boardRooms[accountId]
	if room == nil {
		room = &boardRoom{
			conns: make(map[*websocket.Conn]bool),
			pubsub: helper.FeedClient().Subscribe(
				context.Background(),
				helper.FeedChannel(accountId),
			),
		}
		boardRooms[accountId] = room
		go relayBoardEvents(room)
	}
	room.conns[c] = true
}

func leaveBoardRoom(accountId uint, c *websocket.Conn) {
	boardMu.Lock()
	defer boardMu.Unlock()

	room := boardRooms[accountId]
	if room == nil {
		return
	}
	delete(room.conns, c)
	if len(room.conns) == 0 {
		room.pubsub.Close()
		delete(boardRooms, accountId)
	}
}

// relayBoardEvents fans the room's subscription out to its members.
// Exits when the last member leaves and the subscription closes.
func relayBoardEvents(room *boardRoom) {
	for msg := range room.pubsub.Channel() {
		payload := []byte(msg.Payload)

		boardMu.Lock()
		for conn := range room.conns {
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				conn.Close()
				delete(room.conns, conn)
			}
		}
		boardMu.Unlock()
	}
}

func fetchKitchenBoard(accountId uint) (model.KitchenBoard, error) {
	var orders []model.Order
	err := database.DB.
		Preload("Table").
		Preload("Items").
		Preload("Items.MenuItem").
		Where("account_id = ? AND status IN ?", accountId, []string{constants.ORDER_NEW, constants.ORDER_PREPARING, constants.ORDER_COMPLETED}).
		Find(&orders).Error
	if err != nil {
		return model.KitchenBoard{}, err
	}
	return helper.PartitionLanes(orders), nil
}

// OrderFeedConnection streams the tenant's order events to a kitchen
// board. Sends the lane snapshot first, then joins the tenant room.
func OrderFeedConnection(c *websocket.Conn) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		c.Close()
		return
	}
	claims := token.Claims.(jwt.MapClaims)
	accountId := uint(claims["accountId"].(float64))

	// Snapshot precedes room membership so a relay write can never
	// interleave with it.
	if board, err := fetchKitchenBoard(accountId); err == nil {
		c.WriteJSON(board)
	}

	joinBoardRoom(accountId, c)
	defer leaveBoardRoom(accountId, c)
	defer c.Close()

	// Hold the connection open; exit on client disconnect.
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			return
		}
	}
}
