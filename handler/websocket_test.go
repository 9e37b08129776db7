package handler

import (
	"testing"

	"github.com/gofiber/contrib/websocket"
)

func TestBoardRoomSharesOneSubscription(t *testing.T) {
	const accountId = 901

	first := &websocket.Conn{}
	second := &websocket.Conn{}

	joinBoardRoom(accountId, first)
	joinBoardRoom(accountId, second)

	boardMu.Lock()
	room := boardRooms[accountId]
	if room == nil {
		t.Fatal("room was not created")
	}
	if len(room.conns) != 2 {
		t.Errorf("room has %d conns, want 2", len(room.conns))
	}
	pubsub := room.pubsub
	boardMu.Unlock()

	joinBoardRoom(accountId, second)
	boardMu.Lock()
	if boardRooms[accountId].pubsub != pubsub {
		t.Error("rejoin replaced the room subscription")
	}
	boardMu.Unlock()

	leaveBoardRoom(accountId, first)
	boardMu.Lock()
	if boardRooms[accountId] == nil {
		t.Fatal("room torn down while a member remains")
	}
	if len(boardRooms[accountId].conns) != 1 {
		t.Errorf("room has %d conns after one leave, want 1", len(boardRooms[accountId].conns))
	}
	boardMu.Unlock()

	leaveBoardRoom(accountId, second)
	boardMu.Lock()
	if boardRooms[accountId] != nil {
		t.Error("room not removed after last member left")
	}
	boardMu.Unlock()
}

func TestLeaveBoardRoomUnknownAccount(t *testing.T) {
	leaveBoardRoom(902, &websocket.Conn{})

	boardMu.Lock()
	defer boardMu.Unlock()
	if boardRooms[902] != nil {
		t.Error("leave created a room")
	}
}
