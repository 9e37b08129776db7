package helper

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"restaurant_manager/constants"
	"restaurant_manager/model"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	feedClient *redis.Client
	feedOnce   sync.Once
)

// FeedClient lazily opens the redis connection shared by publishers and
// the websocket subscribers.
func FeedClient() *redis.Client {
	feedOnce.Do(func() {
		addr := os.Getenv("REDIS_ADDR")
		if addr == "" {
			addr = "localhost:6379"
		}
		feedClient = redis.NewClient(&redis.Options{Addr: addr})
	})
	return feedClient
}

// FeedChannel is the per-tenant pub/sub channel for order events.
func FeedChannel(accountId uint) string {
	return fmt.Sprintf("orders:%d", accountId)
}

func publishFeedEvent(accountId uint, event model.OrderFeedEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("failed to marshal order feed event: %v", err)
		return
	}
	if err := FeedClient().Publish(context.Background(), FeedChannel(accountId), payload).Err(); err != nil {
		log.Printf("failed to publish order feed event: %v", err)
	}
}

// PublishOrderInsert pushes a freshly created order, with its joins
// already loaded, onto the tenant's feed.
func PublishOrderInsert(accountId uint, order *model.Order) {
	publishFeedEvent(accountId, model.OrderFeedEvent{
		Type:  constants.FEED_INSERT,
		Order: order,
	})
}

// PublishOrderUpdate pushes a status merge. Consumers holding a version
// >= the event's version must drop it.
func PublishOrderUpdate(accountId, orderId uint, status string, version uint, paidAt *time.Time) {
	publishFeedEvent(accountId, model.OrderFeedEvent{
		Type:    constants.FEED_UPDATE,
		OrderId: orderId,
		Status:  status,
		Version: version,
		PaidAt:  paidAt,
	})
}
