package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	GiftKeyPrefix = "gift:%d"
	CartKeyPrefix = "cart:%d"
)

const (
	GiftTTL = 30 * time.Minute
	// Carts persist across sessions but are not forever; idle carts expire.
	CartTTL = 30 * 24 * time.Hour
)

func GiftKey(giftID uint) string {
	return fmt.Sprintf(GiftKeyPrefix, giftID)
}

func CartKey(userID uint) string {
	return fmt.Sprintf(CartKeyPrefix, userID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateGift(ctx context.Context, giftID uint) {
	Invalidate(ctx, GiftKey(giftID))
}
