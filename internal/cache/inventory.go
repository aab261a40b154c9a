package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	ClubKeyPrefix     = "club:%d"
	ShopKeyPrefix     = "shop:%d"
	LocationKeyPrefix = "location:%d"
	LocationListKey   = "locations:all"
)

const (
	ClubTTL     = 10 * time.Minute
	ShopTTL     = 10 * time.Minute
	LocationTTL = 30 * time.Minute
)

func ClubKey(clubID uint) string {
	return fmt.Sprintf(ClubKeyPrefix, clubID)
}

func ShopKey(shopID uint) string {
	return fmt.Sprintf(ShopKeyPrefix, shopID)
}

func LocationKey(locationID uint) string {
	return fmt.Sprintf(LocationKeyPrefix, locationID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateClub(ctx context.Context, clubID uint) {
	Invalidate(ctx, ClubKey(clubID))
}

func InvalidateShop(ctx context.Context, shopID uint) {
	Invalidate(ctx, ShopKey(shopID))
}

func InvalidateLocation(ctx context.Context, locationID uint) {
	Invalidate(ctx, LocationKey(locationID))
	Invalidate(ctx, LocationListKey)
}
