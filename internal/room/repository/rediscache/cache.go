// Package rediscache wraps a room repository with a Redis read-through cache.
// The catalog is read-mostly, so cached lookups absorb most of the detail-page
// traffic; writes invalidate the affected entry.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/guptaji1008/book-hotel/internal/room/domain"
)

type CachedRoomRepository struct {
	inner  domain.RoomRepository
	client *redis.Client
	ttl    time.Duration
}

func NewCachedRoomRepository(inner domain.RoomRepository, client *redis.Client, ttl time.Duration) *CachedRoomRepository {
	return &CachedRoomRepository{inner: inner, client: client, ttl: ttl}
}

func roomKey(id string) string {
	return fmt.Sprintf("room:%s", id)
}

// List always hits the store: listings are filter- and page-dependent and the
// payoff of caching every combination is poor.
func (c *CachedRoomRepository) List(ctx context.Context, f domain.Filter) ([]domain.Room, int, error) {
	return c.inner.List(ctx, f)
}

func (c *CachedRoomRepository) GetByID(ctx context.Context, id string) (*domain.Room, error) {
	data, err := c.client.Get(ctx, roomKey(id)).Bytes()
	if err == nil {
		var room domain.Room
		if err := json.Unmarshal(data, &room); err == nil {
			return &room, nil
		}
		// Undecodable entry: drop it and fall through to the store.
		c.client.Del(ctx, roomKey(id))
	} else if !errors.Is(err, redis.Nil) {
		// Redis being down must not take the catalog with it.
		return c.inner.GetByID(ctx, id)
	}

	room, err := c.inner.GetByID(ctx, id)
	if err != nil || room == nil {
		return room, err
	}

	if data, err := json.Marshal(room); err == nil {
		// Cache write is best effort.
		c.client.Set(ctx, roomKey(id), data, c.ttl)
	}

	return room, nil
}

func (c *CachedRoomRepository) Create(ctx context.Context, room *domain.Room) error {
	return c.inner.Create(ctx, room)
}

func (c *CachedRoomRepository) Update(ctx context.Context, room *domain.Room) error {
	if err := c.inner.Update(ctx, room); err != nil {
		return err
	}
	c.client.Del(ctx, roomKey(room.ID))
	return nil
}

func (c *CachedRoomRepository) UpdateReviews(ctx context.Context, roomID string, reviews []domain.Review, ratings float64, numOfReviews int) error {
	if err := c.inner.UpdateReviews(ctx, roomID, reviews, ratings, numOfReviews); err != nil {
		return err
	}
	c.client.Del(ctx, roomKey(roomID))
	return nil
}

func (c *CachedRoomRepository) Delete(ctx context.Context, id string) error {
	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}
	c.client.Del(ctx, roomKey(id))
	return nil
}
