package domain

import "context"

//go:generate mockgen -destination=../../mocks/mock_room_repository.go -package=mocks github.com/guptaji1008/book-hotel/internal/room/domain RoomRepository

type RoomRepository interface {
	List(ctx context.Context, f Filter) ([]Room, int, error)
	GetByID(ctx context.Context, id string) (*Room, error)
	Create(ctx context.Context, room *Room) error
	Update(ctx context.Context, room *Room) error
	// UpdateReviews replaces the review set and its aggregates in a single
	// statement.
	UpdateReviews(ctx context.Context, roomID string, reviews []Review, ratings float64, numOfReviews int) error
	Delete(ctx context.Context, id string) error
}
