package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/guptaji1008/book-hotel/internal/room/domain"
)

// DB is the subset of the pgxpool API the repository needs. Declared here so
// tests can substitute a pgxmock pool.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type RoomRepository struct {
	db DB
}

func NewRoomRepository(db DB) *RoomRepository {
	return &RoomRepository{db: db}
}

const roomColumns = `id, name, description, price_per_night, address, location,
		guest_capacity, num_of_beds, is_internet, is_breakfast, is_air_conditioned,
		is_pets_allowed, is_room_cleaning, ratings, num_of_reviews, images, category,
		reviews, owner_id, created_at, updated_at`

const listFilter = `($1 = '' OR location ->> 'city' ILIKE '%' || $1 || '%')
		AND ($2 = '' OR category = $2)`

func (r *RoomRepository) List(ctx context.Context, f domain.Filter) ([]domain.Room, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM rooms WHERE ` + listFilter
	if err := r.db.QueryRow(ctx, countQuery, f.City, f.Category).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count rooms: %w", err)
	}

	offset := (f.Page - 1) * f.Limit
	query := `
		SELECT ` + roomColumns + `
		FROM rooms
		WHERE ` + listFilter + `
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4;
	`
	rows, err := r.db.Query(ctx, query, f.City, f.Category, f.Limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list rooms: %w", err)
	}
	defer rows.Close()

	var rooms []domain.Room
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan room row: %w", err)
		}
		rooms = append(rooms, *room)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read room rows: %w", err)
	}

	return rooms, total, nil
}

func (r *RoomRepository) GetByID(ctx context.Context, id string) (*domain.Room, error) {
	query := `
		SELECT ` + roomColumns + `
		FROM rooms
		WHERE id = $1
		LIMIT 1;
	`
	room, err := scanRoom(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get room by id: %w", err)
	}

	return room, nil
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO rooms (id, name, description, price_per_night, address, location,
			guest_capacity, num_of_beds, is_internet, is_breakfast, is_air_conditioned,
			is_pets_allowed, is_room_cleaning, ratings, num_of_reviews, images, category,
			reviews, owner_id, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
    `, room.ID, room.Name, room.Description, room.PricePerNight, room.Address, room.Location,
		room.GuestCapacity, room.NumOfBeds, room.IsInternet, room.IsBreakfast, room.IsAirConditioned,
		room.IsPetsAllowed, room.IsRoomCleaning, room.Ratings, room.NumOfReviews, room.Images,
		room.Category, room.Reviews, room.OwnerID, room.CreatedAt, room.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create room: %w", err)
	}

	return nil
}

func (r *RoomRepository) Update(ctx context.Context, room *domain.Room) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE rooms
		SET name = $2, description = $3, price_per_night = $4, address = $5, location = $6,
			guest_capacity = $7, num_of_beds = $8, is_internet = $9, is_breakfast = $10,
			is_air_conditioned = $11, is_pets_allowed = $12, is_room_cleaning = $13,
			images = $14, category = $15, updated_at = $16
		WHERE id = $1
	`, room.ID, room.Name, room.Description, room.PricePerNight, room.Address, room.Location,
		room.GuestCapacity, room.NumOfBeds, room.IsInternet, room.IsBreakfast, room.IsAirConditioned,
		room.IsPetsAllowed, room.IsRoomCleaning, room.Images, room.Category, room.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update room: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

func (r *RoomRepository) UpdateReviews(ctx context.Context, roomID string, reviews []domain.Review, ratings float64, numOfReviews int) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE rooms
		SET reviews = $2, ratings = $3, num_of_reviews = $4, updated_at = now()
		WHERE id = $1
	`, roomID, reviews, ratings, numOfReviews)
	if err != nil {
		return fmt.Errorf("failed to update room reviews: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

func (r *RoomRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}

	return nil
}

func scanRoom(row pgx.Row) (*domain.Room, error) {
	var room domain.Room
	err := row.Scan(&room.ID, &room.Name, &room.Description, &room.PricePerNight, &room.Address,
		&room.Location, &room.GuestCapacity, &room.NumOfBeds, &room.IsInternet, &room.IsBreakfast,
		&room.IsAirConditioned, &room.IsPetsAllowed, &room.IsRoomCleaning, &room.Ratings,
		&room.NumOfReviews, &room.Images, &room.Category, &room.Reviews, &room.OwnerID,
		&room.CreatedAt, &room.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return &room, nil
}
