package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	authdto "github.com/guptaji1008/book-hotel/internal/auth/dto"
	apperrors "github.com/guptaji1008/book-hotel/internal/errors"
	"github.com/guptaji1008/book-hotel/internal/room/domain"
	"github.com/guptaji1008/book-hotel/internal/room/dto"
	"github.com/guptaji1008/book-hotel/pkg/constant"
)

type RoomService struct {
	repo     domain.RoomRepository
	validate *validator.Validate
}

func NewRoomService(repo domain.RoomRepository) *RoomService {
	return &RoomService{
		repo:     repo,
		validate: validator.New(),
	}
}

func (s *RoomService) List(ctx context.Context, f domain.Filter) (*dto.ListOutput, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = constant.DefaultRoomsPerPage
	}

	rooms, total, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}

	return &dto.ListOutput{
		Rooms:      rooms,
		RoomsCount: total,
		ResPerPage: f.Limit,
	}, nil
}

func (s *RoomService) Get(ctx context.Context, id string) (*domain.Room, error) {
	room, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, apperrors.ErrRoomNotFound
	}

	return room, nil
}

func (s *RoomService) Create(ctx context.Context, input dto.RoomInput, ownerID string) (*domain.Room, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, apperrors.FromValidator(err)
	}

	now := time.Now()

	room := &domain.Room{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Reviews:   []domain.Review{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyInput(room, input)

	if err := s.repo.Create(ctx, room); err != nil {
		return nil, err
	}

	return room, nil
}

func (s *RoomService) Update(ctx context.Context, id string, input dto.RoomInput) (*domain.Room, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, apperrors.FromValidator(err)
	}

	room, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	applyInput(room, input)
	room.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, room); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRoomNotFound
		}
		return nil, err
	}

	return room, nil
}

func (s *RoomService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	return s.repo.Delete(ctx, id)
}

// AddReview records the session user's review on a room. A resubmission by
// the same account replaces the earlier review instead of stacking a second
// one; the ratings aggregate is recomputed from the full set.
func (s *RoomService) AddReview(ctx context.Context, roomID string, sess *authdto.SessionView, input dto.ReviewInput) (*domain.Room, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, apperrors.FromValidator(err)
	}

	room, err := s.Get(ctx, roomID)
	if err != nil {
		return nil, err
	}

	review := domain.Review{
		UserID:    sess.ID,
		Name:      sess.Name,
		Rating:    input.Rating,
		Comment:   input.Comment,
		CreatedAt: time.Now(),
	}

	replaced := false
	for i := range room.Reviews {
		if room.Reviews[i].UserID == sess.ID {
			room.Reviews[i] = review
			replaced = true
			break
		}
	}
	if !replaced {
		room.Reviews = append(room.Reviews, review)
	}

	room.NumOfReviews = len(room.Reviews)
	room.Ratings = averageRating(room.Reviews)

	if err := s.repo.UpdateReviews(ctx, room.ID, room.Reviews, room.Ratings, room.NumOfReviews); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to save review: %w", err)
	}

	return room, nil
}

func applyInput(room *domain.Room, input dto.RoomInput) {
	room.Name = input.Name
	room.Description = input.Description
	room.PricePerNight = input.PricePerNight
	room.Address = input.Address
	room.GuestCapacity = input.GuestCapacity
	room.NumOfBeds = input.NumOfBeds
	room.IsInternet = input.IsInternet
	room.IsBreakfast = input.IsBreakfast
	room.IsAirConditioned = input.IsAirConditioned
	room.IsPetsAllowed = input.IsPetsAllowed
	room.IsRoomCleaning = input.IsRoomCleaning
	room.Category = input.Category

	room.Images = make([]domain.Image, 0, len(input.Images))
	for _, img := range input.Images {
		room.Images = append(room.Images, domain.Image{PublicID: img.PublicID, URL: img.URL})
	}

	if input.Location != nil {
		room.Location = domain.Location{
			Type:             "Point",
			Coordinates:      input.Location.Coordinates,
			FormattedAddress: input.Location.FormattedAddress,
			City:             input.Location.City,
			State:            input.Location.State,
			ZipCode:          input.Location.ZipCode,
			Country:          input.Location.Country,
		}
	}
}

func averageRating(reviews []domain.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return float64(sum) / float64(len(reviews))
}
