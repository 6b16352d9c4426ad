package dto

import (
	"github.com/guptaji1008/book-hotel/internal/room/domain"
)

type LocationInput struct {
	Coordinates      []float64 `json:"coordinates" validate:"omitempty,len=2"`
	FormattedAddress string    `json:"formattedAddress"`
	City             string    `json:"city"`
	State            string    `json:"state"`
	ZipCode          string    `json:"zipCode"`
	Country          string    `json:"country"`
}

type ImageInput struct {
	PublicID string `json:"public_id" validate:"required"`
	URL      string `json:"url" validate:"required,url"`
}

type RoomInput struct {
	Name             string         `json:"name" validate:"required,max=200"`
	Description      string         `json:"description" validate:"required"`
	PricePerNight    float64        `json:"price_per_night" validate:"required,gt=0"`
	Address          string         `json:"address" validate:"required"`
	Location         *LocationInput `json:"location" validate:"omitempty"`
	GuestCapacity    int            `json:"guest_capacity" validate:"required,gt=0"`
	NumOfBeds        int            `json:"num_of_beds" validate:"required,gt=0"`
	IsInternet       bool           `json:"is_internet"`
	IsBreakfast      bool           `json:"is_breakfast"`
	IsAirConditioned bool           `json:"is_air_conditioned"`
	IsPetsAllowed    bool           `json:"is_pets_allowed"`
	IsRoomCleaning   bool           `json:"is_room_cleaning"`
	Images           []ImageInput   `json:"images" validate:"omitempty,dive"`
	Category         string         `json:"category" validate:"required,oneof=King Single Twins"`
}

type ReviewInput struct {
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment" validate:"required"`
}

type ListOutput struct {
	Rooms      []domain.Room `json:"rooms"`
	RoomsCount int           `json:"rooms_count"`
	ResPerPage int           `json:"res_per_page"`
}
