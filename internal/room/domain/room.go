package domain

import "time"

// Room categories accepted by the catalog.
const (
	CategoryKing   = "King"
	CategorySingle = "Single"
	CategoryTwins  = "Twins"
)

type Location struct {
	Type             string    `json:"type"`
	Coordinates      []float64 `json:"coordinates"`
	FormattedAddress string    `json:"formattedAddress,omitempty"`
	City             string    `json:"city,omitempty"`
	State            string    `json:"state,omitempty"`
	ZipCode          string    `json:"zipCode,omitempty"`
	Country          string    `json:"country,omitempty"`
}

type Image struct {
	PublicID string `json:"public_id"`
	URL      string `json:"url"`
}

// Review is embedded in its room. UserID references the reviewing account;
// Name is a denormalized copy of the account's display name at review time.
type Review struct {
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// Room is a bookable unit. OwnerID references the account that manages it;
// that reference is the catalog's only touchpoint with the auth layer.
type Room struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	PricePerNight    float64   `json:"price_per_night"`
	Address          string    `json:"address"`
	Location         Location  `json:"location"`
	GuestCapacity    int       `json:"guest_capacity"`
	NumOfBeds        int       `json:"num_of_beds"`
	IsInternet       bool      `json:"is_internet"`
	IsBreakfast      bool      `json:"is_breakfast"`
	IsAirConditioned bool      `json:"is_air_conditioned"`
	IsPetsAllowed    bool      `json:"is_pets_allowed"`
	IsRoomCleaning   bool      `json:"is_room_cleaning"`
	Ratings          float64   `json:"ratings"`
	NumOfReviews     int       `json:"num_of_reviews"`
	Images           []Image   `json:"images"`
	Category         string    `json:"category"`
	Reviews          []Review  `json:"reviews"`
	OwnerID          string    `json:"owner_id"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Filter narrows a catalog listing. Zero values mean "no restriction".
type Filter struct {
	City     string
	Category string
	Page     int
	Limit    int
}
