package domain

import "time"

// Account is a registered user's durable identity record. PasswordHash is
// populated only by repository reads that explicitly opt in; it must never
// reach a client-facing serialization.
type Account struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         string
	AvatarURL    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
