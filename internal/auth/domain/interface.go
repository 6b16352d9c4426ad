package domain

import "context"

//go:generate mockgen -destination=../../mocks/mock_account_repository.go -package=mocks github.com/guptaji1008/book-hotel/internal/auth/domain AccountRepository

type AccountRepository interface {
	// GetByEmail and GetByID never load the password hash.
	GetByEmail(ctx context.Context, email string) (*Account, error)
	GetByID(ctx context.Context, id string) (*Account, error)
	// GetByEmailWithPassword is the single read that includes the hash; only
	// the credential verifier may call it.
	GetByEmailWithPassword(ctx context.Context, email string) (*Account, error)
	Create(ctx context.Context, account *Account) error
}
