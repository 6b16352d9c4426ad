package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/guptaji1008/book-hotel/internal/auth/domain"
	"github.com/guptaji1008/book-hotel/internal/auth/dto"
	apperrors "github.com/guptaji1008/book-hotel/internal/errors"
	"github.com/guptaji1008/book-hotel/pkg/constant"
)

type UserService struct {
	repo     domain.AccountRepository
	issuer   SessionIssuer
	validate *validator.Validate
}

func NewUserService(repo domain.AccountRepository, issuer SessionIssuer) *UserService {
	return &UserService{
		repo:     repo,
		issuer:   issuer,
		validate: validator.New(),
	}
}

// Register creates a new account from untrusted input. The plaintext password
// exists only long enough to be hashed; it is never stored or logged.
func (s *UserService) Register(ctx context.Context, input dto.RegisterInput) (*domain.Account, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, apperrors.FromValidator(err)
	}

	existing, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.ErrEmailAlreadyInUse
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	account := &domain.Account{
		ID:           uuid.NewString(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		Role:         constant.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// The unique index remains the authority under concurrent registration;
	// its violation also reports ErrEmailAlreadyInUse.
	if err := s.repo.Create(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

// Authenticate checks a presented email/password pair against the stored
// hash. Unknown email and wrong password return the same error so the two
// cases are indistinguishable to a client. On success the returned account
// still carries the hash; callers strip it before externalizing.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*domain.Account, error) {
	if email == "" || password == "" {
		return nil, apperrors.ErrInvalidCredentials
	}

	account, err := s.repo.GetByEmailWithPassword(ctx, email)
	if err != nil {
		return nil, err
	}

	if account == nil || bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return account, nil
}

// Login authenticates the credentials and mints a session token for the
// verified account.
func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*dto.LoginOutput, error) {
	account, err := s.Authenticate(ctx, input.Email, input.Password)
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := s.issuer.Mint(account)
	if err != nil {
		return nil, err
	}

	return &dto.LoginOutput{
		User:      dto.NewSessionView(account),
		Token:     token,
		TokenType: constant.DefaultTokenType,
		ExpiresAt: expiresAt,
	}, nil
}
